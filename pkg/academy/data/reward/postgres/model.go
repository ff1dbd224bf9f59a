package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
	pgutil "github.com/superteam-academy/academy-server/pkg/database/postgres"
)

const (
	tableName = "academy__core_rewardentry"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Destination string `db:"destination"`
	Kind        uint8  `db:"kind"`
	Amount      uint64 `db:"amount"`

	Season uint16 `db:"season"`
	Mint   string `db:"mint"`

	CourseId sql.NullString `db:"course_id"`

	CreatedAt time.Time `db:"created_at"`
}

func toModel(obj *reward.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	if obj.CreatedAt.IsZero() {
		obj.CreatedAt = time.Now().UTC()
	}

	var courseId sql.NullString
	if obj.CourseId != nil {
		courseId = sql.NullString{String: *obj.CourseId, Valid: true}
	}

	return &model{
		Id:          sql.NullInt64{Int64: int64(obj.Id), Valid: true},
		Destination: obj.Destination,
		Kind:        uint8(obj.Kind),
		Amount:      obj.Amount,
		Season:      obj.Season,
		Mint:        obj.Mint,
		CourseId:    courseId,
		CreatedAt:   obj.CreatedAt,
	}, nil
}

func fromModel(obj *model) *reward.Record {
	var courseId *string
	if obj.CourseId.Valid {
		value := obj.CourseId.String
		courseId = &value
	}

	return &reward.Record{
		Id:          uint64(obj.Id.Int64),
		Destination: obj.Destination,
		Kind:        reward.Kind(obj.Kind),
		Amount:      obj.Amount,
		Season:      obj.Season,
		Mint:        obj.Mint,
		CourseId:    courseId,
		CreatedAt:   obj.CreatedAt,
	}
}

const allColumns = `id, destination, kind, amount, season, mint, course_id, created_at`

func (m *model) dbCreate(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(destination, kind, amount, season, mint, course_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + allColumns

		return tx.QueryRowxContext(
			ctx,
			query,
			m.Destination,
			m.Kind,
			m.Amount,
			m.Season,
			m.Mint,
			m.CourseId,
			m.CreatedAt,
		).StructScan(m)
	})
}

func dbGetByDestination(ctx context.Context, db *sqlx.DB, destination string) ([]*model, error) {
	res := []*model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` WHERE destination = $1 ORDER BY id`

	err := db.SelectContext(ctx, &res, query, destination)
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, reward.ErrRewardEntryNotFound
	}
	return res, nil
}

func dbGetTotal(ctx context.Context, db *sqlx.DB, destination string, season uint16) (uint64, error) {
	var total sql.NullInt64

	query := `SELECT SUM(amount) FROM ` + tableName + ` WHERE destination = $1 AND season = $2`

	err := db.GetContext(ctx, &total, query, destination, season)
	if err != nil {
		return 0, err
	}
	return uint64(total.Int64), nil
}
