package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
	pgutil "github.com/superteam-academy/academy-server/pkg/database/postgres"
)

const (
	tableName = "academy__core_config"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	Authority     string `db:"authority"`
	BackendSigner string `db:"backend_signer"`

	CurrentSeason   uint16    `db:"current_season"`
	CurrentMint     string    `db:"current_mint"`
	SeasonClosed    bool      `db:"season_closed"`
	SeasonStartedAt time.Time `db:"season_started_at"`

	MaxDailyXp       uint32 `db:"max_daily_xp"`
	MaxAchievementXp uint32 `db:"max_achievement_xp"`

	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func toModel(obj *config.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Id:               sql.NullInt64{Int64: int64(obj.Id), Valid: true},
		Address:          obj.Address,
		Bump:             obj.Bump,
		Authority:        obj.Authority,
		BackendSigner:    obj.BackendSigner,
		CurrentSeason:    obj.CurrentSeason,
		CurrentMint:      obj.CurrentMint,
		SeasonClosed:     obj.SeasonClosed,
		SeasonStartedAt:  obj.SeasonStartedAt.UTC(),
		MaxDailyXp:       obj.MaxDailyXp,
		MaxAchievementXp: obj.MaxAchievementXp,
		LastUpdatedAt:    time.Now().UTC(),
	}, nil
}

func fromModel(obj *model) *config.Record {
	return &config.Record{
		Id:               uint64(obj.Id.Int64),
		Address:          obj.Address,
		Bump:             obj.Bump,
		Authority:        obj.Authority,
		BackendSigner:    obj.BackendSigner,
		CurrentSeason:    obj.CurrentSeason,
		CurrentMint:      obj.CurrentMint,
		SeasonClosed:     obj.SeasonClosed,
		SeasonStartedAt:  obj.SeasonStartedAt,
		MaxDailyXp:       obj.MaxDailyXp,
		MaxAchievementXp: obj.MaxAchievementXp,
		LastUpdatedAt:    obj.LastUpdatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, authority, backend_signer, current_season, current_mint, season_closed, season_started_at, max_daily_xp, max_achievement_xp, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, address, bump, authority, backend_signer, current_season, current_mint, season_closed, season_started_at, max_daily_xp, max_achievement_xp, last_updated_at`

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Authority,
			m.BackendSigner,
			m.CurrentSeason,
			m.CurrentMint,
			m.SeasonClosed,
			m.SeasonStartedAt,
			m.MaxDailyXp,
			m.MaxAchievementXp,
			m.LastUpdatedAt,
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, config.ErrConfigExists)
	})
}

func (m *model) dbSave(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `UPDATE ` + tableName + `
			SET authority = $2, backend_signer = $3, current_season = $4, current_mint = $5, season_closed = $6, season_started_at = $7, max_daily_xp = $8, max_achievement_xp = $9, last_updated_at = $10
			WHERE address = $1
			RETURNING id, address, bump, authority, backend_signer, current_season, current_mint, season_closed, season_started_at, max_daily_xp, max_achievement_xp, last_updated_at`

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Authority,
			m.BackendSigner,
			m.CurrentSeason,
			m.CurrentMint,
			m.SeasonClosed,
			m.SeasonStartedAt,
			m.MaxDailyXp,
			m.MaxAchievementXp,
			m.LastUpdatedAt,
		).StructScan(m)

		return pgutil.CheckNoRows(err, config.ErrConfigNotFound)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB) (*model, error) {
	res := &model{}

	query := `SELECT id, address, bump, authority, backend_signer, current_season, current_mint, season_closed, season_started_at, max_daily_xp, max_achievement_xp, last_updated_at FROM ` + tableName + `
			ORDER BY id LIMIT 1`

	err := db.GetContext(ctx, res, query)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, config.ErrConfigNotFound)
	}
	return res, nil
}
