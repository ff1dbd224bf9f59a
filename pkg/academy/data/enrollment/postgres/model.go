package postgres

import (
	"context"
	"database/sql"
	"encoding/binary"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
	pgutil "github.com/superteam-academy/academy-server/pkg/database/postgres"
)

const (
	tableName = "academy__core_enrollment"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	CourseId string `db:"course_id"`
	Course   string `db:"course"`
	Learner  string `db:"learner"`

	EnrolledVersion uint16       `db:"enrolled_version"`
	EnrolledAt      time.Time    `db:"enrolled_at"`
	CompletedAt     sql.NullTime `db:"completed_at"`

	LessonFlags []byte `db:"lesson_flags"`

	CredentialAsset       sql.NullString `db:"credential_asset"`
	CredentialMetadataUri sql.NullString `db:"credential_metadata_uri"`

	BonusClaimed bool `db:"bonus_claimed"`
}

func flagsToBytes(flags [4]uint64) []byte {
	res := make([]byte, 32)
	for i, word := range flags {
		binary.LittleEndian.PutUint64(res[8*i:], word)
	}
	return res
}

func flagsFromBytes(data []byte) (res [4]uint64) {
	if len(data) < 32 {
		return res
	}
	for i := range res {
		res[i] = binary.LittleEndian.Uint64(data[8*i:])
	}
	return res
}

func toModel(obj *enrollment.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	if obj.EnrolledAt.IsZero() {
		obj.EnrolledAt = time.Now().UTC()
	}

	var completedAt sql.NullTime
	if obj.CompletedAt != nil {
		completedAt = sql.NullTime{Time: obj.CompletedAt.UTC(), Valid: true}
	}

	var credentialAsset, credentialMetadataUri sql.NullString
	if obj.CredentialAsset != nil {
		credentialAsset = sql.NullString{String: *obj.CredentialAsset, Valid: true}
	}
	if obj.CredentialMetadataUri != nil {
		credentialMetadataUri = sql.NullString{String: *obj.CredentialMetadataUri, Valid: true}
	}

	return &model{
		Id:                    sql.NullInt64{Int64: int64(obj.Id), Valid: true},
		Address:               obj.Address,
		Bump:                  obj.Bump,
		CourseId:              obj.CourseId,
		Course:                obj.Course,
		Learner:               obj.Learner,
		EnrolledVersion:       obj.EnrolledVersion,
		EnrolledAt:            obj.EnrolledAt,
		CompletedAt:           completedAt,
		LessonFlags:           flagsToBytes(obj.LessonFlags),
		CredentialAsset:       credentialAsset,
		CredentialMetadataUri: credentialMetadataUri,
		BonusClaimed:          obj.BonusClaimed,
	}, nil
}

func fromModel(obj *model) *enrollment.Record {
	var completedAt *time.Time
	if obj.CompletedAt.Valid {
		value := obj.CompletedAt.Time
		completedAt = &value
	}

	var credentialAsset, credentialMetadataUri *string
	if obj.CredentialAsset.Valid {
		value := obj.CredentialAsset.String
		credentialAsset = &value
	}
	if obj.CredentialMetadataUri.Valid {
		value := obj.CredentialMetadataUri.String
		credentialMetadataUri = &value
	}

	return &enrollment.Record{
		Id:                    uint64(obj.Id.Int64),
		Address:               obj.Address,
		Bump:                  obj.Bump,
		CourseId:              obj.CourseId,
		Course:                obj.Course,
		Learner:               obj.Learner,
		EnrolledVersion:       obj.EnrolledVersion,
		EnrolledAt:            obj.EnrolledAt,
		CompletedAt:           completedAt,
		LessonFlags:           flagsFromBytes(obj.LessonFlags),
		CredentialAsset:       credentialAsset,
		CredentialMetadataUri: credentialMetadataUri,
		BonusClaimed:          obj.BonusClaimed,
	}
}

const allColumns = `id, address, bump, course_id, course, learner, enrolled_version, enrolled_at, completed_at, lesson_flags, credential_asset, credential_metadata_uri, bonus_claimed`

func (m *model) dbCreate(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, course_id, course, learner, enrolled_version, enrolled_at, completed_at, lesson_flags, credential_asset, credential_metadata_uri, bonus_claimed)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING ` + allColumns

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.CourseId,
			m.Course,
			m.Learner,
			m.EnrolledVersion,
			m.EnrolledAt,
			m.CompletedAt,
			m.LessonFlags,
			m.CredentialAsset,
			m.CredentialMetadataUri,
			m.BonusClaimed,
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, enrollment.ErrEnrollmentExists)
	})
}

func (m *model) dbSave(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `UPDATE ` + tableName + `
			SET completed_at = $3, lesson_flags = $4, credential_asset = $5, credential_metadata_uri = $6, bonus_claimed = $7
			WHERE course_id = $1 AND learner = $2
			RETURNING ` + allColumns

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.CourseId,
			m.Learner,
			m.CompletedAt,
			m.LessonFlags,
			m.CredentialAsset,
			m.CredentialMetadataUri,
			m.BonusClaimed,
		).StructScan(m)

		return pgutil.CheckNoRows(err, enrollment.ErrEnrollmentNotFound)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB, courseId, learner string) (*model, error) {
	res := &model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` WHERE course_id = $1 AND learner = $2`

	err := db.GetContext(ctx, res, query, courseId, learner)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, enrollment.ErrEnrollmentNotFound)
	}
	return res, nil
}

func dbGetByLearner(ctx context.Context, db *sqlx.DB, learner string) ([]*model, error) {
	res := []*model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` WHERE learner = $1 ORDER BY id`

	err := db.SelectContext(ctx, &res, query, learner)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func dbDelete(ctx context.Context, db *sqlx.DB, courseId, learner string) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `DELETE FROM ` + tableName + ` WHERE course_id = $1 AND learner = $2`

		res, err := tx.ExecContext(ctx, query, courseId, learner)
		if err != nil {
			return err
		}

		count, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if count == 0 {
			return enrollment.ErrEnrollmentNotFound
		}
		return nil
	})
}
