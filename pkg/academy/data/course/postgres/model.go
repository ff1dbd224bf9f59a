package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
	pgutil "github.com/superteam-academy/academy-server/pkg/database/postgres"
)

const (
	tableName = "academy__core_course"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	CourseId  string `db:"course_id"`
	Creator   string `db:"creator"`
	Authority string `db:"authority"`

	ContentTxId []byte `db:"content_tx_id"`
	Version     uint16 `db:"version"`
	LessonCount uint8  `db:"lesson_count"`
	Difficulty  uint8  `db:"difficulty"`
	XpPerLesson uint32 `db:"xp_per_lesson"`
	TrackId     uint16 `db:"track_id"`
	TrackLevel  uint8  `db:"track_level"`

	Prerequisite sql.NullString `db:"prerequisite"`

	CompletionBonusXp       uint32 `db:"completion_bonus_xp"`
	CreatorRewardXp         uint32 `db:"creator_reward_xp"`
	MinCompletionsForReward uint16 `db:"min_completions_for_reward"`

	TotalCompletions uint32 `db:"total_completions"`
	TotalEnrollments uint32 `db:"total_enrollments"`

	IsActive bool `db:"is_active"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toModel(obj *course.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	if obj.CreatedAt.IsZero() {
		obj.CreatedAt = time.Now().UTC()
	}

	var prerequisite sql.NullString
	if obj.Prerequisite != nil {
		prerequisite = sql.NullString{String: *obj.Prerequisite, Valid: true}
	}

	return &model{
		Id:                      sql.NullInt64{Int64: int64(obj.Id), Valid: true},
		Address:                 obj.Address,
		Bump:                    obj.Bump,
		CourseId:                obj.CourseId,
		Creator:                 obj.Creator,
		Authority:               obj.Authority,
		ContentTxId:             obj.ContentTxId,
		Version:                 obj.Version,
		LessonCount:             obj.LessonCount,
		Difficulty:              obj.Difficulty,
		XpPerLesson:             obj.XpPerLesson,
		TrackId:                 obj.TrackId,
		TrackLevel:              obj.TrackLevel,
		Prerequisite:            prerequisite,
		CompletionBonusXp:       obj.CompletionBonusXp,
		CreatorRewardXp:         obj.CreatorRewardXp,
		MinCompletionsForReward: obj.MinCompletionsForReward,
		TotalCompletions:        obj.TotalCompletions,
		TotalEnrollments:        obj.TotalEnrollments,
		IsActive:                obj.IsActive,
		CreatedAt:               obj.CreatedAt,
		UpdatedAt:               time.Now().UTC(),
	}, nil
}

func fromModel(obj *model) *course.Record {
	var prerequisite *string
	if obj.Prerequisite.Valid {
		value := obj.Prerequisite.String
		prerequisite = &value
	}

	return &course.Record{
		Id:                      uint64(obj.Id.Int64),
		Address:                 obj.Address,
		Bump:                    obj.Bump,
		CourseId:                obj.CourseId,
		Creator:                 obj.Creator,
		Authority:               obj.Authority,
		ContentTxId:             obj.ContentTxId,
		Version:                 obj.Version,
		LessonCount:             obj.LessonCount,
		Difficulty:              obj.Difficulty,
		XpPerLesson:             obj.XpPerLesson,
		TrackId:                 obj.TrackId,
		TrackLevel:              obj.TrackLevel,
		Prerequisite:            prerequisite,
		CompletionBonusXp:       obj.CompletionBonusXp,
		CreatorRewardXp:         obj.CreatorRewardXp,
		MinCompletionsForReward: obj.MinCompletionsForReward,
		TotalCompletions:        obj.TotalCompletions,
		TotalEnrollments:        obj.TotalEnrollments,
		IsActive:                obj.IsActive,
		CreatedAt:               obj.CreatedAt,
		UpdatedAt:               obj.UpdatedAt,
	}
}

const allColumns = `id, address, bump, course_id, creator, authority, content_tx_id, version, lesson_count, difficulty, xp_per_lesson, track_id, track_level, prerequisite, completion_bonus_xp, creator_reward_xp, min_completions_for_reward, total_completions, total_enrollments, is_active, created_at, updated_at`

func (m *model) dbCreate(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, course_id, creator, authority, content_tx_id, version, lesson_count, difficulty, xp_per_lesson, track_id, track_level, prerequisite, completion_bonus_xp, creator_reward_xp, min_completions_for_reward, total_completions, total_enrollments, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			RETURNING ` + allColumns

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.CourseId,
			m.Creator,
			m.Authority,
			m.ContentTxId,
			m.Version,
			m.LessonCount,
			m.Difficulty,
			m.XpPerLesson,
			m.TrackId,
			m.TrackLevel,
			m.Prerequisite,
			m.CompletionBonusXp,
			m.CreatorRewardXp,
			m.MinCompletionsForReward,
			m.TotalCompletions,
			m.TotalEnrollments,
			m.IsActive,
			m.CreatedAt,
			m.UpdatedAt,
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, course.ErrCourseExists)
	})
}

func (m *model) dbSave(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		existing := &model{}
		err := tx.GetContext(ctx, existing, `SELECT `+allColumns+` FROM `+tableName+` WHERE course_id = $1 FOR UPDATE`, m.CourseId)
		if err != nil {
			return pgutil.CheckNoRows(err, course.ErrCourseNotFound)
		}

		if m.Version < existing.Version {
			return course.ErrStaleVersion
		}

		query := `UPDATE ` + tableName + `
			SET authority = $2, content_tx_id = $3, version = $4, xp_per_lesson = $5, prerequisite = $6, completion_bonus_xp = $7, creator_reward_xp = $8, min_completions_for_reward = $9, total_completions = $10, total_enrollments = $11, is_active = $12, updated_at = $13
			WHERE course_id = $1
			RETURNING ` + allColumns

		err = tx.QueryRowxContext(
			ctx,
			query,
			m.CourseId,
			m.Authority,
			m.ContentTxId,
			m.Version,
			m.XpPerLesson,
			m.Prerequisite,
			m.CompletionBonusXp,
			m.CreatorRewardXp,
			m.MinCompletionsForReward,
			m.TotalCompletions,
			m.TotalEnrollments,
			m.IsActive,
			m.UpdatedAt,
		).StructScan(m)

		return pgutil.CheckNoRows(err, course.ErrCourseNotFound)
	})
}

func dbGetByCourseId(ctx context.Context, db *sqlx.DB, courseId string) (*model, error) {
	res := &model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` WHERE course_id = $1`

	err := db.GetContext(ctx, res, query, courseId)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, course.ErrCourseNotFound)
	}
	return res, nil
}

func dbGetByAddress(ctx context.Context, db *sqlx.DB, address string) (*model, error) {
	res := &model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` WHERE address = $1`

	err := db.GetContext(ctx, res, query, address)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, course.ErrCourseNotFound)
	}
	return res, nil
}

func dbGetAll(ctx context.Context, db *sqlx.DB) ([]*model, error) {
	res := []*model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` ORDER BY id`

	err := db.SelectContext(ctx, &res, query)
	if err != nil {
		return nil, err
	}
	return res, nil
}
