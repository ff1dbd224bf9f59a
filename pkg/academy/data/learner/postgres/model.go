package postgres

import (
	"context"
	"database/sql"
	"encoding/binary"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
	pgutil "github.com/superteam-academy/academy-server/pkg/database/postgres"
)

const (
	tableName = "academy__core_learnerprofile"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	Owner string `db:"owner"`

	CurrentStreak    uint16    `db:"current_streak"`
	LongestStreak    uint16    `db:"longest_streak"`
	LastActivityDate time.Time `db:"last_activity_date"`
	StreakFreezes    uint8     `db:"streak_freezes"`

	AchievementFlags []byte `db:"achievement_flags"`

	XpEarnedToday uint32 `db:"xp_earned_today"`
	LastXpDay     uint16 `db:"last_xp_day"`

	ReferralCount uint16         `db:"referral_count"`
	Referrer      sql.NullString `db:"referrer"`

	CreatedAt time.Time `db:"created_at"`
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

func toModel(obj *learner.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	if obj.CreatedAt.IsZero() {
		obj.CreatedAt = time.Now().UTC()
	}

	var referrer sql.NullString
	if obj.Referrer != nil {
		referrer = sql.NullString{String: *obj.Referrer, Valid: true}
	}

	return &model{
		Id:               sql.NullInt64{Int64: int64(obj.Id), Valid: true},
		Address:          obj.Address,
		Bump:             obj.Bump,
		Owner:            obj.Owner,
		CurrentStreak:    obj.CurrentStreak,
		LongestStreak:    obj.LongestStreak,
		LastActivityDate: obj.LastActivityDate.UTC(),
		StreakFreezes:    obj.StreakFreezes,
		AchievementFlags: flagsToBytes(obj.AchievementFlags),
		XpEarnedToday:    obj.XpEarnedToday,
		LastXpDay:        obj.LastXpDay,
		ReferralCount:    obj.ReferralCount,
		Referrer:         referrer,
		CreatedAt:        obj.CreatedAt,
	}, nil
}

func fromModel(obj *model) *learner.Record {
	var referrer *string
	if obj.Referrer.Valid {
		value := obj.Referrer.String
		referrer = &value
	}

	return &learner.Record{
		Id:               uint64(obj.Id.Int64),
		Address:          obj.Address,
		Bump:             obj.Bump,
		Owner:            obj.Owner,
		CurrentStreak:    obj.CurrentStreak,
		LongestStreak:    obj.LongestStreak,
		LastActivityDate: obj.LastActivityDate,
		StreakFreezes:    obj.StreakFreezes,
		AchievementFlags: flagsFromBytes(obj.AchievementFlags),
		XpEarnedToday:    obj.XpEarnedToday,
		LastXpDay:        obj.LastXpDay,
		ReferralCount:    obj.ReferralCount,
		Referrer:         referrer,
		CreatedAt:        obj.CreatedAt,
	}
}

const allColumns = `id, address, bump, owner, current_streak, longest_streak, last_activity_date, streak_freezes, achievement_flags, xp_earned_today, last_xp_day, referral_count, referrer, created_at`

func (m *model) dbCreate(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, owner, current_streak, longest_streak, last_activity_date, streak_freezes, achievement_flags, xp_earned_today, last_xp_day, referral_count, referrer, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING ` + allColumns

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Owner,
			m.CurrentStreak,
			m.LongestStreak,
			m.LastActivityDate,
			m.StreakFreezes,
			m.AchievementFlags,
			m.XpEarnedToday,
			m.LastXpDay,
			m.ReferralCount,
			m.Referrer,
			m.CreatedAt,
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, learner.ErrLearnerProfileExists)
	})
}

func (m *model) dbSave(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `UPDATE ` + tableName + `
			SET current_streak = $2, longest_streak = $3, last_activity_date = $4, streak_freezes = $5, achievement_flags = $6, xp_earned_today = $7, last_xp_day = $8, referral_count = $9, referrer = $10
			WHERE owner = $1
			RETURNING ` + allColumns

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Owner,
			m.CurrentStreak,
			m.LongestStreak,
			m.LastActivityDate,
			m.StreakFreezes,
			m.AchievementFlags,
			m.XpEarnedToday,
			m.LastXpDay,
			m.ReferralCount,
			m.Referrer,
		).StructScan(m)

		return pgutil.CheckNoRows(err, learner.ErrLearnerProfileNotFound)
	})
}

func dbGetByOwner(ctx context.Context, db *sqlx.DB, owner string) (*model, error) {
	res := &model{}

	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` WHERE owner = $1`

	err := db.GetContext(ctx, res, query, owner)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, learner.ErrLearnerProfileNotFound)
	}
	return res, nil
}
