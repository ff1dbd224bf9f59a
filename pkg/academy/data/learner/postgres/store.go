package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
)

type store struct {
	db *sqlx.DB
}

func New(db *sql.DB) learner.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// CreateLearnerProfile implements learner.Store.CreateLearnerProfile
func (s *store) CreateLearnerProfile(ctx context.Context, record *learner.Record) error {
	m, err := toModel(record)
	if err != nil {
		return err
	}

	if err := m.dbCreate(ctx, s.db); err != nil {
		return err
	}

	fromModel(m).CopyTo(record)

	return nil
}

// GetLearnerProfile implements learner.Store.GetLearnerProfile
func (s *store) GetLearnerProfile(ctx context.Context, owner string) (*learner.Record, error) {
	m, err := dbGetByOwner(ctx, s.db, owner)
	if err != nil {
		return nil, err
	}
	return fromModel(m), nil
}

// SaveLearnerProfile implements learner.Store.SaveLearnerProfile
func (s *store) SaveLearnerProfile(ctx context.Context, record *learner.Record) error {
	m, err := toModel(record)
	if err != nil {
		return err
	}

	if err := m.dbSave(ctx, s.db); err != nil {
		return err
	}

	fromModel(m).CopyTo(record)

	return nil
}
