package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
)

type store struct {
	db *sqlx.DB
}

func New(db *sql.DB) enrollment.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// CreateEnrollment implements enrollment.Store.CreateEnrollment
func (s *store) CreateEnrollment(ctx context.Context, record *enrollment.Record) error {
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

// GetEnrollment implements enrollment.Store.GetEnrollment
func (s *store) GetEnrollment(ctx context.Context, courseId, learner string) (*enrollment.Record, error) {
	m, err := dbGet(ctx, s.db, courseId, learner)
	if err != nil {
		return nil, err
	}
	return fromModel(m), nil
}

// GetEnrollmentsByLearner implements enrollment.Store.GetEnrollmentsByLearner
func (s *store) GetEnrollmentsByLearner(ctx context.Context, learner string) ([]*enrollment.Record, error) {
	models, err := dbGetByLearner(ctx, s.db, learner)
	if err != nil {
		return nil, err
	}

	res := make([]*enrollment.Record, len(models))
	for i, m := range models {
		res[i] = fromModel(m)
	}
	return res, nil
}

// SaveEnrollment implements enrollment.Store.SaveEnrollment
func (s *store) SaveEnrollment(ctx context.Context, record *enrollment.Record) error {
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

// DeleteEnrollment implements enrollment.Store.DeleteEnrollment
func (s *store) DeleteEnrollment(ctx context.Context, courseId, learner string) error {
	return dbDelete(ctx, s.db, courseId, learner)
}
