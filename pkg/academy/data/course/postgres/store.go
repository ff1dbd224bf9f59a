package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
)

type store struct {
	db *sqlx.DB
}

func New(db *sql.DB) course.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// CreateCourse implements course.Store.CreateCourse
func (s *store) CreateCourse(ctx context.Context, record *course.Record) error {
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

// GetCourseById implements course.Store.GetCourseById
func (s *store) GetCourseById(ctx context.Context, courseId string) (*course.Record, error) {
	m, err := dbGetByCourseId(ctx, s.db, courseId)
	if err != nil {
		return nil, err
	}
	return fromModel(m), nil
}

// GetCourseByAddress implements course.Store.GetCourseByAddress
func (s *store) GetCourseByAddress(ctx context.Context, address string) (*course.Record, error) {
	m, err := dbGetByAddress(ctx, s.db, address)
	if err != nil {
		return nil, err
	}
	return fromModel(m), nil
}

// SaveCourse implements course.Store.SaveCourse
func (s *store) SaveCourse(ctx context.Context, record *course.Record) error {
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

// GetAllCourses implements course.Store.GetAllCourses
func (s *store) GetAllCourses(ctx context.Context) ([]*course.Record, error) {
	models, err := dbGetAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	res := make([]*course.Record, len(models))
	for i, m := range models {
		res[i] = fromModel(m)
	}
	return res, nil
}
