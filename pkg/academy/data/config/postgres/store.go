package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
)

type store struct {
	db *sqlx.DB
}

func New(db *sql.DB) config.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// PutConfig implements config.Store.PutConfig
func (s *store) PutConfig(ctx context.Context, record *config.Record) error {
	m, err := toModel(record)
	if err != nil {
		return err
	}

	if err := m.dbPut(ctx, s.db); err != nil {
		return err
	}

	fromModel(m).CopyTo(record)

	return nil
}

// GetConfig implements config.Store.GetConfig
func (s *store) GetConfig(ctx context.Context) (*config.Record, error) {
	m, err := dbGet(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return fromModel(m), nil
}

// SaveConfig implements config.Store.SaveConfig
func (s *store) SaveConfig(ctx context.Context, record *config.Record) error {
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
