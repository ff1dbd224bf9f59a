package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
)

type store struct {
	db *sqlx.DB
}

func New(db *sql.DB) reward.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// CreateRewardEntry implements reward.Store.CreateRewardEntry
func (s *store) CreateRewardEntry(ctx context.Context, record *reward.Record) error {
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

// GetRewardEntriesByDestination implements reward.Store.GetRewardEntriesByDestination
func (s *store) GetRewardEntriesByDestination(ctx context.Context, destination string) ([]*reward.Record, error) {
	models, err := dbGetByDestination(ctx, s.db, destination)
	if err != nil {
		return nil, err
	}

	res := make([]*reward.Record, len(models))
	for i, m := range models {
		res[i] = fromModel(m)
	}
	return res, nil
}

// GetTotalRewarded implements reward.Store.GetTotalRewarded
func (s *store) GetTotalRewarded(ctx context.Context, destination string, season uint16) (uint64, error) {
	return dbGetTotal(ctx, s.db, destination, season)
}
