package reward

import (
	"context"
	"errors"
)

var (
	ErrRewardEntryNotFound = errors.New("reward entry not found")
)

type Store interface {
	// CreateRewardEntry appends a new entry to the reward ledger.
	CreateRewardEntry(ctx context.Context, record *Record) error

	// GetRewardEntriesByDestination gets all ledger entries paying out to a
	// destination, in insertion order.
	GetRewardEntriesByDestination(ctx context.Context, destination string) ([]*Record, error)

	// GetTotalRewarded sums the XP a destination earned within a season.
	GetTotalRewarded(ctx context.Context, destination string, season uint16) (uint64, error)
}
