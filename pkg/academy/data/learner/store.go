package learner

import (
	"context"
	"errors"
)

var (
	ErrLearnerProfileNotFound = errors.New("learner profile record not found")
	ErrLearnerProfileExists   = errors.New("learner profile record already exists")
)

type Store interface {
	// CreateLearnerProfile creates a new learner profile record. Returns
	// ErrLearnerProfileExists if one already exists for the owner.
	CreateLearnerProfile(ctx context.Context, record *Record) error

	// GetLearnerProfile gets a learner profile record by its owner.
	GetLearnerProfile(ctx context.Context, owner string) (*Record, error)

	// SaveLearnerProfile updates an existing learner profile record.
	SaveLearnerProfile(ctx context.Context, record *Record) error
}
