package enrollment

import (
	"context"
	"errors"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment record not found")
	ErrEnrollmentExists   = errors.New("enrollment record already exists")
)

type Store interface {
	// CreateEnrollment creates a new enrollment record. Returns
	// ErrEnrollmentExists if one already exists for the (course, learner)
	// pair.
	CreateEnrollment(ctx context.Context, record *Record) error

	// GetEnrollment gets an enrollment record by its (course, learner) pair.
	GetEnrollment(ctx context.Context, courseId, learner string) (*Record, error)

	// GetEnrollmentsByLearner gets all enrollment records for a learner.
	GetEnrollmentsByLearner(ctx context.Context, learner string) ([]*Record, error)

	// SaveEnrollment updates an existing enrollment record.
	SaveEnrollment(ctx context.Context, record *Record) error

	// DeleteEnrollment deletes an enrollment record, reclaiming its storage.
	DeleteEnrollment(ctx context.Context, courseId, learner string) error
}
