package course

import (
	"context"
	"errors"
)

var (
	ErrCourseNotFound = errors.New("course record not found")
	ErrCourseExists   = errors.New("course record already exists")
	ErrStaleVersion   = errors.New("course version is stale")
)

type Store interface {
	// CreateCourse creates a new course record. Returns ErrCourseExists if a
	// record for the course id already exists.
	CreateCourse(ctx context.Context, record *Record) error

	// GetCourseById gets a course record by its course id.
	GetCourseById(ctx context.Context, courseId string) (*Record, error)

	// GetCourseByAddress gets a course record by its derived address.
	GetCourseByAddress(ctx context.Context, address string) (*Record, error)

	// SaveCourse updates an existing course record. The update is rejected
	// with ErrStaleVersion if the record's version is lower than the
	// persisted one, keeping version monotonic.
	SaveCourse(ctx context.Context, record *Record) error

	// GetAllCourses gets all course records.
	GetAllCourses(ctx context.Context) ([]*Record, error)
}
