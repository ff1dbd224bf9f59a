package memory

import (
	"context"
	"sync"
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
)

type store struct {
	mu      sync.Mutex
	records []*enrollment.Record
	last    uint64
}

func New() enrollment.Store {
	return &store{
		records: make([]*enrollment.Record, 0),
	}
}

func (s *store) reset() {
	s.mu.Lock()
	s.records = make([]*enrollment.Record, 0)
	s.last = 0
	s.mu.Unlock()
}

// CreateEnrollment implements enrollment.Store.CreateEnrollment
func (s *store) CreateEnrollment(_ context.Context, data *enrollment.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(data.CourseId, data.Learner); item != nil {
		return enrollment.ErrEnrollmentExists
	}

	s.last++
	data.Id = s.last
	if data.EnrolledAt.IsZero() {
		data.EnrolledAt = time.Now()
	}

	cloned := data.Clone()
	s.records = append(s.records, &cloned)

	return nil
}

// GetEnrollment implements enrollment.Store.GetEnrollment
func (s *store) GetEnrollment(_ context.Context, courseId, learner string) (*enrollment.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(courseId, learner)
	if item == nil {
		return nil, enrollment.ErrEnrollmentNotFound
	}

	cloned := item.Clone()
	return &cloned, nil
}

// GetEnrollmentsByLearner implements enrollment.Store.GetEnrollmentsByLearner
func (s *store) GetEnrollmentsByLearner(_ context.Context, learner string) ([]*enrollment.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*enrollment.Record, 0)
	for _, item := range s.records {
		if item.Learner == learner {
			cloned := item.Clone()
			res = append(res, &cloned)
		}
	}
	return res, nil
}

// SaveEnrollment implements enrollment.Store.SaveEnrollment
func (s *store) SaveEnrollment(_ context.Context, data *enrollment.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(data.CourseId, data.Learner)
	if item == nil {
		return enrollment.ErrEnrollmentNotFound
	}

	data.Id = item.Id
	data.CopyTo(item)

	return nil
}

// DeleteEnrollment implements enrollment.Store.DeleteEnrollment
func (s *store) DeleteEnrollment(_ context.Context, courseId, learner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.records {
		if item.CourseId == courseId && item.Learner == learner {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return enrollment.ErrEnrollmentNotFound
}

func (s *store) find(courseId, learner string) *enrollment.Record {
	for _, item := range s.records {
		if item.CourseId == courseId && item.Learner == learner {
			return item
		}
	}
	return nil
}
