package memory

import (
	"context"
	"sync"
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
)

type store struct {
	mu      sync.Mutex
	records []*course.Record
	last    uint64
}

func New() course.Store {
	return &store{
		records: make([]*course.Record, 0),
	}
}

func (s *store) reset() {
	s.mu.Lock()
	s.records = make([]*course.Record, 0)
	s.last = 0
	s.mu.Unlock()
}

// CreateCourse implements course.Store.CreateCourse
func (s *store) CreateCourse(_ context.Context, data *course.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findByCourseId(data.CourseId); item != nil {
		return course.ErrCourseExists
	}

	s.last++
	data.Id = s.last
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	if data.UpdatedAt.IsZero() {
		data.UpdatedAt = data.CreatedAt
	}

	cloned := data.Clone()
	s.records = append(s.records, &cloned)

	return nil
}

// GetCourseById implements course.Store.GetCourseById
func (s *store) GetCourseById(_ context.Context, courseId string) (*course.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findByCourseId(courseId)
	if item == nil {
		return nil, course.ErrCourseNotFound
	}

	cloned := item.Clone()
	return &cloned, nil
}

// GetCourseByAddress implements course.Store.GetCourseByAddress
func (s *store) GetCourseByAddress(_ context.Context, address string) (*course.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.records {
		if item.Address == address {
			cloned := item.Clone()
			return &cloned, nil
		}
	}
	return nil, course.ErrCourseNotFound
}

// SaveCourse implements course.Store.SaveCourse
func (s *store) SaveCourse(_ context.Context, data *course.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findByCourseId(data.CourseId)
	if item == nil {
		return course.ErrCourseNotFound
	}

	if data.Version < item.Version {
		return course.ErrStaleVersion
	}

	data.Id = item.Id
	data.UpdatedAt = time.Now()

	data.CopyTo(item)

	return nil
}

// GetAllCourses implements course.Store.GetAllCourses
func (s *store) GetAllCourses(_ context.Context) ([]*course.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*course.Record, 0, len(s.records))
	for _, item := range s.records {
		cloned := item.Clone()
		res = append(res, &cloned)
	}
	return res, nil
}

func (s *store) findByCourseId(courseId string) *course.Record {
	for _, item := range s.records {
		if item.CourseId == courseId {
			return item
		}
	}
	return nil
}
