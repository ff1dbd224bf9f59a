package memory

import (
	"context"
	"sync"
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
)

type store struct {
	mu      sync.Mutex
	records []*learner.Record
	last    uint64
}

func New() learner.Store {
	return &store{
		records: make([]*learner.Record, 0),
	}
}

func (s *store) reset() {
	s.mu.Lock()
	s.records = make([]*learner.Record, 0)
	s.last = 0
	s.mu.Unlock()
}

// CreateLearnerProfile implements learner.Store.CreateLearnerProfile
func (s *store) CreateLearnerProfile(_ context.Context, data *learner.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findByOwner(data.Owner); item != nil {
		return learner.ErrLearnerProfileExists
	}

	s.last++
	data.Id = s.last
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	cloned := data.Clone()
	s.records = append(s.records, &cloned)

	return nil
}

// GetLearnerProfile implements learner.Store.GetLearnerProfile
func (s *store) GetLearnerProfile(_ context.Context, owner string) (*learner.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findByOwner(owner)
	if item == nil {
		return nil, learner.ErrLearnerProfileNotFound
	}

	cloned := item.Clone()
	return &cloned, nil
}

// SaveLearnerProfile implements learner.Store.SaveLearnerProfile
func (s *store) SaveLearnerProfile(_ context.Context, data *learner.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findByOwner(data.Owner)
	if item == nil {
		return learner.ErrLearnerProfileNotFound
	}

	data.Id = item.Id
	data.CopyTo(item)

	return nil
}

func (s *store) findByOwner(owner string) *learner.Record {
	for _, item := range s.records {
		if item.Owner == owner {
			return item
		}
	}
	return nil
}
