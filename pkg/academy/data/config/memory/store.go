package memory

import (
	"context"
	"sync"
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
)

type store struct {
	mu     sync.Mutex
	record *config.Record
}

func New() config.Store {
	return &store{}
}

func (s *store) reset() {
	s.mu.Lock()
	s.record = nil
	s.mu.Unlock()
}

// PutConfig implements config.Store.PutConfig
func (s *store) PutConfig(_ context.Context, data *config.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record != nil {
		return config.ErrConfigExists
	}

	data.Id = 1
	if data.LastUpdatedAt.IsZero() {
		data.LastUpdatedAt = time.Now()
	}

	cloned := data.Clone()
	s.record = &cloned

	return nil
}

// GetConfig implements config.Store.GetConfig
func (s *store) GetConfig(_ context.Context) (*config.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return nil, config.ErrConfigNotFound
	}

	cloned := s.record.Clone()
	return &cloned, nil
}

// SaveConfig implements config.Store.SaveConfig
func (s *store) SaveConfig(_ context.Context, data *config.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return config.ErrConfigNotFound
	}

	data.Id = s.record.Id
	data.LastUpdatedAt = time.Now()

	cloned := data.Clone()
	s.record = &cloned

	return nil
}
