package memory

import (
	"context"
	"sync"
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
)

type store struct {
	mu      sync.Mutex
	records []*reward.Record
	last    uint64
}

func New() reward.Store {
	return &store{
		records: make([]*reward.Record, 0),
	}
}

func (s *store) reset() {
	s.mu.Lock()
	s.records = make([]*reward.Record, 0)
	s.last = 0
	s.mu.Unlock()
}

// CreateRewardEntry implements reward.Store.CreateRewardEntry
func (s *store) CreateRewardEntry(_ context.Context, data *reward.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	data.Id = s.last
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	cloned := data.Clone()
	s.records = append(s.records, &cloned)

	return nil
}

// GetRewardEntriesByDestination implements reward.Store.GetRewardEntriesByDestination
func (s *store) GetRewardEntriesByDestination(_ context.Context, destination string) ([]*reward.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*reward.Record, 0)
	for _, item := range s.records {
		if item.Destination == destination {
			cloned := item.Clone()
			res = append(res, &cloned)
		}
	}

	if len(res) == 0 {
		return nil, reward.ErrRewardEntryNotFound
	}
	return res, nil
}

// GetTotalRewarded implements reward.Store.GetTotalRewarded
func (s *store) GetTotalRewarded(_ context.Context, destination string, season uint16) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total uint64
	for _, item := range s.records {
		if item.Destination == destination && item.Season == season {
			total += item.Amount
		}
	}
	return total, nil
}
