package repository

import (
	"context"
	"sync"

	"realty-agent/domain"
)

// Keys under which the analytics service mirrors its state.
const (
	KeyInteractionCounts = "real_estate_interaction_counts"
	KeyPropertyStats     = "re_property_analytics"
	KeySearchHistory     = "re_search_history"
)

// AnalyticsStore is a local key/value mirror plus an append-only event log.
type AnalyticsStore interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Store(ctx context.Context, key, value string) error
	AppendEvent(ctx context.Context, event domain.Event) error
	Events(ctx context.Context, limit int) ([]domain.Event, error)
	Close() error
}

type AnalyticsStoreMemory struct {
	mu     sync.Mutex
	values map[string]string
	events []domain.Event
}

func NewAnalyticsStoreMemory() *AnalyticsStoreMemory {
	return &AnalyticsStoreMemory{values: make(map[string]string)}
}

func (s *AnalyticsStoreMemory) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *AnalyticsStoreMemory) Store(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *AnalyticsStoreMemory) AppendEvent(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns up to limit events, newest first.
func (s *AnalyticsStoreMemory) Events(_ context.Context, limit int) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]domain.Event, 0, limit)
	for i := len(s.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *AnalyticsStoreMemory) Close() error { return nil }
