package service

import (
	"context"
	"errors"
	"sync"

	"realty-agent/domain"
)

type trackedEvent struct {
	Name      domain.EventName
	Data      map[string]any
	SessionID string
}

type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (r *recordingTracker) Track(ctx context.Context, name domain.EventName, data map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{Name: name, Data: data, SessionID: SessionIDFromContext(ctx)})
}

func (r *recordingTracker) Events() []trackedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]trackedEvent(nil), r.events...)
}

type failingEstimateRepo struct {
	saves int
}

func (f *failingEstimateRepo) Save(domain.EstimateRecord) error {
	f.saves++
	return errors.New("disk full")
}

func (f *failingEstimateRepo) Recent(int) []domain.EstimateRecord { return nil }
