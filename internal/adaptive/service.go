package adaptive

import (
	"context"
	"fmt"

	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/store"
)

// Service keeps a Tracker in sync with durable state. Every update is
// written back immediately; the last write wins.
type Service struct {
	tracker *Tracker
	repo    store.StateRepo
}

// NewService creates a service with an empty tracker. Call Load to restore
// persisted state. A nil repo keeps state in memory only.
func NewService(repo store.StateRepo, c clock.Clock) *Service {
	return &Service{tracker: NewTracker(c), repo: repo}
}

// Tracker exposes the underlying tracker for queries.
func (s *Service) Tracker() *Tracker { return s.tracker }

// Load restores the tracker from the repo. Missing state leaves it empty.
func (s *Service) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	var st State
	ok, err := s.repo.Get(ctx, store.KeyAdaptiveDifficulty, &st)
	if err != nil {
		return fmt.Errorf("load adaptive difficulty: %w", err)
	}
	if ok {
		s.tracker.Restore(st)
	}
	return nil
}

// RecordAnswer updates the tracker and persists the result.
func (s *Service) RecordAnswer(ctx context.Context, correct bool, responseTimeMs int, subject string) error {
	s.tracker.RecordAnswer(correct, responseTimeMs, subject)
	return s.save(ctx)
}

// Reset clears the tracker and its persisted state.
func (s *Service) Reset(ctx context.Context) error {
	s.tracker.Reset()
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Delete(ctx, store.KeyAdaptiveDifficulty); err != nil {
		return fmt.Errorf("reset adaptive difficulty: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Put(ctx, store.KeyAdaptiveDifficulty, s.tracker.Snapshot()); err != nil {
		return fmt.Errorf("save adaptive difficulty: %w", err)
	}
	return nil
}
