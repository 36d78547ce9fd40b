// Package progression tracks lifetime XP, levels, the daily play streak and
// per-subject mastery badges.
package progression

import (
	"context"
	"fmt"

	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/store"
)

// SubjectTally counts answers for one subject.
type SubjectTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Badge returns the mastery badge the tally has earned.
func (t SubjectTally) Badge() Badge { return BadgeFor(t.Correct, t.Total) }

// Profile is the aggregate player record.
type Profile struct {
	TotalXP        int                     `json:"totalXP"`
	GamesPlayed    int                     `json:"gamesPlayed"`
	CurrentStreak  int                     `json:"currentStreak"`
	LongestStreak  int                     `json:"longestStreak"`
	LastPlayedDate string                  `json:"lastPlayedDate,omitempty"`
	BestScores     map[string]int          `json:"bestScores"`
	Subjects       map[string]SubjectTally `json:"subjects"`
}

// Level returns the level for the profile's total XP.
func (p Profile) Level() int { return LevelForXP(p.TotalXP) }

// GameResult is what a finished game contributes to the profile.
type GameResult struct {
	GameMode string
	Subject  string
	Score    int
	XP       int
	Correct  int
	Total    int
}

// Outcome describes how a game changed the profile.
type Outcome struct {
	Profile       Profile
	PreviousLevel int
	NewBest       bool
}

// LeveledUp reports whether the game crossed a level threshold.
func (o Outcome) LeveledUp() bool { return o.Profile.Level() > o.PreviousLevel }

// Service persists the profile through a StateRepo.
type Service struct {
	repo  store.StateRepo
	clock clock.Clock
}

// NewService creates a progression service. A nil repo keeps the profile in
// memory and a nil clock uses the wall clock.
func NewService(repo store.StateRepo, c clock.Clock) *Service {
	if repo == nil {
		repo = store.NewMemoryStateRepo()
	}
	if c == nil {
		c = clock.System{}
	}
	return &Service{repo: repo, clock: c}
}

// Profile returns the stored profile, or an empty one.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	if _, err := s.repo.Get(ctx, store.KeyProfile, &p); err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if p.BestScores == nil {
		p.BestScores = make(map[string]int)
	}
	if p.Subjects == nil {
		p.Subjects = make(map[string]SubjectTally)
	}
	return p, nil
}

// RecordGame folds a finished game into the profile.
func (s *Service) RecordGame(ctx context.Context, r GameResult) (Outcome, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{PreviousLevel: p.Level()}

	p.TotalXP += max(r.XP, 0)
	p.GamesPlayed++

	today := clock.Today(s.clock)
	switch {
	case p.LastPlayedDate == today:
	case clock.IsDayBefore(p.LastPlayedDate, today):
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}
	p.LastPlayedDate = today
	p.LongestStreak = max(p.LongestStreak, p.CurrentStreak)

	if r.GameMode != "" && r.Score > p.BestScores[r.GameMode] {
		p.BestScores[r.GameMode] = r.Score
		out.NewBest = true
	}
	if r.Subject != "" && r.Total > 0 {
		tally := p.Subjects[r.Subject]
		tally.Correct += r.Correct
		tally.Total += r.Total
		p.Subjects[r.Subject] = tally
	}

	if err := s.save(ctx, p); err != nil {
		return Outcome{}, err
	}
	out.Profile = p
	return out, nil
}

// AddBonusXP credits xp outside a game, such as a mission reward.
func (s *Service) AddBonusXP(ctx context.Context, xp int) (Profile, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return Profile{}, err
	}
	p.TotalXP += max(xp, 0)
	if err := s.save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Reset deletes the profile.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Delete(ctx, store.KeyProfile); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, p Profile) error {
	if err := s.repo.Put(ctx, store.KeyProfile, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
