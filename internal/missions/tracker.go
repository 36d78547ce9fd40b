// Package missions manages the daily mission: one randomly chosen objective
// per local calendar day with a progress counter and a one-time XP reward.
package missions

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/random"
	"github.com/abhisek/cramgames/internal/store"
)

// Tracker reads and writes the daily mission and lifetime stats through a
// StateRepo. Each operation is a read-modify-write; the last write wins.
type Tracker struct {
	repo    store.StateRepo
	clock   clock.Clock
	rng     *rand.Rand
	catalog []Template
}

// NewTracker creates a tracker. A nil repo keeps state in memory, a nil
// clock uses the wall clock, a nil rng uses the global source and an empty
// catalog falls back to GenericTemplates.
func NewTracker(repo store.StateRepo, c clock.Clock, rng *rand.Rand, catalog []Template) *Tracker {
	if repo == nil {
		repo = store.NewMemoryStateRepo()
	}
	if c == nil {
		c = clock.System{}
	}
	if len(catalog) == 0 {
		catalog = GenericTemplates
	}
	return &Tracker{repo: repo, clock: c, rng: rng, catalog: catalog}
}

// Mission returns today's mission, generating a fresh one when the stored
// mission belongs to another day.
func (t *Tracker) Mission(ctx context.Context) (Mission, error) {
	today := clock.Today(t.clock)

	var m Mission
	ok, err := t.repo.Get(ctx, store.KeyDailyMission, &m)
	if err != nil {
		return Mission{}, fmt.Errorf("load daily mission: %w", err)
	}
	if ok && m.Date == today {
		return m, nil
	}

	tmpl, _ := random.Pick(t.rng, t.catalog)
	m = tmpl.build(uuid.NewString(), today)
	if err := t.save(ctx, m); err != nil {
		return Mission{}, err
	}
	return m, nil
}

// UpdateProgress adds amount to today's mission when typ and the match
// fields agree with it. Mismatches are silent no-ops.
func (t *Tracker) UpdateProgress(ctx context.Context, typ MissionType, amount int, match Match) (Update, error) {
	return t.apply(ctx, typ, match, func(m Mission) int {
		return m.Progress + max(amount, 0)
	})
}

// ReachProgress raises progress to value if that is higher. It suits
// high-water objectives such as reaching a combo.
func (t *Tracker) ReachProgress(ctx context.Context, typ MissionType, value int, match Match) (Update, error) {
	return t.apply(ctx, typ, match, func(m Mission) int {
		return max(m.Progress, value)
	})
}

func (t *Tracker) apply(ctx context.Context, typ MissionType, match Match, next func(Mission) int) (Update, error) {
	m, err := t.Mission(ctx)
	if err != nil {
		return Update{}, err
	}
	if !m.matches(typ, match) || m.Completed {
		return Update{Mission: m}, nil
	}

	progress := min(next(m), m.Target)
	if progress <= m.Progress {
		return Update{Mission: m}, nil
	}
	m.Progress = progress
	m.Completed = m.Progress >= m.Target

	if err := t.save(ctx, m); err != nil {
		return Update{}, err
	}
	return Update{Mission: m, Changed: true, JustCompleted: m.Completed}, nil
}

// ClaimReward pays out today's mission once it is complete. It returns 0
// when the mission is incomplete or already claimed.
func (t *Tracker) ClaimReward(ctx context.Context) (int, error) {
	m, err := t.Mission(ctx)
	if err != nil {
		return 0, err
	}
	if !m.Claimable() {
		return 0, nil
	}

	stats, err := t.Stats(ctx)
	if err != nil {
		return 0, err
	}

	now := t.clock.Now()
	m.ClaimedAt = &now

	stats.MissionsCompleted++
	stats.TotalBonusXP += m.XPReward
	if clock.IsDayBefore(stats.LastClaimDate, m.Date) {
		stats.CurrentMissionStreak++
	} else {
		stats.CurrentMissionStreak = 1
	}
	stats.LastClaimDate = m.Date

	if err := t.save(ctx, m); err != nil {
		return 0, err
	}
	if err := t.repo.Put(ctx, store.KeyMissionStats, stats); err != nil {
		return 0, fmt.Errorf("save mission stats: %w", err)
	}
	return m.XPReward, nil
}

// Stats returns lifetime mission totals.
func (t *Tracker) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	if _, err := t.repo.Get(ctx, store.KeyMissionStats, &s); err != nil {
		return Stats{}, fmt.Errorf("load mission stats: %w", err)
	}
	return s, nil
}

func (t *Tracker) save(ctx context.Context, m Mission) error {
	if err := t.repo.Put(ctx, store.KeyDailyMission, m); err != nil {
		return fmt.Errorf("save daily mission: %w", err)
	}
	return nil
}
