package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/app"
	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/config"
	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/store"
	"github.com/abhisek/cramgames/internal/timer"
	"github.com/spf13/cobra"
)

// services holds the opened store and the long-lived game services.
type services struct {
	cfg      config.Config
	store    *store.Store
	state    store.StateRepo
	adaptive *adaptive.Service
	missions *missions.Tracker
	progress *progression.Service
	closers  []io.Closer
}

// openServices loads config, opens the SQLite store and, when configured,
// moves persisted state to Redis.
func openServices(cmd *cobra.Command) (*services, error) {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	svc := &services{cfg: cfg, store: st, state: st.StateRepo(), closers: []io.Closer{st}}
	if cfg.Redis.Enabled() {
		rs, err := store.DialRedis(ctx, store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			svc.Close()
			return nil, fmt.Errorf("open redis state: %w", err)
		}
		svc.state = rs
		svc.closers = append(svc.closers, rs)
	}

	c := clock.System{}
	svc.adaptive = adaptive.NewService(svc.state, c)
	if err := svc.adaptive.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	svc.missions = missions.NewTracker(svc.state, c, nil, missions.Catalog(quiz.SubjectNames()))
	svc.progress = progression.NewService(svc.state, c)
	return svc, nil
}

// launcher builds a game launcher driven by sched.
func (s *services) launcher(sched timer.Scheduler) *game.Launcher {
	return game.NewLauncher(game.Deps{
		Adaptive:  s.adaptive,
		Missions:  s.missions,
		Progress:  s.progress,
		Events:    s.store.EventRepo(),
		Clock:     clock.System{},
		Scheduler: sched,
	}, s.cfg.Game.Seconds, s.cfg.Game.BasePoints)
}

// Close releases every backend, newest first.
func (s *services) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	// The TUI drives the countdown from its own tick messages.
	return app.Run(svc.launcher(timer.ManualScheduler{}))
}
