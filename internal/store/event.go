package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	GameMode string    // exact game mode match when non-empty
}

// GameEventData captures the result of one finished game.
type GameEventData struct {
	SessionID    string
	GameMode     string
	Subject      string
	Score        int
	MaxCombo     int
	Correct      int
	Wrong        int
	Accuracy     int
	Grade        string
	XP           int
	DurationSecs int
	Perfect      bool
}

// GameEventRecord is a stored game event.
type GameEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	GameEventData
}

// GameTotals aggregates the game log.
type GameTotals struct {
	Games      int
	TotalScore int
	TotalXP    int
	BestScore  int
	Correct    int
	Wrong      int
	Perfect    int
}

// EventRepo provides append and query access to the game log.
type EventRepo interface {
	// AppendGameEvent records a finished game.
	AppendGameEvent(ctx context.Context, data GameEventData) error

	// QueryGameEvents returns games matching opts, newest first.
	QueryGameEvents(ctx context.Context, opts QueryOpts) ([]GameEventRecord, error)

	// GetGameEvent returns one game by sequence, or ErrNotFound.
	GetGameEvent(ctx context.Context, sequence int64) (*GameEventRecord, error)

	// GameTotals aggregates every game matching opts (Limit is ignored).
	GameTotals(ctx context.Context, opts QueryOpts) (GameTotals, error)

	// DeleteGameEvents clears the log.
	DeleteGameEvents(ctx context.Context) error
}

var gameEventColumns = []string{
	"sequence", "timestamp", "session_id", "game_mode", "subject", "score",
	"max_combo", "correct", "wrong", "accuracy", "grade", "xp",
	"duration_secs", "perfect",
}

// eventRepo implements EventRepo on the game_events table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	query, args := builder().Insert(eventsTable).
		Columns(gameEventColumns[1:]...).
		Values(
			time.Now().UnixMilli(),
			data.SessionID,
			data.GameMode,
			data.Subject,
			data.Score,
			data.MaxCombo,
			data.Correct,
			data.Wrong,
			data.Accuracy,
			data.Grade,
			data.XP,
			data.DurationSecs,
			data.Perfect,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGameEvents(ctx context.Context, opts QueryOpts) ([]GameEventRecord, error) {
	b := builder()
	sel := b.Select(gameEventColumns...).
		From(b.Table(eventsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}
	defer rows.Close()

	var out []GameEventRecord
	for rows.Next() {
		rec, err := scanGameEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game event: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetGameEvent(ctx context.Context, sequence int64) (*GameEventRecord, error) {
	b := builder()
	query, args := b.Select(gameEventColumns...).
		From(b.Table(eventsTable)).
		Where(entsql.EQ("sequence", sequence)).
		Query()

	rec, err := scanGameEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game event %d: %w", sequence, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get game event %d: %w", sequence, err)
	}
	return rec, nil
}

func (r *eventRepo) GameTotals(ctx context.Context, opts QueryOpts) (GameTotals, error) {
	opts.Limit = 0
	events, err := r.QueryGameEvents(ctx, opts)
	if err != nil {
		return GameTotals{}, err
	}

	var t GameTotals
	for _, e := range events {
		t.Games++
		t.TotalScore += e.Score
		t.TotalXP += e.XP
		t.BestScore = max(t.BestScore, e.Score)
		t.Correct += e.Correct
		t.Wrong += e.Wrong
		if e.Perfect {
			t.Perfect++
		}
	}
	return t, nil
}

func (r *eventRepo) DeleteGameEvents(ctx context.Context) error {
	query, args := builder().Delete(eventsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete game events: %w", err)
	}
	return nil
}

func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if opts.GameMode != "" {
		sel.Where(entsql.EQ("game_mode", opts.GameMode))
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGameEvent(row rowScanner) (*GameEventRecord, error) {
	var (
		rec     GameEventRecord
		tsMilli int64
	)
	err := row.Scan(
		&rec.Sequence,
		&tsMilli,
		&rec.SessionID,
		&rec.GameMode,
		&rec.Subject,
		&rec.Score,
		&rec.MaxCombo,
		&rec.Correct,
		&rec.Wrong,
		&rec.Accuracy,
		&rec.Grade,
		&rec.XP,
		&rec.DurationSecs,
		&rec.Perfect,
	)
	if err != nil {
		return nil, err
	}
	rec.Timestamp = time.UnixMilli(tsMilli)
	return &rec, nil
}
