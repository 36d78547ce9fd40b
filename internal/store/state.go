package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Well-known state keys.
const (
	KeyAdaptiveDifficulty = "adaptive_difficulty"
	KeyDailyMission       = "daily_mission"
	KeyMissionStats       = "mission_stats"
	KeyProfile            = "profile"
)

// AllStateKeys lists every key the application writes.
func AllStateKeys() []string {
	return []string{KeyAdaptiveDifficulty, KeyDailyMission, KeyMissionStats, KeyProfile}
}

// StateRepo is a durable key-value store for JSON-encoded state.
// Writes are last-write-wins.
type StateRepo interface {
	// Get decodes the value stored at key into v. It reports false when the
	// key is absent, leaving v untouched.
	Get(ctx context.Context, key string, v any) (bool, error)

	// Put encodes v as JSON and stores it at key.
	Put(ctx context.Context, key string, v any) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// sqliteStateRepo implements StateRepo on the kv_state table.
type sqliteStateRepo struct {
	db *sql.DB
}

func (r *sqliteStateRepo) Get(ctx context.Context, key string, v any) (bool, error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table(stateTable)).
		Where(entsql.EQ("state_key", key)).
		Query()

	var raw string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get state %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode state %q: %w", key, err)
	}
	return true, nil
}

func (r *sqliteStateRepo) Put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}

	query, args := builder().Insert(stateTable).
		Columns("state_key", "value", "updated_at").
		Values(key, string(data), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("state_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put state %q: %w", key, err)
	}
	return nil
}

func (r *sqliteStateRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete(stateTable).
		Where(entsql.EQ("state_key", key)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// MemoryStateRepo is an in-process StateRepo. Values are stored encoded so
// callers observe the same copy semantics as the durable backends.
type MemoryStateRepo struct {
	data map[string][]byte
}

// NewMemoryStateRepo returns an empty in-memory repo.
func NewMemoryStateRepo() *MemoryStateRepo {
	return &MemoryStateRepo{data: make(map[string][]byte)}
}

func (m *MemoryStateRepo) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode state %q: %w", key, err)
	}
	return true, nil
}

func (m *MemoryStateRepo) Put(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}
	m.data[key] = raw
	return nil
}

func (m *MemoryStateRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// ResetState deletes every well-known key from repo.
func ResetState(ctx context.Context, repo StateRepo) error {
	for _, k := range AllStateKeys() {
		if err := repo.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
