package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

func TestMemoryKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKVStore()

	if _, ok, _ := s.Get(ctx, "aac-user-profile"); ok {
		t.Fatalf("expected missing key")
	}
	value := "I have a dog.\n  Ünïcode ✓  "
	if err := s.Set(ctx, "aac-user-profile", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "aac-user-profile")
	if err != nil || !ok || got != value {
		t.Fatalf("expected byte-identical round trip, got %q ok=%v err=%v", got, ok, err)
	}
	if err := s.Set(ctx, "aac-user-profile", "second"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _, _ := s.Get(ctx, "aac-user-profile"); got != "second" {
		t.Fatalf("expected last writer to win, got %q", got)
	}
	if err := s.Delete(ctx, "aac-user-profile"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "aac-user-profile"); ok {
		t.Fatalf("expected key removed")
	}
}

type mockRedisKV struct {
	data    map[string]string
	lastTTL time.Duration
	err     error
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	v, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	m.data[key] = value.(string)
	m.lastTTL = expiration
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func TestRedisKVStore(t *testing.T) {
	ctx := context.Background()
	mock := &mockRedisKV{data: map[string]string{}}
	s := &RedisKVStore{client: mock, prefix: "aac:kv:"}

	if _, ok, err := s.Get(ctx, "largeText"); ok || err != nil {
		t.Fatalf("expected missing key without error, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "largeText", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if mock.data["aac:kv:largeText"] != "true" {
		t.Fatalf("expected prefixed key, got %+v", mock.data)
	}
	if mock.lastTTL != 0 {
		t.Fatalf("expected no expiration, got %v", mock.lastTTL)
	}
	got, ok, err := s.Get(ctx, "largeText")
	if err != nil || !ok || got != "true" {
		t.Fatalf("unexpected get: %q %v %v", got, ok, err)
	}
	if err := s.Delete(ctx, "largeText"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(mock.data) != 0 {
		t.Fatalf("expected key deleted")
	}
}

func TestRedisKVStore_Error(t *testing.T) {
	s := &RedisKVStore{client: &mockRedisKV{err: errors.New("redis down")}, prefix: "aac:kv:"}
	if _, _, err := s.Get(context.Background(), "highContrast"); err == nil {
		t.Fatalf("expected error")
	}
}

type mockRow struct {
	value string
	err   error
}

func (r mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type mockPool struct {
	rows     map[string]string
	lastSQL  string
	lastArgs []any
	execErr  error
}

func (m *mockPool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.lastSQL = sql
	m.lastArgs = args
	if m.execErr != nil {
		return pgconn.CommandTag{}, m.execErr
	}
	key := args[0].(string)
	if len(args) == 2 {
		m.rows[key] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	delete(m.rows, key)
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (m *mockPool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.lastSQL = sql
	v, ok := m.rows[args[0].(string)]
	if !ok {
		return mockRow{err: pgx.ErrNoRows}
	}
	return mockRow{value: v}
}

func TestPgKVStore(t *testing.T) {
	ctx := context.Background()
	pool := &mockPool{rows: map[string]string{}}
	s := NewPgKVStore(pool)

	if _, ok, err := s.Get(ctx, "aac-user-profile"); ok || err != nil {
		t.Fatalf("expected missing row mapped to ok=false, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "aac-user-profile", "music"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "aac-user-profile")
	if err != nil || !ok || got != "music" {
		t.Fatalf("unexpected get: %q %v %v", got, ok, err)
	}
	if err := s.Delete(ctx, "aac-user-profile"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "aac-user-profile"); ok {
		t.Fatalf("expected row deleted")
	}
}

func TestPgKVStore_ExecError(t *testing.T) {
	pool := &mockPool{rows: map[string]string{}, execErr: errors.New("db down")}
	s := NewPgKVStore(pool)
	if err := s.Set(context.Background(), "k", "v"); err == nil {
		t.Fatalf("expected error")
	}
}
