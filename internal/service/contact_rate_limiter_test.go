package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisContactRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisContactRateLimiter
		if !l.Allow("user@example.com") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisContactRateLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    3,
			prefix: "contact:rl:",
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisContactRateLimiter{
			client: mock,
			window: 2 * time.Minute,
			max:    3,
			prefix: "contact:rl:",
		}
		if !l.Allow(" User@Example.com ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "contact:rl:user@example.com" {
			t.Fatalf("unexpected key normalization, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("expected TTL seconds=120, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisContactAllowScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisContactRateLimiter{
			client: &mockRedisEvaler{result: 4},
			window: time.Minute,
			max:    3,
			prefix: "contact:rl:",
		}
		if l.Allow("user@example.com") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisContactRateLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    3,
			prefix: "contact:rl:",
		}
		if !l.Allow("user@example.com") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}

func TestMemoryContactRateLimiterAllow(t *testing.T) {
	l := NewMemoryContactRateLimiter(time.Minute, 2)
	if !l.Allow("a@example.com") || !l.Allow(" A@example.com ") {
		t.Fatalf("expected first two submissions allowed")
	}
	if l.Allow("a@example.com") {
		t.Fatalf("expected third submission denied")
	}
	if !l.Allow("b@example.com") {
		t.Fatalf("expected other senders unaffected")
	}
	if l.Allow("") {
		t.Fatalf("expected empty key rejected")
	}
}

func TestMemoryContactRateLimiter_WindowResets(t *testing.T) {
	l := NewMemoryContactRateLimiter(20*time.Millisecond, 1)
	if !l.Allow("a@example.com") {
		t.Fatalf("expected first submission allowed")
	}
	if l.Allow("a@example.com") {
		t.Fatalf("expected second submission denied")
	}
	time.Sleep(40 * time.Millisecond)
	if !l.Allow("a@example.com") {
		t.Fatalf("expected allowance after window")
	}
}
