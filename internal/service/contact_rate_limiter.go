package service

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ContactRateLimiter limita envíos del formulario por dirección de correo.
type ContactRateLimiter interface {
	Allow(key string) bool
}

const redisContactAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisContactRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisContactRateLimiter(client *redis.Client, window time.Duration, max int) ContactRateLimiter {
	if client == nil {
		return nil
	}
	window, max = normalizeLimits(window, max)
	return &redisContactRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "contact:rl:",
	}
}

// Allow falla abierto si Redis no responde.
func (l *redisContactRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisContactAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

// memoryContactRateLimiter cuenta en proceso con ventanas fijas de go-cache.
type memoryContactRateLimiter struct {
	counts *cache.Cache
	window time.Duration
	max    int
}

func NewMemoryContactRateLimiter(window time.Duration, max int) ContactRateLimiter {
	window, max = normalizeLimits(window, max)
	return &memoryContactRateLimiter{
		counts: cache.New(window, window),
		window: window,
		max:    max,
	}
}

func (l *memoryContactRateLimiter) Allow(key string) bool {
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	if err := l.counts.Add(normalizedKey, 1, l.window); err == nil {
		return true
	}
	count, err := l.counts.IncrementInt(normalizedKey, 1)
	if err != nil {
		// La entrada expiró entre Add e Increment.
		l.counts.Set(normalizedKey, 1, l.window)
		return true
	}
	return count <= l.max
}

func normalizeLimits(window time.Duration, max int) (time.Duration, int) {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return window, max
}
