package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.ExtendReplyDelay != time.Second || cfg.BackgroundDelay != time.Second {
		t.Fatalf("unexpected default delays: %v %v", cfg.ExtendReplyDelay, cfg.BackgroundDelay)
	}
	if cfg.WordRequestDelay != 800*time.Millisecond {
		t.Fatalf("expected 800ms word delay, got %v", cfg.WordRequestDelay)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m session ttl, got %v", cfg.SessionTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 default cors origins, got %+v", cfg.CORSOrigins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("WORD_REQUEST_DELAY", "5ms")
	t.Setenv("CORS_ORIGINS", "https://aac.example.org")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.WordRequestDelay != 5*time.Millisecond {
		t.Fatalf("expected 5ms, got %v", cfg.WordRequestDelay)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://aac.example.org" {
		t.Fatalf("unexpected cors origins: %+v", cfg.CORSOrigins)
	}
}

func TestResolveStoreBackend(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit memory", Config{StoreBackend: "memory", RedisAddr: "x"}, StoreBackendMemory},
		{"auto redis", Config{StoreBackend: "auto", RedisAddr: "localhost:6379", DatabaseURL: "pg"}, StoreBackendRedis},
		{"auto postgres", Config{StoreBackend: "auto", DatabaseURL: "postgres://x"}, StoreBackendPostgres},
		{"auto memory", Config{StoreBackend: "auto"}, StoreBackendMemory},
		{"unknown falls to auto", Config{StoreBackend: "sqlite"}, StoreBackendMemory},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cfg.ResolveStoreBackend(); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}
