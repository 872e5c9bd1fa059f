package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Backends soportados para el almacenamiento clave/valor.
const (
	StoreBackendAuto     = "auto"
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"auto"`
	DatabaseURL  string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Latencias simuladas de los prototipos (modelan un round trip de red).
	ExtendReplyDelay time.Duration `env:"EXTEND_REPLY_DELAY" envDefault:"1000ms"`
	BackgroundDelay  time.Duration `env:"BACKGROUND_DELAY" envDefault:"1000ms"`
	WordRequestDelay time.Duration `env:"WORD_REQUEST_DELAY" envDefault:"800ms"`
	ContactDelay     time.Duration `env:"CONTACT_DELAY" envDefault:"1000ms"`

	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	ContactInbox string `env:"CONTACT_INBOX"`

	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`
	ContactRateMax    int           `env:"CONTACT_RATE_MAX" envDefault:"5"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveStoreBackend decide el backend efectivo cuando STORE_BACKEND=auto:
// redis si hay REDIS_ADDR, postgres si hay DATABASE_URL, memoria en otro caso.
func (c *Config) ResolveStoreBackend() string {
	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendPostgres:
		return c.StoreBackend
	}
	if c.RedisAddr != "" {
		return StoreBackendRedis
	}
	if c.DatabaseURL != "" {
		return StoreBackendPostgres
	}
	return StoreBackendMemory
}
