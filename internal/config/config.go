package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is the full process configuration.
type Config struct {
	Debug    bool `env:"DEBUG" envDefault:"true"`
	HTTP     HTTP
	Database Database
}

// HTTP holds the listener and CORS settings.
type HTTP struct {
	Host           string   `env:"HTTP_HOST" envDefault:"127.0.0.1"`
	Port           int      `env:"PORT" envDefault:"5000"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://*,https://*" envSeparator:","`
}

// Addr returns host:port for the listener.
func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// Database holds the store location and pool settings.
type Database struct {
	URL string `env:"DATABASE_URL" envDefault:"sqlite:///instance/todo.db"`
	// TrackModifications turns on statement-level ORM logging.
	TrackModifications bool          `env:"DB_TRACK_MODIFICATIONS" envDefault:"false"`
	MaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime    time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.HTTP.Port)
	}
	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL must not be empty")
	}
	return cfg, nil
}
