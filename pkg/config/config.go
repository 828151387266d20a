package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		User     int64  `env:"TELEGRAM_USER" env-required:"true" env-description:"Telegram user id allowed to drive the bot"`
		BotToken string `env:"TELEGRAM_TOKEN" env-required:"true"`
	}
	MediaAPI struct {
		BaseURL    string        `env:"MEDIA_API_BASE_URL" env-default:"https://media.mw.metropolia.fi/wbma/"`
		UploadsURL string        `env:"MEDIA_API_UPLOADS_URL" env-default:"https://media.mw.metropolia.fi/wbma/uploads/"`
		AppTag     string        `env:"MEDIA_APP_TAG" env-required:"true" env-description:"tag that marks files belonging to this app"`
		TokenKey   string        `env:"MEDIA_TOKEN_KEY" env-default:"userToken"`
		Timeout    time.Duration `env:"MEDIA_API_TIMEOUT" env-default:"0s"`
	}
	Upload struct {
		MaxDimension int `env:"UPLOAD_MAX_DIMENSION" env-default:"1920"`
	}
	Notifier struct {
		Interval  time.Duration `env:"NOTIFIER_INTERVAL" env-default:"10m"`
		Retention time.Duration `env:"NOTIFIER_RETENTION" env-default:"720h"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"1"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"2s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"5"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		// .env is optional; real environment variables win.
		_ = godotenv.Load()

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the lib/pq connection string used by goose.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// GetURL returns the postgres:// url used by pgxpool.
func (c *Config) GetURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
