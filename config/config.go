package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

// PostgresEndpoint addresses one side of the remote store.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`
		Host     string `envconfig:"HOST"`
		Port     string `envconfig:"PORT" default:"8080"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"frontdesk"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
		APIKey   string `envconfig:"API_KEY"`
		Admin    struct {
			LoginID  string `envconfig:"LOGIN_ID" default:"admin"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"ADMIN"`
		CORS struct {
			Enable           bool     `envconfig:"ENABLE"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		SQLite struct {
			Path           string `envconfig:"PATH" default:"data/frontdesk.db"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`
		} `envconfig:"SQLITE"`
		Postgres struct {
			Prefix         string           `envconfig:"PREFIX"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			MaxRetry       int              `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Cache struct {
		TTL   int `envconfig:"TTL" default:"300"`
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	Sync struct {
		Enable bool     `envconfig:"ENABLE"`
		Tables []string `envconfig:"TABLES"`
	} `envconfig:"SYNC"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			StayEvents string `envconfig:"STAY_EVENTS" default:"frontdesk.stay.events"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		} `envconfig:"S3"`
	}
}

var (
	conf    Config
	loadErr error
	once    sync.Once
)

// Load reads an optional .env file into the environment and decodes the environment
// into the process-wide configuration. Only the first call does any work.
func Load() error {
	once.Do(func() {
		switch err := godotenv.Load(envFile); {
		case err == nil:
			log.Info().Str("file", envFile).Msg("Loaded environment file")
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("file", envFile).Msg("No environment file, using process environment")
		default:
			loadErr = fmt.Errorf("reading %s: %w", envFile, err)

			return
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("decoding environment: %w", err)
		}
	})

	return loadErr
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	if err := Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return &conf
}
