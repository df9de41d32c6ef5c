package postgres

//nolint:revive
import (
	"dailytodo/config"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName     = "postgres"
	defaultSSLMode = "require"
)

// Connection holds the pools used by repositories. Read falls back to the
// write pool when no replica is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("closing read pool: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("closing write pool: %w", err)
		}
	}

	return nil
}

type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MaxRetry        int
	RetryWaitTime   time.Duration
}

func New(config *config.Config) *Connection {
	options := PoolOptionsFromConfig(config)

	write := CreatePostgresConnection("write", config.DB.URL, options)
	if config.DB.ReadURL == "" {
		return &Connection{Read: write, Write: write}
	}

	return &Connection{
		Read:  CreatePostgresConnection("read", config.DB.ReadURL, options),
		Write: write,
	}
}

func PoolOptionsFromConfig(config *config.Config) PoolOptions {
	return PoolOptions{
		MaxOpenConns:    config.DB.MaxOpenConns,
		MaxIdleConns:    config.DB.MaxIdleConns,
		ConnMaxLifetime: time.Duration(config.DB.ConnMaxLifetimeSeconds) * time.Second,
		MaxRetry:        config.DB.MaxRetry,
		RetryWaitTime:   time.Duration(config.DB.RetryWaitTime) * time.Second,
	}
}

// WithSSL returns dsn with sslmode=require unless the URL already names a mode.
func WithSSL(dsn string) (string, error) {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}

	switch parsed.Scheme {
	case "postgres", "postgresql":
	default:
		return "", fmt.Errorf("unsupported database url scheme %q", parsed.Scheme)
	}

	query := parsed.Query()
	if query.Get("sslmode") == "" {
		query.Set("sslmode", defaultSSLMode)
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// Configure applies pool sizing and connection recycling to db.
func Configure(db *sqlx.DB, options PoolOptions) {
	db.SetMaxOpenConns(options.MaxOpenConns)
	db.SetMaxIdleConns(options.MaxIdleConns)
	db.SetConnMaxLifetime(options.ConnMaxLifetime)
}

// CreatePostgresConnection connects to dsn, retrying up to MaxRetry times.
func CreatePostgresConnection(name, dsn string, options PoolOptions) *sqlx.DB {
	descriptor, err := WithSSL(dsn)
	if err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("Invalid database configuration")
	}

	redacted := redact(descriptor)

	for retry := range max(options.MaxRetry, 1) {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("url", redacted).
				Dur("connMaxLifetime", options.ConnMaxLifetime).
				Msg("Connected to database")

			Configure(sqlDB, options)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("url", redacted).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(options.RetryWaitTime)
	}

	log.Fatal().Str("name", name).Str("url", redacted).Msg("Could not connect to database")

	return nil
}

func redact(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return ""
	}

	return parsed.Redacted()
}
