package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection is the remote record store that local stores sync against.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New connects to the remote store. It returns nil when sync is disabled or the remote
// is unreachable after every retry; callers run local-only in that case.
func New(config *config.Config) *Connection {
	if !config.Sync.Enable {
		log.Info().Msg("Remote sync disabled, running local-only")

		return nil
	}

	pg := config.DB.Postgres

	write := connect(config, "write", pg.Write)
	if write == nil {
		return nil
	}

	read := connect(config, "read", pg.Read)
	if read == nil {
		read = write
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// DSN renders the connection URL, applying the configured database name prefix.
func DSN(config *config.Config, ep config.PostgresEndpoint) string {
	sslMode := ep.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		ep.Username,
		ep.Password,
		net.JoinHostPort(ep.Host, ep.Port),
		config.DB.Postgres.Prefix+ep.Name,
		sslMode,
	)
}

func connect(config *config.Config, name string, ep config.PostgresEndpoint) *sqlx.DB {
	if ep.Host == "" {
		return nil
	}

	descriptor := DSN(config, ep)
	attempts := max(config.DB.Postgres.MaxRetry, 1)

	for retry := range attempts {
		db, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", ep.Host).
				Str("dbName", ep.Name).
				Msg("Connected to remote store")
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			return db
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", ep.Host).
			Int("attempt", retry+1).
			Msg("Failed connecting to remote store, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
