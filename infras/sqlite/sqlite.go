package sqlite

//nolint:revive
import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	sqliteMaxOpenConnection = 1
	sqliteConnMaxLifetime   = time.Hour
	sqliteDSNOptions        = "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_foreign_keys=on"
)

// Connection is the on-device record store. SQLite serializes writers, so read and
// write share one handle.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	db, err := Open(config.DB.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.DB.SQLite.Path).Msg("Failed to open local store")
	}

	return &Connection{
		Read:  db,
		Write: db,
	}
}

// Open opens (and creates if needed) the SQLite database at path. ":memory:" is accepted.
func Open(path string) (*sqlx.DB, error) {
	dsn := path

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		dsn = path + sqliteDSNOptions
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	db.SetMaxOpenConns(sqliteMaxOpenConnection)
	db.SetConnMaxLifetime(sqliteConnMaxLifetime)

	log.Info().Str("path", path).Msg("Connected to local store")

	return db, nil
}
