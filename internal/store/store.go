package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// pragma is a connection setting and the value SQLite reports once it holds.
type pragma struct {
	name string
	set  string
	want string
}

// scanLogPragmas are applied on Open and read back. A scan log on a
// filesystem that cannot hold a WAL fails to open rather than silently
// falling back to a rollback journal.
var scanLogPragmas = []pragma{
	{name: "journal_mode", set: "WAL", want: "wal"},
	{name: "synchronous", set: "NORMAL", want: "1"},
	{name: "busy_timeout", set: "5000", want: "5000"},
	{name: "foreign_keys", set: "ON", want: "1"},
}

// migration upgrades a scan log by one user_version step.
type migration struct {
	version int
	name    string
	stmt    string
}

// migrations are applied in order to logs below their version. Each runs in
// one transaction with its user_version bump.
var migrations = []migration{
	{
		version: 1,
		name:    "index lines by content hash",
		stmt:    `CREATE INDEX IF NOT EXISTS idx_lines_hash ON lines(hash)`,
	},
	{
		version: 2,
		name:    "index scanned lines by run and metre",
		stmt:    `CREATE INDEX IF NOT EXISTS idx_lines_run_metre ON lines(run_id, metre) WHERE blank = 0`,
	},
}

// schemaVersion is the user_version of a fully migrated scan log.
var schemaVersion = migrations[len(migrations)-1].version

// Store is a scan log: recorded runs and the marked lines of each.
type Store struct {
	db  *sql.DB
	ids IDGenerator
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUIDv7 run ID generator, e.g. with a fixed
// sequence for golden tests.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// Open opens the scan log at path, creating it if needed, and brings its
// schema up to date. Opening the same log again is a no-op.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open scan log: %w", err)
	}

	// One writer: runs get their seq inside a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := prepare(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("scan log %s: %w", path, err)
	}

	s := &Store{db: db, ids: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func prepare(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	for _, p := range scanLogPragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.set)); err != nil {
			return fmt.Errorf("set %s: %w", p.name, err)
		}
		got, err := pragmaValue(db, p.name)
		if err != nil {
			return err
		}
		if got != p.want {
			return fmt.Errorf("%s = %q, expected %q", p.name, got, p.want)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return migrate(db)
}

// migrate applies every migration above the log's user_version. A log
// written by a newer schema is refused.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", version, schemaVersion)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d: set user_version: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
	}
	return nil
}

// Close closes the scan log.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SchemaVersion reports the user_version of the open scan log.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

func pragmaValue(db *sql.DB, name string) (string, error) {
	var value string
	if err := db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value); err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return value, nil
}
