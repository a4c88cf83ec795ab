package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for SQLite configuration databases.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider opens the configuration database and verifies the
// connection.
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	return &SQLiteProvider{db: db, dbPath: dbPath}, nil
}

// LoadConfig assembles the configuration from the observer, rest, and
// archive tables. The rest and archive sections are optional rows.
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	cfg := &ConfigData{}

	row := s.db.QueryRow(`SELECT name, latitude, longitude, tick_seconds FROM observer LIMIT 1`)
	var name sql.NullString
	var tickSeconds sql.NullInt64
	if err := row.Scan(&name, &cfg.Observer.Latitude, &cfg.Observer.Longitude, &tickSeconds); err != nil {
		return nil, fmt.Errorf("failed to load observer config: %w", err)
	}
	if name.Valid {
		cfg.Observer.Name = name.String
	}
	if tickSeconds.Valid {
		cfg.TickSeconds = int(tickSeconds.Int64)
	}

	rest, err := s.loadRESTServer()
	if err != nil {
		return nil, err
	}
	cfg.RESTServer = rest

	archive, err := s.loadArchive()
	if err != nil {
		return nil, err
	}
	cfg.Archive = archive

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config database %s: %w", s.dbPath, err)
	}
	return cfg, nil
}

func (s *SQLiteProvider) loadRESTServer() (*RESTServerData, error) {
	row := s.db.QueryRow(`SELECT listen_addr, port FROM rest_server LIMIT 1`)

	var rest RESTServerData
	var listenAddr sql.NullString
	err := row.Scan(&listenAddr, &rest.Port)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rest server config: %w", err)
	}
	if listenAddr.Valid {
		rest.ListenAddr = listenAddr.String
	}
	return &rest, nil
}

func (s *SQLiteProvider) loadArchive() (*ArchiveData, error) {
	row := s.db.QueryRow(`SELECT connection_string, interval_minutes FROM archive LIMIT 1`)

	var archive ArchiveData
	var interval sql.NullInt64
	err := row.Scan(&archive.ConnectionString, &interval)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load archive config: %w", err)
	}
	if interval.Valid {
		archive.IntervalMinutes = int(interval.Int64)
	}
	return &archive, nil
}

// IsReadOnly reports false; the SQLite backend accepts updates.
func (s *SQLiteProvider) IsReadOnly() bool { return false }

// Close closes the database handle.
func (s *SQLiteProvider) Close() error { return s.db.Close() }
