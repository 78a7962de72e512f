// Package database provides the SQLite ledger for FP scores and warnings.
// It owns the only connection to storage; no other package touches SQL.
package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/FPBotGo/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

// Database manages the SQLite connection and the ledger tables
type Database struct {
	db          *sql.DB
	path        string
	IsConnected bool
	mu          sync.RWMutex
}

var (
	database *Database
	dbOnce   sync.Once
)

// Init initializes the global database instance and runs the warning
// schema migration. A migration failure is fatal: the caller must not
// continue against an inconsistent schema.
func Init(path string) (*Database, error) {
	var err error
	dbOnce.Do(func() {
		database = &Database{path: path}
		err = database.Connect()
	})
	return database, err
}

// Get returns the global database instance
func Get() *Database {
	return database
}

// New creates a Database for the given path without touching the
// global instance. Callers still need Connect.
func New(path string) *Database {
	return &Database{path: path}
}

// Connect opens the SQLite file and prepares the schema
func (d *Database) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.IsConnected {
		return nil
	}

	logger.System("Opening SQLite ledger: "+d.path, "DB")

	db, err := sql.Open("sqlite3", d.path)
	if err != nil {
		logger.Critical("Failed to open the database.", "DB")
		return err
	}

	if err := db.Ping(); err != nil {
		logger.Critical("Failed to verify the database connection.", "DB")
		db.Close()
		return err
	}

	// SQLite supports a single writer; one connection serializes every
	// ledger mutation within this process.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return err
	}

	d.db = db

	if err := d.ensureScoreSchema(); err != nil {
		db.Close()
		return err
	}

	// The warnings table must be migrated before anything reads or
	// writes it.
	if err := d.ensureWarningSchema(); err != nil {
		db.Close()
		return err
	}
	if err := d.migrateWarningsTable(); err != nil {
		logger.Critical("Warning schema migration failed: "+err.Error(), "DB")
		db.Close()
		return err
	}

	d.IsConnected = true
	logger.Success("Ledger ready.", "DB")
	return nil
}

// applyPragmas sets the required SQLite configuration
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// ensureScoreSchema creates the FP table if it does not exist
func (d *Database) ensureScoreSchema() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS user_fp(
			user_id INTEGER PRIMARY KEY,
			fp      INTEGER NOT NULL
		)
	`)
	return err
}

// Ping measures the database response time
func (d *Database) Ping() (time.Duration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.IsConnected || d.db == nil {
		return 0, fmt.Errorf("not connected to database")
	}

	start := time.Now()
	err := d.db.Ping()
	return time.Since(start), err
}

// GetStatus returns the database connection status
func (d *Database) GetStatus() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.db == nil {
		return "🔴 | Desconectado", false
	}

	if err := d.db.Ping(); err != nil {
		return "🔴 | Desconectado", false
	}
	return "🟢 | En linea", true
}

// Disconnect closes the database connection
func (d *Database) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		if err := d.db.Close(); err != nil {
			return err
		}
		d.IsConnected = false
		logger.Warn("The database has been disconnected", "DB")
	}
	return nil
}

// DB returns the underlying sql.DB for the service layer
func (d *Database) DB() *sql.DB {
	return d.db
}
