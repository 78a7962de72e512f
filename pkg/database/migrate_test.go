package database

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

// seedLegacy creates a pre-migration database at path using raw SQL
func seedLegacy(t *testing.T, path, schema string, seed func(*sql.DB)) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("opening seed database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating legacy table: %v", err)
	}
	seed(db)
}

func TestMigrateCountOnlySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fp.sqlite")

	seedLegacy(t, path, `
		CREATE TABLE user_warnings(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id  INTEGER NOT NULL,
			warnings INTEGER NOT NULL
		)
	`, func(db *sql.DB) {
		if _, err := db.Exec(`INSERT INTO user_warnings (user_id, warnings) VALUES (5, 3)`); err != nil {
			t.Fatalf("seeding legacy row: %v", err)
		}
	})

	d := New(path)
	if err := d.Connect(); err != nil {
		t.Fatalf("Connect() returned error: %v", err)
	}
	defer d.Disconnect()

	warns, err := d.ListWarnings(5)
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}

	if len(warns) != 3 {
		t.Fatalf("migration produced %d records for user 5, want 3", len(warns))
	}

	today := time.Now().UTC().Format(dateLayout)
	for i, w := range warns {
		if w.Reason != MigratedWarnReason {
			t.Errorf("record %d reason = %v, want %v", i, w.Reason, MigratedWarnReason)
		}
		if w.Date != today {
			t.Errorf("record %d date = %v, want %v", i, w.Date, today)
		}
	}
}

func TestMigrateMixedSchemaCopiesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fp.sqlite")

	seedLegacy(t, path, `
		CREATE TABLE user_warnings(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id  INTEGER NOT NULL,
			warnings INTEGER NOT NULL,
			reason   TEXT,
			date     TEXT
		)
	`, func(db *sql.DB) {
		rows := []struct {
			user   int64
			reason interface{}
			date   interface{}
		}{
			{9, "being rude", "2021-04-01"},
			{9, nil, nil}, // NULLs take the canned reason and the run date
		}
		for _, r := range rows {
			if _, err := db.Exec(
				`INSERT INTO user_warnings (user_id, warnings, reason, date) VALUES (?, 1, ?, ?)`,
				r.user, r.reason, r.date,
			); err != nil {
				t.Fatalf("seeding legacy row: %v", err)
			}
		}
	})

	d := New(path)
	if err := d.Connect(); err != nil {
		t.Fatalf("Connect() returned error: %v", err)
	}
	defer d.Disconnect()

	warns, err := d.ListWarnings(9)
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}

	if len(warns) != 2 {
		t.Fatalf("migration produced %d records for user 9, want 2", len(warns))
	}

	if warns[0].Reason != "being rude" || warns[0].Date != "2021-04-01" {
		t.Errorf("record 0 = (%s, %s), want (being rude, 2021-04-01)", warns[0].Reason, warns[0].Date)
	}

	today := time.Now().UTC().Format(dateLayout)
	if warns[1].Reason != DefaultWarnReason {
		t.Errorf("record 1 reason = %v, want %v", warns[1].Reason, DefaultWarnReason)
	}
	if warns[1].Date != today {
		t.Errorf("record 1 date = %v, want %v", warns[1].Date, today)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fp.sqlite")

	seedLegacy(t, path, `
		CREATE TABLE user_warnings(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id  INTEGER NOT NULL,
			warnings INTEGER NOT NULL
		)
	`, func(db *sql.DB) {
		if _, err := db.Exec(`INSERT INTO user_warnings (user_id, warnings) VALUES (5, 3)`); err != nil {
			t.Fatalf("seeding legacy row: %v", err)
		}
	})

	d := New(path)
	if err := d.Connect(); err != nil {
		t.Fatalf("Connect() returned error: %v", err)
	}
	defer d.Disconnect()

	before, _ := d.CountWarnings(5)

	// Re-running against the now-current table must be a no-op
	if err := d.migrateWarningsTable(); err != nil {
		t.Fatalf("second migrateWarningsTable() returned error: %v", err)
	}

	after, _ := d.CountWarnings(5)
	if before != after {
		t.Errorf("row count changed across a repeat migration: %d -> %d", before, after)
	}
}

func TestFreshDatabaseNeedsNoMigration(t *testing.T) {
	d := testDB(t)

	cols, err := d.warningColumns()
	if err != nil {
		t.Fatalf("warningColumns() returned error: %v", err)
	}
	if cols["warnings"] {
		t.Error("fresh schema still carries the legacy count column")
	}
}
