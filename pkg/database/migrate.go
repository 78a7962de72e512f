package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/PancyStudios/FPBotGo/pkg/logger"
)

// DefaultWarnReason is the canned reason recorded when a caller omits one.
const DefaultWarnReason = "Warning administered"

// MigratedWarnReason tags synthetic records expanded from a legacy count.
const MigratedWarnReason = "Migrated from legacy count"

const dateLayout = "2006-01-02"

// ensureWarningSchema creates the warnings history table when none
// exists. A pre-existing legacy table is left alone here; the migration
// rebuilds it.
func (d *Database) ensureWarningSchema() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS user_warnings(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			reason  TEXT NOT NULL,
			date    TEXT NOT NULL
		)
	`)
	return err
}

// migrateWarningsTable upgrades any legacy user_warnings layout that carried
// a NOT NULL 'warnings' count column (and maybe no reason/date) to the
// history table (id, user_id, reason, date). Safe to run on every startup:
// a table without the legacy column is left untouched.
func (d *Database) migrateWarningsTable() error {
	cols, err := d.warningColumns()
	if err != nil {
		return err
	}

	if !cols["warnings"] {
		// Already current shape.
		return nil
	}

	logger.Warn("Legacy warnings schema detected, rebuilding table...", "DB")

	today := time.Now().UTC().Format(dateLayout)

	// The rebuild and the swap run in one transaction so a crash leaves
	// the original table as the canonical one.
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		CREATE TABLE _uw_new(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			reason  TEXT NOT NULL,
			date    TEXT NOT NULL
		)
	`); err != nil {
		return err
	}

	if cols["reason"] && cols["date"] {
		// Mixed schema already had reason/date. Copy rows across and
		// ignore the count column, substituting the canned reason and
		// the run date for any NULLs.
		_, err = tx.Exec(`
			INSERT INTO _uw_new (user_id, reason, date)
			SELECT user_id,
			       COALESCE(reason, ?),
			       COALESCE(date, ?)
			FROM user_warnings
		`, DefaultWarnReason, today)
		if err != nil {
			return err
		}
	} else {
		// Oldest schema: only user_id + warnings count. Expand each
		// count into synthetic history rows; no finer history exists.
		if err := expandLegacyCounts(tx, today); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DROP TABLE user_warnings`); err != nil {
		return err
	}
	if _, err := tx.Exec(`ALTER TABLE _uw_new RENAME TO user_warnings`); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Success("Warnings table migrated to history schema.", "DB")
	return nil
}

// warningColumns returns the set of column names on user_warnings
func (d *Database) warningColumns() (map[string]bool, error) {
	rows, err := d.db.Query(`PRAGMA table_info(user_warnings)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notnull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// expandLegacyCounts turns every (user_id, warnings) row into that many
// synthetic records dated with the migration run date.
func expandLegacyCounts(tx *sql.Tx, today string) error {
	rows, err := tx.Query(`SELECT user_id, warnings FROM user_warnings`)
	if err != nil {
		return err
	}

	type legacyRow struct {
		userID int64
		count  int
	}
	var legacy []legacyRow
	for rows.Next() {
		var r legacyRow
		var count sql.NullInt64
		if err := rows.Scan(&r.userID, &count); err != nil {
			rows.Close()
			return err
		}
		if count.Valid {
			r.count = int(count.Int64)
		}
		legacy = append(legacy, r)
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO _uw_new (user_id, reason, date) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range legacy {
		for i := 0; i < r.count; i++ {
			if _, err := stmt.Exec(r.userID, MigratedWarnReason, today); err != nil {
				return fmt.Errorf("expanding legacy count for user %d: %w", r.userID, err)
			}
		}
	}
	return nil
}
