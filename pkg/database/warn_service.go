package database

import (
	"database/sql"
	"time"

	"github.com/PancyStudios/FPBotGo/pkg/models"
)

// AddWarning appends a warning record for a user. An empty reason falls
// back to the canned default string. The date is UTC, day granularity.
func (d *Database) AddWarning(userID int64, reason string) error {
	if reason == "" {
		reason = DefaultWarnReason
	}

	date := time.Now().UTC().Format(dateLayout)
	_, err := d.db.Exec(`
		INSERT INTO user_warnings (user_id, reason, date)
		VALUES (?, ?, ?)
	`, userID, reason, date)
	return err
}

// ListWarnings returns the user's warning history ascending by sequence
// number. An empty history is an empty slice, not an error.
func (d *Database) ListWarnings(userID int64) ([]models.WarningRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, reason, date FROM user_warnings
		WHERE user_id = ?
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.WarningRecord
	for rows.Next() {
		var r models.WarningRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Reason, &r.Date); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountWarnings returns how many warnings a user currently has
func (d *Database) CountWarnings(userID int64) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM user_warnings WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

// ClearWarnings deletes all warnings for a user and returns how many
// records existed
func (d *Database) ClearWarnings(userID int64) (int, error) {
	count, err := d.CountWarnings(userID)
	if err != nil {
		return 0, err
	}

	if _, err := d.db.Exec(`DELETE FROM user_warnings WHERE user_id = ?`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

// RemoveLastWarning deletes the most recent warning (highest id) for a
// user. Returns true if one was deleted.
func (d *Database) RemoveLastWarning(userID int64) (bool, error) {
	var lastID int64
	err := d.db.QueryRow(`
		SELECT id FROM user_warnings
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, userID).Scan(&lastID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := d.db.Exec(`DELETE FROM user_warnings WHERE id = ?`, lastID); err != nil {
		return false, err
	}
	return true, nil
}

// TopWarnings returns up to n users ordered by warning count descending,
// ties broken by user id ascending
func (d *Database) TopWarnings(n int) ([]models.WarnCountEntry, error) {
	rows, err := d.db.Query(`
		SELECT user_id, COUNT(*) AS total
		FROM user_warnings
		GROUP BY user_id
		ORDER BY total DESC, user_id ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WarnCountEntry
	for rows.Next() {
		var e models.WarnCountEntry
		if err := rows.Scan(&e.UserID, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
