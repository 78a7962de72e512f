package database

import (
	"database/sql"

	"github.com/PancyStudios/FPBotGo/pkg/models"
)

// GetFP returns the stored score for a user, or 0 when no row exists.
// A missing row is not an error.
func (d *Database) GetFP(userID int64) (int, error) {
	var fp int
	err := d.db.QueryRow(`SELECT fp FROM user_fp WHERE user_id = ?`, userID).Scan(&fp)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return fp, nil
}

// SetFP upserts the score for a user, overwriting any existing value
func (d *Database) SetFP(userID int64, value int) error {
	_, err := d.db.Exec(`
		INSERT INTO user_fp(user_id, fp) VALUES(?, ?)
		ON CONFLICT(user_id) DO UPDATE SET fp = excluded.fp
	`, userID, value)
	return err
}

// ApplyDelta adds delta to the user's score and returns the new value.
// The arithmetic happens inside a single UPSERT so concurrent handlers
// cannot lose an update.
func (d *Database) ApplyDelta(userID int64, delta int) (int, error) {
	var fp int
	err := d.db.QueryRow(`
		INSERT INTO user_fp(user_id, fp) VALUES(?, ?)
		ON CONFLICT(user_id) DO UPDATE SET fp = fp + excluded.fp
		RETURNING fp
	`, userID, delta).Scan(&fp)
	if err != nil {
		return 0, err
	}
	return fp, nil
}

// TopFP returns up to n users ordered by score descending, ties broken
// by user id ascending
func (d *Database) TopFP(n int) ([]models.ScoreEntry, error) {
	rows, err := d.db.Query(`
		SELECT user_id, fp
		FROM user_fp
		ORDER BY fp DESC, user_id ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScoreEntry
	for rows.Next() {
		var e models.ScoreEntry
		if err := rows.Scan(&e.UserID, &e.FP); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RemoveUser purges the user's score row and warning history. Used when
// a member leaves the community permanently.
func (d *Database) RemoveUser(userID int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM user_fp WHERE user_id = ?`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM user_warnings WHERE user_id = ?`, userID); err != nil {
		return err
	}
	return tx.Commit()
}
