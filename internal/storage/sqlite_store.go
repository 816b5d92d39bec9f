package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/consistencyhq/consistency-cli/internal/models"
)

const lastSyncKey = "last_synced_at"

// migrations are applied in order; the database's user_version pragma
// records how many have run. Append only, never edit an entry.
var migrations = []string{
	`
	CREATE TABLE habits (
		id          INTEGER PRIMARY KEY,
		user_id     INTEGER NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT '',
		is_active   INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);
	CREATE TABLE check_ins (
		id            INTEGER PRIMARY KEY,
		habit_id      INTEGER NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		streak_id     INTEGER NOT NULL,
		check_in_date TEXT NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	);
	CREATE INDEX idx_check_ins_habit ON check_ins(habit_id);
	CREATE TABLE sync_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`,
}

// SQLiteCache implements Cache on a single-file SQLite database.
type SQLiteCache struct {
	path string
	db   *sql.DB
}

func NewSQLiteCache(path string) *SQLiteCache {
	return &SQLiteCache{path: path}
}

func (c *SQLiteCache) Init() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	c.db = db

	if _, err := c.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := c.migrate(); err != nil {
		return fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return nil
}

func (c *SQLiteCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *SQLiteCache) migrate() error {
	var version int
	if err := c.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version > len(migrations) {
		return fmt.Errorf("cache schema version (%d) is newer than supported version (%d) - please upgrade the application", version, len(migrations))
	}

	for ; version < len(migrations); version++ {
		tx, err := c.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", version+1, err)
		}

		if _, err := tx.Exec(migrations[version]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to apply migration %d: %w", version+1, err)
		}

		// PRAGMA does not accept placeholders
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version+1)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", version+1, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", version+1, err)
		}
	}

	return nil
}

func (c *SQLiteCache) ReplaceHabits(habits []models.Habit, syncedAt time.Time) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habit cache: %w", err)
	}

	for _, h := range habits {
		_, err := tx.Exec(`
			INSERT INTO habits (id, user_id, name, description, color, icon, is_active, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.UserID, h.Name, h.Description, h.Color, h.Icon, h.IsActive, h.Status,
			h.CreatedAt.Format(time.RFC3339Nano), h.UpdatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to cache habit %d: %w", h.ID, err)
		}

		for _, ci := range h.CheckIns {
			_, err := tx.Exec(`
				INSERT INTO check_ins (id, habit_id, streak_id, check_in_date, notes, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				ci.ID, h.ID, ci.StreakID, ci.CheckInDate.Format(time.RFC3339Nano), ci.Notes,
				ci.CreatedAt.Format(time.RFC3339Nano), ci.UpdatedAt.Format(time.RFC3339Nano))
			if err != nil {
				return fmt.Errorf("failed to cache check-in %d for habit %d: %w", ci.ID, h.ID, err)
			}
		}
	}

	_, err = tx.Exec(`
		INSERT INTO sync_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastSyncKey, syncedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to record sync time: %w", err)
	}

	return tx.Commit()
}

func (c *SQLiteCache) Habits() ([]models.Habit, error) {
	rows, err := c.db.Query(`
		SELECT id, user_id, name, description, color, icon, is_active, status, created_at, updated_at
		FROM habits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read habit cache: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	index := map[int]int{}

	for rows.Next() {
		var h models.Habit
		var createdAt, updatedAt string

		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.Color, &h.Icon, &h.IsActive, &h.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if h.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %d: %w", h.ID, err)
		}
		if h.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at for habit %d: %w", h.ID, err)
		}

		h.CheckIns = []models.CheckIn{}
		index[h.ID] = len(habits)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := c.attachCheckIns(habits, index); err != nil {
		return nil, err
	}

	return habits, nil
}

func (c *SQLiteCache) attachCheckIns(habits []models.Habit, index map[int]int) error {
	rows, err := c.db.Query(`
		SELECT id, habit_id, streak_id, check_in_date, notes, created_at, updated_at
		FROM check_ins ORDER BY habit_id, id`)
	if err != nil {
		return fmt.Errorf("failed to read check-in cache: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ci models.CheckIn
		var habitID int
		var checkInDate, createdAt, updatedAt string

		if err := rows.Scan(&ci.ID, &habitID, &ci.StreakID, &checkInDate, &ci.Notes, &createdAt, &updatedAt); err != nil {
			return err
		}

		if ci.CheckInDate, err = time.Parse(time.RFC3339Nano, checkInDate); err != nil {
			return fmt.Errorf("failed to parse check_in_date for check-in %d: %w", ci.ID, err)
		}
		if ci.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return fmt.Errorf("failed to parse created_at for check-in %d: %w", ci.ID, err)
		}
		if ci.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return fmt.Errorf("failed to parse updated_at for check-in %d: %w", ci.ID, err)
		}

		i, ok := index[habitID]
		if !ok {
			continue
		}
		habits[i].CheckIns = append(habits[i].CheckIns, ci)
	}

	return rows.Err()
}

func (c *SQLiteCache) LastSyncedAt() (time.Time, bool, error) {
	var value string
	err := c.db.QueryRow("SELECT value FROM sync_meta WHERE key = ?", lastSyncKey).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse sync time: %w", err)
	}
	return t, true, nil
}
