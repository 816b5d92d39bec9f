// Package storage keeps a local read model of server-side habit data so
// listing commands can render something useful while offline. The backend
// remains the source of truth; the cache is overwritten wholesale on every
// successful sync.
package storage

import (
	"time"

	"github.com/consistencyhq/consistency-cli/internal/models"
)

// Cache is the offline habit store.
type Cache interface {
	Init() error
	Close() error

	// ReplaceHabits swaps the cached habit set for the given one and
	// records syncedAt as the sync time. The swap is atomic.
	ReplaceHabits(habits []models.Habit, syncedAt time.Time) error

	// Habits returns the cached habit set with check-ins attached,
	// ordered by habit id. An empty cache returns an empty slice.
	Habits() ([]models.Habit, error)

	// LastSyncedAt reports when the cache was last refreshed. ok is
	// false when no sync has happened yet.
	LastSyncedAt() (t time.Time, ok bool, err error)
}
