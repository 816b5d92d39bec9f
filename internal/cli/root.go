package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/consistencyhq/consistency-cli/internal/api"
	"github.com/consistencyhq/consistency-cli/internal/config"
	"github.com/consistencyhq/consistency-cli/internal/logger"
	"github.com/consistencyhq/consistency-cli/internal/models"
	"github.com/consistencyhq/consistency-cli/internal/session"
	"github.com/consistencyhq/consistency-cli/internal/storage"
)

type Context struct {
	Config  *config.Config
	Session *session.Manager
	API     *api.Client
	Cache   storage.Cache
}

// GuardRoute applies the session redirect policy to the route a command
// corresponds to, translating redirects into actionable errors.
func (c *Context) GuardRoute(route session.Route) error {
	target, ok := session.EvaluateRedirect(c.Session.State(), route)
	if !ok {
		return nil
	}

	switch target {
	case session.RouteOnboarding:
		return fmt.Errorf("you are not signed in. Run 'consistency login' first")
	case session.RouteToday:
		if user, ok := c.Session.User(); ok {
			return fmt.Errorf("already signed in as %s. Run 'consistency logout' to switch accounts", user.Email)
		}
		return fmt.Errorf("already signed in. Run 'consistency logout' to switch accounts")
	default:
		return fmt.Errorf("this command is unavailable right now")
	}
}

// SyncHabits fetches the habit list from the backend and refreshes the
// local cache. When the backend is unreachable it falls back to the last
// cached snapshot; fromCache reports which source served the data.
func (c *Context) SyncHabits(ctx context.Context) (habits []models.Habit, fromCache bool, err error) {
	habits, err = c.API.Habits(ctx)
	if err == nil {
		if cacheErr := c.Cache.ReplaceHabits(habits, time.Now()); cacheErr != nil {
			logger.Warn("failed to refresh habit cache", "error", cacheErr)
		}
		return habits, false, nil
	}

	// Backend errors (4xx/5xx) are real answers, not connectivity
	// problems; only transport failures fall back to the cache.
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return nil, false, err
	}

	logger.Warn("backend unreachable, falling back to habit cache", "error", err)

	cached, cacheErr := c.Cache.Habits()
	if cacheErr != nil {
		return nil, false, err
	}

	last, ok, _ := c.Cache.LastSyncedAt()
	if !ok {
		// Never synced, nothing useful to show
		return nil, false, err
	}

	logger.Info("serving habits from cache", "last_synced", last)
	return cached, true, nil
}

// checkedInOn reports whether the habit has a check-in logged on the
// given calendar day.
func checkedInOn(habit models.Habit, day time.Time) bool {
	y, m, d := day.Date()
	for _, ci := range habit.CheckIns {
		cy, cm, cd := ci.CheckInDate.Local().Date()
		if cy == y && cm == m && cd == d {
			return true
		}
	}
	return false
}
