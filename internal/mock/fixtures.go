// Package mock stands in for the real backend during development. A
// transport installed on the shared HTTP client short-circuits known
// requests with responses drawn from an in-memory fixture set; everything
// else passes through to the real network untouched.
package mock

import (
	"math/rand"
	"sync"
	"time"

	"github.com/consistencyhq/consistency-cli/internal/models"
)

// Payload is the wire shape of every synthesized response body that uses
// the success envelope.
type Payload struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// CheckInData is the data member of a successful check-in response.
type CheckInData struct {
	CheckIn     models.CheckIn `json:"check_in"`
	StreakCount int            `json:"streak_count"`
	Habit       models.Habit   `json:"habit"`
}

// Fixtures owns the mutable fixture set. It is constructor-injected into
// the transport so tests can run against isolated copies instead of
// process-wide state. Mutations live only for the process lifetime.
type Fixtures struct {
	mu     sync.Mutex
	habits []models.Habit
	user   models.User
}

// NewFixtures returns a fixture set seeded with the canonical habits.
func NewFixtures() *Fixtures {
	return &Fixtures{
		habits: seedHabits(),
		user:   seedUser(),
	}
}

// NewFixturesWith returns a fixture set seeded with the given habits.
// Used by tests that need a specific starting state.
func NewFixturesWith(habits []models.Habit) *Fixtures {
	return &Fixtures{
		habits: habits,
		user:   seedUser(),
	}
}

// User returns the fixture account used by the mocked login endpoint.
func (f *Fixtures) User() models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user
}

// Habits returns a snapshot of the current habit set.
func (f *Fixtures) Habits() []models.Habit {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Habit, len(f.habits))
	for i, h := range f.habits {
		out[i] = copyHabit(h)
	}
	return out
}

// Habit returns a snapshot of a single habit by id.
func (f *Fixtures) Habit(id int) (models.Habit, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, h := range f.habits {
		if h.ID == id {
			return copyHabit(h), true
		}
	}
	return models.Habit{}, false
}

// CreateCheckIn appends a new check-in to the identified habit and
// returns the response payload plus HTTP status. The new identifier is
// one greater than the maximum check-in id across ALL habits, so ids stay
// globally unique; an empty fixture set starts at 1. An unknown habit id
// yields a structured failure, mimicking the real backend's validation
// response, so callers need no mock-specific error handling.
func (f *Fixtures) CreateCheckIn(habitID int, notes string) (Payload, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := -1
	for i := range f.habits {
		if f.habits[i].ID == habitID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Payload{Success: false, Message: "Habit not found"}, 400
	}

	habit := &f.habits[idx]

	maxID := 0
	for _, h := range f.habits {
		for _, c := range h.CheckIns {
			if c.ID > maxID {
				maxID = c.ID
			}
		}
	}

	streakID := rand.Intn(1000)
	if len(habit.CheckIns) > 0 {
		streakID = habit.CheckIns[0].StreakID
	}

	now := time.Now().UTC()
	entry := models.CheckIn{
		ID:          maxID + 1,
		StreakID:    streakID,
		CheckInDate: now,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	habit.CheckIns = append(habit.CheckIns, entry)
	habit.UpdatedAt = now

	return Payload{
		Success: true,
		Message: "Check-in recorded successfully",
		Data: CheckInData{
			CheckIn:     entry,
			StreakCount: len(habit.CheckIns),
			Habit:       copyHabit(*habit),
		},
	}, 200
}

func copyHabit(h models.Habit) models.Habit {
	out := h
	out.CheckIns = make([]models.CheckIn, len(h.CheckIns))
	copy(out.CheckIns, h.CheckIns)
	return out
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t
}
