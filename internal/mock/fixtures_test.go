package mock

import (
	"testing"

	"github.com/consistencyhq/consistency-cli/internal/models"
)

func habitWithCheckIns(id int, checkInIDs ...int) models.Habit {
	h := models.Habit{
		ID:        id,
		UserID:    2,
		Name:      "Habit",
		IsActive:  true,
		Status:    "active",
		CreatedAt: mustTime("2025-08-30T13:34:19Z"),
		UpdatedAt: mustTime("2025-08-30T13:34:19Z"),
		CheckIns:  []models.CheckIn{},
	}
	for _, cid := range checkInIDs {
		h.CheckIns = append(h.CheckIns, models.CheckIn{
			ID:          cid,
			StreakID:    1,
			CheckInDate: mustTime("2025-08-29T15:56:03Z"),
			Notes:       "existing",
			CreatedAt:   mustTime("2025-08-29T15:56:03Z"),
			UpdatedAt:   mustTime("2025-08-29T15:56:03Z"),
		})
	}
	return h
}

func TestCheckInIDsAreGloballyMonotonic(t *testing.T) {
	f := NewFixtures() // seed holds check-in ids 1 through 6

	targets := []int{2, 4, 5, 2, 5}
	seen := make(map[int]bool)
	prev := 0

	for i, habitID := range targets {
		payload, status := f.CreateCheckIn(habitID, "note")
		if status != 200 || !payload.Success {
			t.Fatalf("check-in %d: status=%d success=%v", i, status, payload.Success)
		}

		data, ok := payload.Data.(CheckInData)
		if !ok {
			t.Fatalf("check-in %d: unexpected data type %T", i, payload.Data)
		}

		id := data.CheckIn.ID
		if id <= prev {
			t.Errorf("check-in %d: id %d not strictly greater than previous %d", i, id, prev)
		}
		if seen[id] {
			t.Errorf("check-in %d: id %d already assigned", i, id)
		}
		seen[id] = true
		prev = id
	}

	// First allocation continues from the seeded maximum
	if !seen[7] {
		t.Errorf("expected first allocated id to be 7, got %v", seen)
	}
}

func TestCheckInAllocationStartsAtOne(t *testing.T) {
	f := NewFixturesWith([]models.Habit{habitWithCheckIns(1)})

	payload, status := f.CreateCheckIn(1, "first ever")
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}

	data := payload.Data.(CheckInData)
	if data.CheckIn.ID != 1 {
		t.Errorf("first check-in id = %d, want 1", data.CheckIn.ID)
	}
}

func TestCheckInScenario(t *testing.T) {
	// Habit 2 with two existing check-ins, ids 1 and 2
	f := NewFixturesWith([]models.Habit{
		habitWithCheckIns(1),
		habitWithCheckIns(2, 1, 2),
	})

	payload, status := f.CreateCheckIn(2, "done")

	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if !payload.Success {
		t.Fatal("payload.Success = false, want true")
	}

	data, ok := payload.Data.(CheckInData)
	if !ok {
		t.Fatalf("unexpected data type %T", payload.Data)
	}

	if data.CheckIn.ID != 3 {
		t.Errorf("new check-in id = %d, want 3", data.CheckIn.ID)
	}
	if data.CheckIn.Notes != "done" {
		t.Errorf("new check-in notes = %q, want %q", data.CheckIn.Notes, "done")
	}
	if data.StreakCount != 3 {
		t.Errorf("streak count = %d, want 3", data.StreakCount)
	}
	if len(data.Habit.CheckIns) != 3 {
		t.Errorf("habit check-in count = %d, want 3", len(data.Habit.CheckIns))
	}
}

func TestCheckInUnknownHabit(t *testing.T) {
	f := NewFixtures()
	before := f.Habits()

	payload, status := f.CreateCheckIn(999, "done")

	if status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	if payload.Success {
		t.Error("payload.Success = true, want false")
	}
	if payload.Message != "Habit not found" {
		t.Errorf("payload.Message = %q, want %q", payload.Message, "Habit not found")
	}

	// No fixture habit may have been mutated
	after := f.Habits()
	for i := range before {
		if len(after[i].CheckIns) != len(before[i].CheckIns) {
			t.Errorf("habit %d check-in count changed: %d -> %d", before[i].ID, len(before[i].CheckIns), len(after[i].CheckIns))
		}
	}
}

func TestCheckInReusesStreakID(t *testing.T) {
	f := NewFixtures()

	payload, _ := f.CreateCheckIn(2, "note")
	data := payload.Data.(CheckInData)

	// Habit 2's existing check-ins belong to streak 1
	if data.CheckIn.StreakID != 1 {
		t.Errorf("streak id = %d, want 1", data.CheckIn.StreakID)
	}
}

func TestFixtureSetsAreIsolated(t *testing.T) {
	a := NewFixtures()
	b := NewFixtures()

	if _, status := a.CreateCheckIn(2, "only in a"); status != 200 {
		t.Fatal("check-in on fixture set a failed")
	}

	habitA, _ := a.Habit(2)
	habitB, _ := b.Habit(2)

	if len(habitA.CheckIns) != len(habitB.CheckIns)+1 {
		t.Errorf("fixture sets share state: a=%d b=%d check-ins", len(habitA.CheckIns), len(habitB.CheckIns))
	}
}

func TestHabitsReturnsSnapshots(t *testing.T) {
	f := NewFixtures()

	snapshot := f.Habits()
	snapshot[1].CheckIns[0].Notes = "tampered"

	fresh, _ := f.Habit(snapshot[1].ID)
	if fresh.CheckIns[0].Notes == "tampered" {
		t.Error("mutating a snapshot leaked into the fixture set")
	}
}
