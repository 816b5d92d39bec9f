package models

import "time"

// User is the authenticated account record returned by the backend.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Habit represents a trackable habit owned by a user.
type Habit struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	IsActive      bool      `json:"is_active"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CurrentStreak *Streak   `json:"current_streak,omitempty"`
	// CheckIns is ordered by logging time; entries are never removed.
	CheckIns []CheckIn `json:"check_ins"`
}

// CheckIn is one logged occurrence of a habit. Once created it is
// immutable.
type CheckIn struct {
	ID          int       `json:"id"`
	StreakID    int       `json:"streak_id"`
	CheckInDate time.Time `json:"check_in_date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Streak is the backend-side aggregate of consecutive check-ins.
type Streak struct {
	ID                int        `json:"id"`
	HabitID           int        `json:"habit_id"`
	TargetDays        int        `json:"target_days"`
	CurrentStreak     int        `json:"current_streak"`
	MaxStreakAchieved int        `json:"max_streak_achieved"`
	StartDate         time.Time  `json:"start_date"`
	LastCheckInDate   time.Time  `json:"last_check_in_date"`
	CompletedAt       *time.Time `json:"completed_at"`
	FailedAt          *time.Time `json:"failed_at"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CheckIns          []CheckIn  `json:"check_ins,omitempty"`
}

// Quote is an inspirational quote from the third-party quote service.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}
