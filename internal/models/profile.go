package models

import "time"

// Profile is the aggregate statistics payload served by GET /user/profile.
type Profile struct {
	ID                 int                 `json:"id"`
	Email              string              `json:"email"`
	Name               string              `json:"name"`
	CreatedAt          time.Time           `json:"created_at"`
	Overview           ProfileOverview     `json:"overview"`
	StreakInsights     StreakInsights      `json:"streak_insights"`
	ConsistencyChart   []ConsistencyPoint  `json:"consistency_chart"`
	TopHabits          []TopHabit          `json:"top_habits"`
	RecentAchievements []Achievement       `json:"recent_achievements"`
}

type ProfileOverview struct {
	TotalHabits        int     `json:"total_habits"`
	ActiveHabits       int     `json:"active_habits"`
	TotalCheckIns      int     `json:"total_check_ins"`
	TotalAchievements  int     `json:"total_achievements"`
	DaysSinceJoined    int     `json:"days_since_joined"`
	OverallConsistency float64 `json:"overall_consistency"`
	WeeklyConsistency  float64 `json:"weekly_consistency"`
	MonthlyConsistency float64 `json:"monthly_consistency"`
}

type StreakInsights struct {
	CurrentLongestStreak int     `json:"current_longest_streak"`
	BestStreakEver       int     `json:"best_streak_ever"`
	AverageStreakLength  float64 `json:"average_streak_length"`
	ActiveStreaksCount   int     `json:"active_streaks_count"`
}

// ConsistencyPoint is one day in the consistency time series.
type ConsistencyPoint struct {
	Date        time.Time `json:"date"`
	Percentage  float64   `json:"percentage"`
	CheckIns    int       `json:"check_ins"`
	TotalHabits int       `json:"total_habits"`
}

type TopHabit struct {
	HabitID         int       `json:"habit_id"`
	HabitName       string    `json:"habit_name"`
	ConsistencyRate float64   `json:"consistency_rate"`
	CurrentStreak   int       `json:"current_streak"`
	TotalCheckIns   int       `json:"total_check_ins"`
	LastCheckIn     time.Time `json:"last_check_in"`
}

type Achievement struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	HabitID         int       `json:"habit_id"`
	AchievementType string    `json:"achievement_type"`
	TargetDays      int       `json:"target_days"`
	AchievedAt      time.Time `json:"achieved_at"`
}
