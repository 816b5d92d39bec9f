package mock

import "github.com/consistencyhq/consistency-cli/internal/models"

// The canonical fixture set. Identifiers are unique across habits and
// check-in ids are unique across all check-in lists.

func seedUser() models.User {
	return models.User{
		ID:        1,
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		CreatedAt: mustTime("2024-01-01T00:00:00Z"),
		UpdatedAt: mustTime("2024-01-01T00:00:00Z"),
	}
}

func seedHabits() []models.Habit {
	return []models.Habit{
		{
			ID:          1,
			UserID:      2,
			Name:        "New goal",
			Description: "dsfds",
			Color:       "#6366F1",
			Icon:        "flag",
			IsActive:    false,
			Status:      "inactive",
			CreatedAt:   mustTime("2025-08-30T13:34:19.328841+05:30"),
			UpdatedAt:   mustTime("2025-08-30T13:34:19.328841+05:30"),
			CheckIns:    []models.CheckIn{},
		},
		{
			ID:          2,
			UserID:      2,
			Name:        "Daily Reading",
			Description: "Read for at least 20 minutes every day",
			Color:       "#6366F1",
			Icon:        "flag",
			IsActive:    true,
			Status:      "active",
			CreatedAt:   mustTime("2025-08-30T13:34:19.328841+05:30"),
			UpdatedAt:   mustTime("2025-08-30T13:34:19.328841+05:30"),
			CheckIns: []models.CheckIn{
				{
					ID:          1,
					StreakID:    1,
					CheckInDate: mustTime("2025-08-29T15:56:03.304Z"),
					Notes:       "Great reading session today",
					CreatedAt:   mustTime("2025-08-29T15:56:03.304Z"),
					UpdatedAt:   mustTime("2025-08-29T15:56:03.304Z"),
				},
				{
					ID:          2,
					StreakID:    1,
					CheckInDate: mustTime("2025-08-28T15:56:03.304Z"),
					Notes:       "Finished a chapter",
					CreatedAt:   mustTime("2025-08-28T15:56:03.304Z"),
					UpdatedAt:   mustTime("2025-08-28T15:56:03.304Z"),
				},
			},
		},
		{
			ID:          3,
			UserID:      2,
			Name:        "Morning Workout",
			Description: "Exercise for 30 minutes each morning",
			Color:       "#6366F1",
			Icon:        "flag",
			IsActive:    false,
			Status:      "inactive",
			CreatedAt:   mustTime("2025-08-30T13:34:19.328841+05:30"),
			UpdatedAt:   mustTime("2025-08-30T13:34:19.328841+05:30"),
			CheckIns:    []models.CheckIn{},
		},
		{
			ID:          4,
			UserID:      2,
			Name:        "Drink Water",
			Description: "Drink 8 glasses of water daily",
			Color:       "#3B82F6",
			Icon:        "water",
			IsActive:    true,
			Status:      "active",
			CreatedAt:   mustTime("2025-08-30T14:00:00Z"),
			UpdatedAt:   mustTime("2025-08-30T14:00:00Z"),
			CheckIns: []models.CheckIn{
				{
					ID:          3,
					StreakID:    2,
					CheckInDate: mustTime("2025-08-28T15:56:03.304Z"),
					Notes:       "8 glasses completed",
					CreatedAt:   mustTime("2025-08-28T15:56:03.304Z"),
					UpdatedAt:   mustTime("2025-08-28T15:56:03.304Z"),
				},
				{
					ID:          4,
					StreakID:    2,
					CheckInDate: mustTime("2025-08-29T15:56:03.304Z"),
					Notes:       "Staying hydrated",
					CreatedAt:   mustTime("2025-08-29T15:56:03.304Z"),
					UpdatedAt:   mustTime("2025-08-29T15:56:03.304Z"),
				},
				{
					ID:          5,
					StreakID:    2,
					CheckInDate: mustTime("2025-08-27T15:56:03.304Z"),
					Notes:       "Good water intake today",
					CreatedAt:   mustTime("2025-08-27T15:56:03.304Z"),
					UpdatedAt:   mustTime("2025-08-27T15:56:03.304Z"),
				},
			},
		},
		{
			ID:          5,
			UserID:      2,
			Name:        "Meditation",
			Description: "Practice mindfulness for 10 minutes daily",
			Color:       "#8B5CF6",
			Icon:        "flower",
			IsActive:    true,
			Status:      "active",
			CreatedAt:   mustTime("2025-08-30T14:15:00Z"),
			UpdatedAt:   mustTime("2025-08-30T14:15:00Z"),
			CheckIns: []models.CheckIn{
				{
					ID:          6,
					StreakID:    3,
					CheckInDate: mustTime("2025-08-29T15:56:03.304Z"),
					Notes:       "Peaceful meditation",
					CreatedAt:   mustTime("2025-08-29T15:56:03.304Z"),
					UpdatedAt:   mustTime("2025-08-29T15:56:03.304Z"),
				},
			},
		},
	}
}

func seedProfile() models.Profile {
	return models.Profile{
		ID:        1,
		Email:     "john.doe@example.com",
		Name:      "John Doe",
		CreatedAt: mustTime("2024-08-01T10:00:00Z"),
		Overview: models.ProfileOverview{
			TotalHabits:        8,
			ActiveHabits:       6,
			TotalCheckIns:      127,
			TotalAchievements:  5,
			DaysSinceJoined:    45,
			OverallConsistency: 78.5,
			WeeklyConsistency:  85.7,
			MonthlyConsistency: 76.2,
		},
		StreakInsights: models.StreakInsights{
			CurrentLongestStreak: 12,
			BestStreakEver:       18,
			AverageStreakLength:  6.8,
			ActiveStreaksCount:   4,
		},
		ConsistencyChart: []models.ConsistencyPoint{
			{Date: mustTime("2025-01-25T00:00:00Z"), Percentage: 60, CheckIns: 3, TotalHabits: 5},
			{Date: mustTime("2025-01-26T00:00:00Z"), Percentage: 80, CheckIns: 4, TotalHabits: 5},
			{Date: mustTime("2025-01-27T00:00:00Z"), Percentage: 100, CheckIns: 5, TotalHabits: 5},
			{Date: mustTime("2025-01-28T00:00:00Z"), Percentage: 75, CheckIns: 4, TotalHabits: 5},
			{Date: mustTime("2025-01-29T00:00:00Z"), Percentage: 40, CheckIns: 2, TotalHabits: 5},
			{Date: mustTime("2025-01-30T00:00:00Z"), Percentage: 90, CheckIns: 4, TotalHabits: 5},
			{Date: mustTime("2025-01-31T00:00:00Z"), Percentage: 85, CheckIns: 4, TotalHabits: 5},
		},
		TopHabits: []models.TopHabit{
			{HabitID: 1, HabitName: "Morning Meditation", ConsistencyRate: 95, CurrentStreak: 18, TotalCheckIns: 42, LastCheckIn: mustTime("2025-01-31T06:30:00Z")},
			{HabitID: 2, HabitName: "Drink 8 Glasses of Water", ConsistencyRate: 88, CurrentStreak: 12, TotalCheckIns: 38, LastCheckIn: mustTime("2025-01-31T20:15:00Z")},
			{HabitID: 3, HabitName: "Read for 30 Minutes", ConsistencyRate: 82, CurrentStreak: 8, TotalCheckIns: 35, LastCheckIn: mustTime("2025-01-31T22:00:00Z")},
			{HabitID: 4, HabitName: "Exercise", ConsistencyRate: 76, CurrentStreak: 5, TotalCheckIns: 28, LastCheckIn: mustTime("2025-01-31T07:45:00Z")},
			{HabitID: 5, HabitName: "Write Journal", ConsistencyRate: 70, CurrentStreak: 3, TotalCheckIns: 24, LastCheckIn: mustTime("2025-01-30T23:30:00Z")},
		},
		RecentAchievements: []models.Achievement{
			{ID: 1, UserID: 1, HabitID: 1, AchievementType: "streak_completed", TargetDays: 14, AchievedAt: mustTime("2025-01-28T06:30:00Z")},
		},
	}
}
