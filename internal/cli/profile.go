package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/consistencyhq/consistency-cli/internal/session"
)

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteToday); err != nil {
		return err
	}

	profile, err := ctx.API.Profile(context.Background())
	if err != nil {
		return fmt.Errorf("fetching profile failed: %w", err)
	}

	fmt.Println(titleStyle.Render(profile.Name))
	fmt.Println(mutedStyle.Render(profile.Email))
	fmt.Println()

	o := profile.Overview
	fmt.Println("📊 Overview")
	fmt.Printf("  Habits:        %d (%d active)\n", o.TotalHabits, o.ActiveHabits)
	fmt.Printf("  Check-ins:     %d\n", o.TotalCheckIns)
	fmt.Printf("  Achievements:  %d\n", o.TotalAchievements)
	fmt.Printf("  Member for:    %d days\n", o.DaysSinceJoined)
	fmt.Printf("  Consistency:   %.1f%% overall, %.1f%% this week, %.1f%% this month\n",
		o.OverallConsistency, o.WeeklyConsistency, o.MonthlyConsistency)

	s := profile.StreakInsights
	fmt.Println("\n🔥 Streaks")
	fmt.Printf("  Current best:  %d days\n", s.CurrentLongestStreak)
	fmt.Printf("  All-time best: %d days\n", s.BestStreakEver)
	fmt.Printf("  Average:       %.1f days across %d active streaks\n",
		s.AverageStreakLength, s.ActiveStreaksCount)

	if len(profile.ConsistencyChart) > 0 {
		fmt.Println("\n📈 Daily consistency")
		for _, p := range profile.ConsistencyChart {
			bar := strings.Repeat("█", int(p.Percentage/10))
			fmt.Printf("  %s %-10s %3.0f%%  %s\n",
				p.Date.Format("01/02"), bar, p.Percentage,
				mutedStyle.Render(fmt.Sprintf("%d/%d", p.CheckIns, p.TotalHabits)))
		}
	}

	if len(profile.TopHabits) > 0 {
		fmt.Println("\n🏆 Top habits")
		for i, h := range profile.TopHabits {
			fmt.Printf("  %d. %s  %s\n", i+1, h.HabitName,
				mutedStyle.Render(fmt.Sprintf("%.0f%% consistent, %d day streak", h.ConsistencyRate, h.CurrentStreak)))
		}
	}

	return nil
}
