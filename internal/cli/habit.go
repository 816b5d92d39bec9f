package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/consistencyhq/consistency-cli/internal/api"
	"github.com/consistencyhq/consistency-cli/internal/session"
)

type HabitCmd struct {
	List HabitListCmd `cmd:"" help:"List your habits." default:"1"`
}

type HabitListCmd struct {
	All bool `help:"Include inactive habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteToday); err != nil {
		return err
	}

	habits, fromCache, err := ctx.SyncHabits(context.Background())
	if err != nil {
		return err
	}

	if fromCache {
		fmt.Println(mutedStyle.Render("(offline, showing cached habits)"))
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Run 'consistency goal add' to create one.")
		return nil
	}

	for _, habit := range habits {
		if !c.All && !habit.IsActive {
			continue
		}

		status := ""
		if !habit.IsActive {
			status = mutedStyle.Render(" [inactive]")
		}

		streak := ""
		if habit.CurrentStreak != nil && habit.CurrentStreak.CurrentStreak > 0 {
			streak = streakStyle.Render(fmt.Sprintf(" 🔥 %d", habit.CurrentStreak.CurrentStreak))
		}

		fmt.Printf("%3d  %s%s%s\n", habit.ID, habit.Name, streak, status)
		if habit.Description != "" {
			fmt.Printf("     %s\n", mutedStyle.Render(habit.Description))
		}
	}

	return nil
}

type CheckinCmd struct {
	Habit string `arg:"" help:"Habit id to check in."`
	Notes string `help:"Optional note for this check-in."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteToday); err != nil {
		return err
	}

	habitID, err := strconv.Atoi(c.Habit)
	if err != nil {
		return fmt.Errorf("invalid habit id %q", c.Habit)
	}

	result, err := ctx.API.CreateCheckIn(context.Background(), habitID, c.Notes)
	if err != nil {
		return fmt.Errorf("check-in failed: %w", err)
	}

	fmt.Printf("%s %s\n",
		successStyle.Render("✅ Checked in:"),
		result.Habit.Name)
	if result.StreakCount > 0 {
		fmt.Println(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", result.StreakCount)))
	}

	// Keep the offline cache in step with the new entry
	if _, _, err := ctx.SyncHabits(context.Background()); err != nil {
		return nil
	}
	return nil
}

type GoalCmd struct {
	Add GoalAddCmd `cmd:"" help:"Create a new goal." default:"1"`
}

type GoalAddCmd struct {
	Name        string `help:"Goal name."`
	Description string `help:"What does success look like?"`
	Days        int    `help:"Target duration in days." default:"0"`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteToday); err != nil {
		return err
	}

	if c.Name == "" || c.Days == 0 {
		days := strconv.Itoa(c.Days)
		if c.Days == 0 {
			days = "21"
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Goal name").
					Value(&c.Name).
					Validate(validateRequired("name")),
				huh.NewInput().
					Title("Description").
					Value(&c.Description),
				huh.NewInput().
					Title("Target days").
					Value(&days).
					Validate(validatePositiveInt),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("goal form error: %w", err)
		}

		c.Days, _ = strconv.Atoi(days)
	}

	habit, err := ctx.API.CreateGoal(context.Background(), api.GoalRequest{
		Name:         c.Name,
		Description:  c.Description,
		GoalDuration: c.Days,
		GoalUnit:     "days",
	})
	if err != nil {
		return fmt.Errorf("creating goal failed: %w", err)
	}

	fmt.Printf("%s %s (habit %d)\n", successStyle.Render("🎯 Goal created:"), habit.Name, habit.ID)
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
