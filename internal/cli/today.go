package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/consistencyhq/consistency-cli/internal/session"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteToday); err != nil {
		return err
	}

	now := time.Now()
	fmt.Println(titleStyle.Render(now.Format("Monday, January 2")))

	quote := ctx.API.FetchRandomQuote(context.Background())
	fmt.Printf("\n%s\n%s\n\n",
		quoteStyle.Render(fmt.Sprintf("“%s”", quote.Content)),
		mutedStyle.Render("— "+quote.Author))

	habits, fromCache, err := ctx.SyncHabits(context.Background())
	if err != nil {
		return err
	}
	if fromCache {
		fmt.Println(mutedStyle.Render("(offline, showing cached habits)"))
	}

	recorded := 0
	active := 0
	for _, habit := range habits {
		if !habit.IsActive {
			continue
		}
		active++

		status := "[ ]"
		if checkedInOn(habit, now) {
			status = successStyle.Render("[x]")
			recorded++
		}
		fmt.Printf("%s %s\n", status, habit.Name)
	}

	if active == 0 {
		fmt.Println("No active habits. Run 'consistency goal add' to create one.")
		return nil
	}

	fmt.Printf("\nRecorded: %d/%d\n", recorded, active)
	return nil
}
