package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/moodlog/internal/analytics"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Clock.Now()

	entry, exists, err := ctx.Store.GetEntryForDay(now)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	fmt.Printf("Today (%s)\n\n", now.Format("Monday, January 2"))

	if exists {
		fmt.Printf("  Mood:      %s %s\n", entry.Mood.Emoji(), entry.Mood)
		fmt.Printf("  Intensity: %d/10\n", entry.Intensity)
		if len(entry.Tags) > 0 {
			fmt.Printf("  Tags:      %s\n", strings.Join(entry.Tags, ", "))
		}
		if entry.Notes != "" {
			fmt.Printf("  Notes:     %s\n", entry.Notes)
		}
	} else {
		fmt.Println("  No entry yet. Run 'moodlog log' to record your mood.")
	}

	streak := analytics.Streak(entries, now)
	trend := analytics.WeeklyTrend(entries, now, 7)

	var weekTotal float64
	var weekCount int
	for _, p := range trend {
		if p.HasData {
			weekTotal += p.Average * float64(p.Count)
			weekCount += p.Count
		}
	}

	fmt.Println()
	fmt.Printf("  Streak:        %d day(s)\n", streak)
	if weekCount > 0 {
		fmt.Printf("  7-day average: %.1f\n", weekTotal/float64(weekCount))
	} else {
		fmt.Println("  7-day average: no data")
	}
	fmt.Printf("  Total entries: %d\n", len(entries))

	return nil
}
