package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/analytics"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet. Run 'moodlog log' to get started.")
		return nil
	}

	now := ctx.Clock.Now()

	fmt.Printf("Insights (%d entries)\n\n", len(entries))

	fmt.Printf("  Current streak: %d day(s)\n", analytics.Streak(entries, now))
	fmt.Printf("  Average score:  %.1f\n\n", analytics.AverageScore(entries))

	fmt.Println("  Mood frequency:")
	for _, mc := range analytics.MoodFrequency(entries) {
		fmt.Printf("    %s %-8s %d\n", mc.Mood.Emoji(), mc.Mood, mc.Count)
	}

	if tags := analytics.TopTags(entries); len(tags) > 0 {
		fmt.Println("\n  Top tags:")
		for _, tc := range tags {
			fmt.Printf("    %-12s %d\n", tc.Tag, tc.Count)
		}
	}

	fmt.Println("\n  Last 7 days:")
	for _, p := range analytics.WeeklyTrend(entries, now, 7) {
		if p.HasData {
			fmt.Printf("    %s  avg %.1f (%d entries)\n", p.Day.Format("Mon 01-02"), p.Average, p.Count)
		} else {
			fmt.Printf("    %s  -\n", p.Day.Format("Mon 01-02"))
		}
	}

	if dist := analytics.MonthlyDistribution(entries, now); len(dist) > 0 {
		fmt.Println("\n  Last 30 days distribution:")
		for _, mc := range dist {
			fmt.Printf("    %s %-8s %d\n", mc.Mood.Emoji(), mc.Mood, mc.Count)
		}
	}

	if insights := analytics.Insights(entries, now); len(insights) > 0 {
		fmt.Println("\n  Patterns:")
		for _, insight := range insights {
			fmt.Printf("    %s: %s\n", insight.Title, insight.Message)
		}
	}

	return nil
}
