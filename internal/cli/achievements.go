package cli

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/achievements"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	unlocked := achievements.Evaluate(entries, ctx.Clock.Now())
	if len(unlocked) == 0 {
		fmt.Println("No achievements unlocked yet. Keep logging!")
		return nil
	}

	fmt.Printf("Achievements (%d unlocked):\n\n", len(unlocked))
	for _, a := range unlocked {
		fmt.Printf("  %s %s\n", a.Emoji, a.Title)
		fmt.Printf("     %s\n", a.Description)
	}

	return nil
}
