package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

type HistoryCmd struct {
	Mood   string `short:"m" help:"Only show entries with this mood."`
	Tag    string `short:"t" help:"Only show entries carrying this tag."`
	Search string `short:"s" help:"Only show entries whose notes contain this text (case-insensitive)."`
	Date   string `short:"d" help:"Only show the entry for this date (YYYY-MM-DD)."`
	Limit  int    `short:"l" help:"Maximum number of entries to show (0 = all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	var moodFilter models.Mood
	if c.Mood != "" {
		var err error
		moodFilter, err = models.ParseMood(c.Mood)
		if err != nil {
			return err
		}
	}

	var dateFilter time.Time
	if c.Date != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
		}
		dateFilter = models.DayOf(parsed)
	}

	tagFilter := strings.ToLower(strings.TrimSpace(c.Tag))
	searchFilter := strings.ToLower(strings.TrimSpace(c.Search))

	var matched []models.Entry
	for _, e := range entries {
		if moodFilter != "" && e.Mood != moodFilter {
			continue
		}
		if tagFilter != "" && !hasTag(e, tagFilter) {
			continue
		}
		if searchFilter != "" && !strings.Contains(strings.ToLower(e.Notes), searchFilter) {
			continue
		}
		if !dateFilter.IsZero() && !e.Day().Equal(dateFilter) {
			continue
		}
		matched = append(matched, e)
	}

	if len(matched) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	// Newest first for browsing.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}

	if c.Limit > 0 && len(matched) > c.Limit {
		matched = matched[:c.Limit]
	}

	fmt.Printf("%d entr%s:\n\n", len(matched), pluralY(len(matched)))
	for _, e := range matched {
		fmt.Printf("  %s\n", formatEntryLine(e))
		fmt.Printf("      id: %s\n", e.ID)
	}

	return nil
}

func hasTag(e models.Entry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Delete entry from %s (%s %s)?\n", entry.Date.Local().Format(constants.DateFormat), entry.Mood.Emoji(), entry.Mood)
	ok, err := ctx.confirm("Continue?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Delete cancelled.")
		return nil
	}

	if err := ctx.Store.DeleteEntry(c.ID); err != nil {
		return err
	}

	fmt.Println("Entry deleted.")
	return nil
}
