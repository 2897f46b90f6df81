package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/models"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM, default current)."`
}

var (
	calHeaderStyle = lipgloss.NewStyle().Bold(true)
	calTodayStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	calEmptyStyle  = lipgloss.NewStyle().Faint(true)
)

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Clock.Now()

	year, month := now.Year(), now.Month()
	if c.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	byDay := make(map[time.Time]models.Entry)
	for _, e := range entries {
		byDay[e.Day()] = e
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := models.DayOf(now)

	fmt.Println(calHeaderStyle.Render(first.Format("January 2006")))
	fmt.Println(calHeaderStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))

	var row strings.Builder
	// Weeks start on Sunday; pad the first row.
	row.WriteString(strings.Repeat("    ", int(first.Weekday())))

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 12, 0, 0, 0, time.Local)
		key := models.DayOf(date)

		var cell string
		if e, ok := byDay[key]; ok {
			cell = dayCell(day, &e)
		} else {
			cell = calEmptyStyle.Render(dayCell(day, nil))
		}
		if key.Equal(today) {
			cell = calTodayStyle.Render(cell)
		}

		row.WriteString(cell)

		if date.Weekday() == time.Saturday {
			fmt.Println(row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		fmt.Println(row.String())
	}

	return nil
}

// dayCell renders one calendar cell at a fixed display width of four
// columns: a right-aligned day number followed by either a double-width
// mood emoji or two spaces. Keeping every cell the same width keeps weeks
// with logged days aligned under the weekday header.
func dayCell(day int, entry *models.Entry) string {
	if entry != nil {
		return fmt.Sprintf("%2d%s", day, entry.Mood.Emoji())
	}
	return fmt.Sprintf("%2d  ", day)
}
