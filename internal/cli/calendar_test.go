package cli

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/models"
)

func TestDayCellFixedWidth(t *testing.T) {
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	empty := dayCell(5, nil)
	if got := lipgloss.Width(empty); got != 4 {
		t.Errorf("empty cell width = %d, want 4 (%q)", got, empty)
	}

	// Logged cells must occupy the same columns as empty ones for every
	// mood, or weeks with entries drift out of alignment.
	for _, mood := range models.AllMoods {
		entry := models.Entry{ID: "e1", Mood: mood, Intensity: 5, Date: date}
		cell := dayCell(5, &entry)
		if got := lipgloss.Width(cell); got != 4 {
			t.Errorf("cell width for %q = %d, want 4 (%q)", mood, got, cell)
		}
	}

	// Double-digit days stay within the same width.
	entry := models.Entry{ID: "e1", Mood: models.MoodHappy, Intensity: 5, Date: date}
	if got := lipgloss.Width(dayCell(28, &entry)); got != 4 {
		t.Errorf("double-digit cell width = %d, want 4", got)
	}
}
