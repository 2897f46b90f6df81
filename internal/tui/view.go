package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/achievements"
	"github.com/julianstephens/moodlog/internal/analytics"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateHistory:
		content = docStyle.Render(m.historyList.View())
	case StateInsights:
		content = m.viewInsights()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "History", "Insights"} {
		state := m.state
		if state == StateConfirmDelete {
			state = m.previousState
		}
		if state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder
	now := m.now()

	b.WriteString(headingStyle.Render(now.Format("Monday, January 2")) + "\n\n")

	if m.loadErr != nil {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Store error: %v", m.loadErr)) + "\n")
		return docStyle.Render(b.String())
	}

	entry, exists, err := m.store.GetEntryForDay(now)
	if err == nil && exists {
		b.WriteString(fmt.Sprintf("Mood:      %s %s\n", entry.Mood.Emoji(), entry.Mood))
		b.WriteString(fmt.Sprintf("Intensity: %d/10\n", entry.Intensity))
		if len(entry.Tags) > 0 {
			b.WriteString("Tags:      " + strings.Join(entry.Tags, ", ") + "\n")
		}
		if entry.Notes != "" {
			b.WriteString("Notes:     " + entry.Notes + "\n")
		}
	} else {
		b.WriteString(faintStyle.Render("No entry yet. Run 'moodlog log' to record your mood.") + "\n")
	}

	b.WriteString(fmt.Sprintf("\nStreak: %d day(s)    Entries: %d\n",
		analytics.Streak(m.entries, now), len(m.entries)))

	if unlocked := achievements.Evaluate(m.entries, now); len(unlocked) > 0 {
		b.WriteString("\n" + headingStyle.Render("Achievements") + "\n")
		for _, a := range unlocked {
			b.WriteString(fmt.Sprintf("  %s %s\n", a.Emoji, a.Title))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewInsights() string {
	var b strings.Builder
	now := m.now()

	if len(m.entries) == 0 {
		return docStyle.Render(faintStyle.Render("No entries yet."))
	}

	b.WriteString(fmt.Sprintf("Average score: %.1f over %d entries\n\n",
		analytics.AverageScore(m.entries), len(m.entries)))

	b.WriteString(headingStyle.Render("Mood frequency") + "\n")
	for _, mc := range analytics.MoodFrequency(m.entries) {
		b.WriteString(fmt.Sprintf("  %s %-8s %s\n", mc.Mood.Emoji(), mc.Mood, strings.Repeat("█", mc.Count)))
	}

	if tags := analytics.TopTags(m.entries); len(tags) > 0 {
		b.WriteString("\n" + headingStyle.Render("Top tags") + "\n")
		for _, tc := range tags {
			b.WriteString(fmt.Sprintf("  %-12s %d\n", tc.Tag, tc.Count))
		}
	}

	if insights := analytics.Insights(m.entries, now); len(insights) > 0 {
		b.WriteString("\n" + headingStyle.Render("Patterns") + "\n")
		for _, insight := range insights {
			b.WriteString(fmt.Sprintf("  %s: %s\n", insight.Title, insight.Message))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
