package historylist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlog/internal/models"
)

type DeleteEntryMsg struct {
	ID string
}

type Item struct {
	Entry models.Entry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s %s", i.Entry.Date.Local().Format("2006-01-02"), i.Entry.Mood.Emoji(), i.Entry.Mood)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("intensity %d", i.Entry.Intensity)
	if len(i.Entry.Tags) > 0 {
		desc += " | " + strings.Join(i.Entry.Tags, ", ")
	}
	if i.Entry.Notes != "" {
		notes := i.Entry.Notes
		if len(notes) > 40 {
			notes = notes[:37] + "..."
		}
		desc += " | " + notes
	}
	return desc
}

func (i Item) FilterValue() string {
	return string(i.Entry.Mood) + " " + strings.Join(i.Entry.Tags, " ") + " " + i.Entry.Notes
}

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

// New builds the history list, newest entry first.
func New(entries []models.Entry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(entries []models.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[len(entries)-1-i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.Entry) {
	m.list.SetItems(toItems(entries))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries yet.\n  Run 'moodlog log' to record your first mood."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
