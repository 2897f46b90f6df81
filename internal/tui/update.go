package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlog/internal/tui/components/historylist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.historyList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case historylist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			switch msg.String() {
			case "y", "Y":
				if m.entryToDeleteID != "" {
					if err := m.store.DeleteEntry(m.entryToDeleteID); err != nil {
						m.loadErr = err
					}
					m.entryToDeleteID = ""
					m.reloadEntries()
				}
				m.state = m.previousState
			case "n", "N", "q", "esc":
				m.entryToDeleteID = ""
				m.state = m.previousState
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	if m.state == StateHistory {
		var cmd tea.Cmd
		m.historyList, cmd = m.historyList.Update(msg)
		return m, cmd
	}

	return m, nil
}
