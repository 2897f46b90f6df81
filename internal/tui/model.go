package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/storage"
	"github.com/julianstephens/moodlog/internal/tui/components/historylist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateInsights
	StateConfirmDelete
)

// tabCount is the number of cycle-able tabs (confirm states excluded).
const tabCount = 3

type Model struct {
	store           storage.Provider
	state           SessionState
	previousState   SessionState
	keys            KeyMap
	help            help.Model
	historyList     historylist.Model
	entries         []models.Entry
	quitting        bool
	width           int
	height          int
	entryToDeleteID string
	loadErr         error
}

func NewModel(store storage.Provider) Model {
	entries, err := store.GetAllEntries()
	if err != nil {
		entries = []models.Entry{}
	}

	m := Model{
		store:       store,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		historyList: historylist.New(entries, 0, 0),
		entries:     entries,
		loadErr:     err,
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHistory {
		keys = append(keys, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateHistory {
		actions = []key.Binding{m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reloadEntries refreshes the cached entry slice after a mutation.
func (m *Model) reloadEntries() {
	entries, err := m.store.GetAllEntries()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.entries = entries
	m.historyList.SetEntries(entries)
}

func (m Model) now() time.Time {
	return time.Now()
}
