package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

type Store struct {
	Version  int             `json:"version"`
	Settings models.Settings `json:"moodSettings"`
	Entries  []models.Entry  `json:"moodEntries"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: models.DefaultSettings(),
		Entries:  []models.Entry{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'moodlog init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Entries == nil {
		s.store.Entries = []models.Entry{}
	}
	models.ApplyDefaultSettings(&s.store.Settings)

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddEntry(entry models.Entry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, e := range s.store.Entries {
		if e.ID == entry.ID {
			return fmt.Errorf("entry already exists: %s", entry.ID)
		}
	}

	s.store.Entries = append(s.store.Entries, entry)
	return s.save()
}

func (s *JSONStore) GetEntry(id string) (models.Entry, error) {
	if s.store == nil {
		return models.Entry{}, fmt.Errorf("storage not loaded")
	}

	for _, e := range s.store.Entries {
		if e.ID == id {
			return e, nil
		}
	}

	return models.Entry{}, fmt.Errorf("entry not found: %s", id)
}

func (s *JSONStore) GetAllEntries() ([]models.Entry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.Entry, len(s.store.Entries))
	copy(entries, s.store.Entries)

	// Oldest first, so callers see a deterministic order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}

func (s *JSONStore) GetEntryForDay(day time.Time) (models.Entry, bool, error) {
	if s.store == nil {
		return models.Entry{}, false, fmt.Errorf("storage not loaded")
	}

	want := models.DayOf(day)
	for _, e := range s.store.Entries {
		if e.Day().Equal(want) {
			return e, true, nil
		}
	}

	return models.Entry{}, false, nil
}

func (s *JSONStore) UpdateEntry(entry models.Entry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, e := range s.store.Entries {
		if e.ID == entry.ID {
			s.store.Entries[i] = entry
			return s.save()
		}
	}

	return fmt.Errorf("entry not found: %s", entry.ID)
}

func (s *JSONStore) DeleteEntry(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, e := range s.store.Entries {
		if e.ID == id {
			s.store.Entries = append(s.store.Entries[:i], s.store.Entries[i+1:]...)
			return s.save()
		}
	}

	return fmt.Errorf("entry not found: %s", id)
}

func (s *JSONStore) ClearEntries() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Entries = []models.Entry{}
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple moodlog processes that share the same storage path at
//     the same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
