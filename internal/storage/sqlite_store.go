package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/moodlog/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	mood       TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	tags       TEXT NOT NULL DEFAULT '[]',
	intensity  INTEGER NOT NULL DEFAULT 5,
	date       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	settingReminderEnabled = "reminder_enabled"
	settingReminderTime    = "reminder_time"
	settingTheme           = "theme"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'moodlog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return models.Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}
	if len(values) == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	settings := models.Settings{
		ReminderEnabled: values[settingReminderEnabled] == "true",
		ReminderTime:    values[settingReminderTime],
		Theme:           values[settingTheme],
	}
	models.ApplyDefaultSettings(&settings)

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	values := map[string]string{
		settingReminderEnabled: strconv.FormatBool(settings.ReminderEnabled),
		settingReminderTime:    settings.ReminderTime,
		settingTheme:           settings.Theme,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for k, v := range values {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			k, v,
		); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", k, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddEntry(entry models.Entry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO entries (id, mood, notes, tags, intensity, date, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.ID, string(entry.Mood), entry.Notes, string(tags), entry.Intensity,
		entry.Date.Format(time.RFC3339Nano), entry.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	return nil
}

func (s *SQLiteStore) scanEntry(row interface{ Scan(...any) error }) (models.Entry, error) {
	var entry models.Entry
	var mood, tags, date, updatedAt string

	if err := row.Scan(&entry.ID, &mood, &entry.Notes, &tags, &entry.Intensity, &date, &updatedAt); err != nil {
		return models.Entry{}, err
	}

	entry.Mood = models.Mood(mood)
	if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse tags: %w", err)
	}

	var err error
	if entry.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse entry date: %w", err)
	}
	if entry.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse entry updated_at: %w", err)
	}

	return entry, nil
}

func (s *SQLiteStore) GetEntry(id string) (models.Entry, error) {
	if s.db == nil {
		return models.Entry{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(
		"SELECT id, mood, notes, tags, intensity, date, updated_at FROM entries WHERE id = ?", id,
	)
	entry, err := s.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Entry{}, fmt.Errorf("entry not found: %s", id)
		}
		return models.Entry{}, err
	}

	return entry, nil
}

func (s *SQLiteStore) GetAllEntries() ([]models.Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(
		"SELECT id, mood, notes, tags, intensity, date, updated_at FROM entries ORDER BY date ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := s.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) GetEntryForDay(day time.Time) (models.Entry, bool, error) {
	entries, err := s.GetAllEntries()
	if err != nil {
		return models.Entry{}, false, err
	}

	want := models.DayOf(day)
	for _, e := range entries {
		if e.Day().Equal(want) {
			return e, true, nil
		}
	}

	return models.Entry{}, false, nil
}

func (s *SQLiteStore) UpdateEntry(entry models.Entry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}

	res, err := s.db.Exec(
		"UPDATE entries SET mood = ?, notes = ?, tags = ?, intensity = ?, date = ?, updated_at = ? WHERE id = ?",
		string(entry.Mood), entry.Notes, string(tags), entry.Intensity,
		entry.Date.Format(time.RFC3339Nano), entry.UpdatedAt.Format(time.RFC3339Nano), entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", entry.ID)
	}

	return nil
}

func (s *SQLiteStore) DeleteEntry(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", id)
	}

	return nil
}

func (s *SQLiteStore) ClearEntries() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
