package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

func validEntry(id string, daysAgo int) models.Entry {
	date := time.Date(2026, 3, 20, 10, 0, 0, 0, time.Local).AddDate(0, 0, -daysAgo)
	return models.Entry{
		ID:        id,
		Mood:      models.MoodHappy,
		Tags:      []string{"work"},
		Intensity: 5,
		Date:      date,
		UpdatedAt: date,
	}
}

func TestValidateEntriesClean(t *testing.T) {
	entries := []models.Entry{
		validEntry("e1", 0),
		validEntry("e2", 1),
		validEntry("e3", 2),
	}

	result := New().ValidateEntries(entries)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
	if result.FormatReport() != "No problems detected." {
		t.Errorf("unexpected clean report: %q", result.FormatReport())
	}
}

func TestValidateEntriesDetectsProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Entry)
		want   ConflictType
	}{
		{"unknown mood", func(e *models.Entry) { e.Mood = "jubilant" }, ConflictUnknownMood},
		{"intensity out of range", func(e *models.Entry) { e.Intensity = 0 }, ConflictIntensityOutOfRange},
		{"notes too long", func(e *models.Entry) {
			b := make([]byte, 501)
			for i := range b {
				b[i] = 'x'
			}
			e.Notes = string(b)
		}, ConflictNotesTooLong},
		{"too many tags", func(e *models.Entry) {
			e.Tags = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		}, ConflictTooManyTags},
		{"uppercase tag", func(e *models.Entry) { e.Tags = []string{"Work"} }, ConflictTagNotNormalized},
		{"zero date", func(e *models.Entry) { e.Date = time.Time{} }, ConflictInvalidTimestamp},
		{"updated before created", func(e *models.Entry) {
			e.UpdatedAt = e.Date.AddDate(0, 0, -1)
		}, ConflictInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry("e1", 0)
			tt.mutate(&entry)

			result := New().ValidateEntries([]models.Entry{entry})
			if !result.HasConflicts() {
				t.Fatal("expected a conflict")
			}

			found := false
			for _, c := range result.Conflicts {
				if c.Type == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("expected conflict type %q, got %+v", tt.want, result.Conflicts)
			}
		})
	}
}

func TestValidateEntriesDuplicateDay(t *testing.T) {
	a := validEntry("e1", 0)
	b := validEntry("e2", 0)

	result := New().ValidateEntries([]models.Entry{a, b})
	if !result.HasConflicts() {
		t.Fatal("expected a duplicate day conflict")
	}

	var dup *Conflict
	for i := range result.Conflicts {
		if result.Conflicts[i].Type == ConflictDuplicateDay {
			dup = &result.Conflicts[i]
		}
	}
	if dup == nil {
		t.Fatalf("expected duplicate_day conflict, got %+v", result.Conflicts)
	}
	if len(dup.EntryIDs) != 2 {
		t.Errorf("duplicate conflict names %d entries, want 2", len(dup.EntryIDs))
	}
}

func TestValidateSettings(t *testing.T) {
	good := models.Settings{ReminderEnabled: true, ReminderTime: "08:30", Theme: "light"}
	if result := New().ValidateSettings(good); result.HasConflicts() {
		t.Errorf("expected valid settings, got: %s", result.FormatReport())
	}

	bad := models.Settings{ReminderEnabled: true, ReminderTime: "8:30pm", Theme: "light"}
	result := New().ValidateSettings(bad)
	if !result.HasConflicts() {
		t.Fatal("expected an invalid reminder time conflict")
	}
	if result.Conflicts[0].Type != ConflictInvalidReminderTime {
		t.Errorf("conflict type = %q, want %q", result.Conflicts[0].Type, ConflictInvalidReminderTime)
	}
}
