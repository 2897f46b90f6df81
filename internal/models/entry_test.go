package models

import (
	"testing"
	"time"
)

func validEntry() Entry {
	return Entry{
		ID:        "entry-1",
		Mood:      MoodHappy,
		Notes:     "a good day",
		Tags:      []string{"work", "gym"},
		Intensity: 5,
		Date:      time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local),
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Entry)
		wantErr bool
	}{
		{"valid entry", func(e *Entry) {}, false},
		{"empty id", func(e *Entry) { e.ID = "" }, true},
		{"unknown mood", func(e *Entry) { e.Mood = "ecstatic" }, true},
		{"intensity too low", func(e *Entry) { e.Intensity = 0 }, true},
		{"intensity too high", func(e *Entry) { e.Intensity = 11 }, true},
		{"intensity at bounds", func(e *Entry) { e.Intensity = 10 }, false},
		{"notes too long", func(e *Entry) { e.Notes = string(make([]byte, 501)) }, true},
		{"notes at limit", func(e *Entry) {
			b := make([]byte, 500)
			for i := range b {
				b[i] = 'x'
			}
			e.Notes = string(b)
		}, false},
		{"too many tags", func(e *Entry) {
			e.Tags = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		}, true},
		{"uppercase tag", func(e *Entry) { e.Tags = []string{"Work"} }, true},
		{"empty tag", func(e *Entry) { e.Tags = []string{""} }, true},
		{"duplicate tag", func(e *Entry) { e.Tags = []string{"work", "work"} }, true},
		{"zero date", func(e *Entry) { e.Date = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lowercases and trims", []string{" Work ", "GYM"}, []string{"work", "gym"}},
		{"dedupes preserving order", []string{"work", "gym", "Work"}, []string{"work", "gym"}},
		{"drops empties", []string{"", "  ", "work"}, []string{"work"}},
		{"caps at ten", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeTags(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMoodScores(t *testing.T) {
	tests := []struct {
		mood Mood
		want int
	}{
		{MoodAngry, 0},
		{MoodStressed, 1},
		{MoodSad, 2},
		{MoodAnxious, 3},
		{MoodNeutral, 4},
		{MoodCalm, 6},
		{MoodHappy, 7},
		{MoodExcited, 8},
		{"unknown", 4},
	}

	for _, tt := range tests {
		if got := tt.mood.Score(); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.mood, got, tt.want)
		}
	}
}

func TestIsPositive(t *testing.T) {
	positive := []Mood{MoodHappy, MoodExcited, MoodCalm}
	for _, m := range positive {
		if !m.IsPositive() {
			t.Errorf("expected %q to be positive", m)
		}
	}

	negative := []Mood{MoodNeutral, MoodSad, MoodAnxious, MoodStressed, MoodAngry}
	for _, m := range negative {
		if m.IsPositive() {
			t.Errorf("expected %q to not be positive", m)
		}
	}
}

func TestParseMood(t *testing.T) {
	m, err := ParseMood("  HAPPY ")
	if err != nil {
		t.Fatalf("ParseMood failed: %v", err)
	}
	if m != MoodHappy {
		t.Errorf("ParseMood = %q, want %q", m, MoodHappy)
	}

	if _, err := ParseMood("grumpy"); err == nil {
		t.Error("expected error for unknown mood")
	}
}

func TestDayOfAndDaysBetween(t *testing.T) {
	morning := time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local)
	evening := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)

	if !DayOf(morning).Equal(DayOf(evening)) {
		t.Error("expected same calendar day for morning and evening instants")
	}

	day1 := DayOf(time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))
	day2 := DayOf(time.Date(2026, 3, 13, 1, 0, 0, 0, time.Local))
	if got := DaysBetween(day1, day2); got != 3 {
		t.Errorf("DaysBetween = %d, want 3", got)
	}
	if got := DaysBetween(day1, day1); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}
