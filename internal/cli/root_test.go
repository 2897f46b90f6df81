package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"normalizes", " Work, GYM ,work", []string{"work", "gym"}},
		{"single", "family", []string{"family"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("parseTags(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseTags(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatEntryLine(t *testing.T) {
	entry := models.Entry{
		ID:        "e1",
		Mood:      models.MoodHappy,
		Notes:     "great workout",
		Tags:      []string{"gym"},
		Intensity: 8,
		Date:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
	}

	line := formatEntryLine(entry)
	for _, want := range []string{"2026-03-10", "happy", "intensity 8", "[gym]", "great workout"} {
		if !strings.Contains(line, want) {
			t.Errorf("formatEntryLine missing %q in %q", want, line)
		}
	}
}

func TestFormatEntryLineTruncatesNotes(t *testing.T) {
	entry := models.Entry{
		ID:        "e1",
		Mood:      models.MoodCalm,
		Notes:     strings.Repeat("a", 100),
		Intensity: 5,
		Date:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
	}

	line := formatEntryLine(entry)
	if !strings.Contains(line, "...") {
		t.Errorf("expected truncated notes marker in %q", line)
	}
	if strings.Contains(line, strings.Repeat("a", 100)) {
		t.Errorf("notes were not truncated in %q", line)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		ctx := &Context{Stdin: strings.NewReader(tt.input)}
		got, err := ctx.confirm("Continue?")
		if err != nil {
			t.Fatalf("confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
