package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
)

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
	MoodCalm     Mood = "calm"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodAnxious  Mood = "anxious"
	MoodStressed Mood = "stressed"
	MoodAngry    Mood = "angry"
)

// AllMoods lists every recognized mood in display order.
var AllMoods = []Mood{
	MoodHappy,
	MoodExcited,
	MoodCalm,
	MoodNeutral,
	MoodSad,
	MoodAnxious,
	MoodStressed,
	MoodAngry,
}

// moodScores maps each mood onto a fixed ordinal scale used for averaging
// and trend arithmetic. The scale is intentionally non-contiguous: 5 is
// unused so that "calm" sits clearly above "neutral".
var moodScores = map[Mood]int{
	MoodAngry:    0,
	MoodStressed: 1,
	MoodSad:      2,
	MoodAnxious:  3,
	MoodNeutral:  4,
	MoodCalm:     6,
	MoodHappy:    7,
	MoodExcited:  8,
}

var moodEmojis = map[Mood]string{
	MoodHappy:    "😊",
	MoodExcited:  "🤩",
	MoodCalm:     "😌",
	MoodNeutral:  "😐",
	MoodSad:      "😢",
	MoodAnxious:  "😰",
	MoodStressed: "😓",
	MoodAngry:    "😠",
}

// Score returns the ordinal value for the mood. Unknown moods fall back to
// the neutral score.
func (m Mood) Score() int {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return moodScores[MoodNeutral]
}

// IsPositive reports whether the mood counts toward positivity stats.
func (m Mood) IsPositive() bool {
	return m == MoodHappy || m == MoodExcited || m == MoodCalm
}

// IsValid reports whether the mood is one of the recognized values.
func (m Mood) IsValid() bool {
	_, ok := moodScores[m]
	return ok
}

// Emoji returns the display emoji for the mood.
func (m Mood) Emoji() string {
	if e, ok := moodEmojis[m]; ok {
		return e
	}
	return moodEmojis[MoodNeutral]
}

// ParseMood converts user input into a Mood, case-insensitively.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mood: %q", s)
	}
	return m, nil
}

// Entry represents a single mood log record.
type Entry struct {
	ID        string    `json:"id"`
	Mood      Mood      `json:"mood"`
	Notes     string    `json:"notes"`
	Tags      []string  `json:"tags"`
	Intensity int       `json:"intensity"`
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry id cannot be empty")
	}
	if !e.Mood.IsValid() {
		return fmt.Errorf("unknown mood: %q", e.Mood)
	}
	if len(e.Notes) > constants.MaxNotesLen {
		return fmt.Errorf("notes exceed %d characters", constants.MaxNotesLen)
	}
	if len(e.Tags) > constants.MaxTags {
		return fmt.Errorf("at most %d tags allowed", constants.MaxTags)
	}
	seen := make(map[string]bool, len(e.Tags))
	for _, tag := range e.Tags {
		if tag == "" {
			return fmt.Errorf("tags cannot be empty")
		}
		if tag != strings.ToLower(tag) {
			return fmt.Errorf("tag %q must be lowercase", tag)
		}
		if seen[tag] {
			return fmt.Errorf("duplicate tag: %q", tag)
		}
		seen[tag] = true
	}
	if e.Intensity < constants.MinIntensity || e.Intensity > constants.MaxIntensity {
		return fmt.Errorf("intensity must be between %d and %d", constants.MinIntensity, constants.MaxIntensity)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry date cannot be zero")
	}
	return nil
}

// NormalizeTags lowercases, trims, dedupes, and caps a raw tag list while
// preserving insertion order.
func NormalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		if len(tags) >= constants.MaxTags {
			break
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// Day returns the entry's local calendar day, normalized to a comparable
// day-granularity value.
func (e *Entry) Day() time.Time {
	return DayOf(e.Date)
}

// DayOf normalizes an instant to its local calendar day. The returned value
// is anchored at UTC midnight so that day arithmetic stays exact across DST
// transitions in the local zone.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from a to b, where
// both values were produced by DayOf.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
