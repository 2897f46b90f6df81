package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictUnknownMood         ConflictType = "unknown_mood"
	ConflictIntensityOutOfRange ConflictType = "intensity_out_of_range"
	ConflictNotesTooLong        ConflictType = "notes_too_long"
	ConflictTooManyTags         ConflictType = "too_many_tags"
	ConflictTagNotNormalized    ConflictType = "tag_not_normalized"
	ConflictDuplicateDay        ConflictType = "duplicate_day"
	ConflictInvalidTimestamp    ConflictType = "invalid_timestamp"
	ConflictInvalidReminderTime ConflictType = "invalid_reminder_time"
)

// Conflict represents a detected problem in stored entries or settings
type Conflict struct {
	Type        ConflictType
	Description string
	EntryIDs    []string // IDs of entries involved (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates stored entries and settings
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateEntries checks the entry set for data problems. The journal
// surface prevents most of these, but entries imported or constructed
// programmatically can violate them.
func (v *Validator) ValidateEntries(entries []models.Entry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byDay := make(map[time.Time][]string)

	for _, e := range entries {
		if !e.Mood.IsValid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownMood,
				Description: fmt.Sprintf("Entry %s has unknown mood %q", e.ID, e.Mood),
				EntryIDs:    []string{e.ID},
			})
		}

		if e.Intensity < constants.MinIntensity || e.Intensity > constants.MaxIntensity {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictIntensityOutOfRange,
				Description: fmt.Sprintf("Entry %s has intensity %d outside [%d, %d]", e.ID, e.Intensity, constants.MinIntensity, constants.MaxIntensity),
				EntryIDs:    []string{e.ID},
			})
		}

		if len(e.Notes) > constants.MaxNotesLen {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNotesTooLong,
				Description: fmt.Sprintf("Entry %s has %d-character notes (max %d)", e.ID, len(e.Notes), constants.MaxNotesLen),
				EntryIDs:    []string{e.ID},
			})
		}

		if len(e.Tags) > constants.MaxTags {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictTooManyTags,
				Description: fmt.Sprintf("Entry %s has %d tags (max %d)", e.ID, len(e.Tags), constants.MaxTags),
				EntryIDs:    []string{e.ID},
			})
		}

		for _, tag := range e.Tags {
			if tag == "" || tag != strings.ToLower(strings.TrimSpace(tag)) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictTagNotNormalized,
					Description: fmt.Sprintf("Entry %s has non-normalized tag %q", e.ID, tag),
					EntryIDs:    []string{e.ID},
				})
			}
		}

		if e.Date.IsZero() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTimestamp,
				Description: fmt.Sprintf("Entry %s has a zero date", e.ID),
				EntryIDs:    []string{e.ID},
			})
		} else if !e.UpdatedAt.IsZero() && e.UpdatedAt.Before(e.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTimestamp,
				Description: fmt.Sprintf("Entry %s was updated before it was created", e.ID),
				EntryIDs:    []string{e.ID},
			})
		}

		if !e.Date.IsZero() {
			day := e.Day()
			byDay[day] = append(byDay[day], e.ID)
		}
	}

	for day, ids := range byDay {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateDay,
				Description: fmt.Sprintf("Multiple entries logged for %s (IDs: %v)", day.Format(constants.DateFormat), ids),
				EntryIDs:    ids,
			})
		}
	}

	return result
}

// ValidateSettings checks the stored settings for problems.
func (v *Validator) ValidateSettings(settings models.Settings) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if _, err := time.Parse(constants.TimeFormat, settings.ReminderTime); err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidReminderTime,
			Description: fmt.Sprintf("Reminder time %q is not a valid HH:MM value", settings.ReminderTime),
		})
	}

	return result
}
