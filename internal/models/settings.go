package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	ReminderEnabled bool   `json:"reminderEnabled"` // whether the daily reminder is enabled
	ReminderTime    string `json:"reminderTime"`    // time of the daily reminder, e.g. "20:00"
	Theme           string `json:"theme"`           // display theme name (stored, not interpreted)
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		ReminderEnabled: constants.DefaultReminderEnabled,
		ReminderTime:    constants.DefaultReminderTime,
		Theme:           constants.DefaultTheme,
	}
}

// ApplyDefaultSettings fills in defaults for missing values, e.g. after
// loading a partial blob written by an older version.
func ApplyDefaultSettings(settings *Settings) {
	if settings.ReminderTime == "" {
		settings.ReminderTime = constants.DefaultReminderTime
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
}

func (s *Settings) Validate() error {
	if _, err := time.Parse(constants.TimeFormat, s.ReminderTime); err != nil {
		return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
	}
	return nil
}
