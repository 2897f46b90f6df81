package cli

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/moodlog/internal/validation"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println("Settings:")
	fmt.Printf("  reminder-enabled: %t\n", settings.ReminderEnabled)
	fmt.Printf("  reminder-time:    %s\n", settings.ReminderTime)
	fmt.Printf("  theme:            %s\n", settings.Theme)

	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting to change (reminder-enabled|reminder-time|theme)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "reminder-enabled":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("reminder-enabled must be true or false, got %q", c.Value)
		}
		settings.ReminderEnabled = enabled
	case "reminder-time":
		settings.ReminderTime = c.Value
	case "theme":
		if c.Value != "light" && c.Value != "dark" {
			return fmt.Errorf("theme must be light or dark, got %q", c.Value)
		}
		settings.Theme = c.Value
	default:
		return fmt.Errorf("unknown setting %q (expected reminder-enabled, reminder-time, or theme)", c.Key)
	}

	result := validation.New().ValidateSettings(settings)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
