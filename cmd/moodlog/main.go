package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/moodlog/internal/cli"
	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/reminder"
	"github.com/julianstephens/moodlog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/moodlog/moodlog.db"`
	Debug   bool   `help:"Enable debug logging." default:"false"`

	Init         cli.InitCmd         `cmd:"" help:"Initialize moodlog storage."`
	Log          cli.LogCmd          `cmd:"" help:"Log today's mood."`
	Today        cli.TodayCmd        `cmd:"" help:"Show today's entry and streak." default:"1"`
	History      cli.HistoryCmd      `cmd:"" help:"Browse past entries."`
	Delete       cli.DeleteCmd       `cmd:"" help:"Delete an entry by ID."`
	Calendar     cli.CalendarCmd     `cmd:"" help:"Show a month calendar of logged moods."`
	Insights     cli.InsightsCmd     `cmd:"" help:"Show analytics and detected patterns."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show unlocked achievements."`
	Settings     struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" help:"Manage settings."`
	Export cli.ExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Import entries from an export file."`
	Clear  cli.ClearCmd  `cmd:"" help:"Delete all entries (keeps settings)."`
	Remind cli.RemindCmd `cmd:"" help:"Run the reminder daemon."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run store diagnostics."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal mood journal with streaks, insights, and reminders"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Clock: reminder.SystemClock{},
		Stdin: os.Stdin,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
