package constants

const (
	AppName           = "moodlog"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/moodlog/moodlog.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Entry constraints
	MaxNotesLen  = 500
	MaxTags      = 10
	MinIntensity = 1
	MaxIntensity = 10

	// Default settings values
	DefaultReminderEnabled = true
	DefaultReminderTime    = "20:00"
	DefaultTheme           = "light"

	// Reminder constants
	ReminderTitle = "Mood Journal Reminder"
	ReminderBody  = "Don't forget to log your mood today!"

	// Export constants
	ExportFilePrefix = "mood-journal-export-"
	ExportFileSuffix = ".json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "moodlog-"
)
