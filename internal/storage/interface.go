package storage

import (
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	AddEntry(models.Entry) error
	GetEntry(id string) (models.Entry, error)
	GetAllEntries() ([]models.Entry, error)
	GetEntryForDay(day time.Time) (models.Entry, bool, error)
	UpdateEntry(models.Entry) error
	DeleteEntry(id string) error
	ClearEntries() error

	// Utils
	GetConfigPath() string
}
