package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

// exportBlob mirrors the JSON store layout so an export file is readable by
// both the import command and the JSON storage backend.
type exportBlob struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	Settings   models.Settings `json:"moodSettings"`
	Entries    []models.Entry  `json:"moodEntries"`
}

type ExportCmd struct {
	Out string `short:"o" help:"Directory to write the export file into." type:"path" default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	now := ctx.Clock.Now()
	blob := exportBlob{
		Version:    1,
		ExportedAt: now,
		Settings:   settings,
		Entries:    entries,
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	filename := constants.ExportFilePrefix + now.Format(constants.DateFormat) + constants.ExportFileSuffix
	path := filepath.Join(c.Out, filename)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	return nil
}

type ImportCmd struct {
	File     string `arg:"" help:"Export file to import." type:"path"`
	Settings bool   `help:"Also import settings from the file." default:"false"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var blob exportBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	existing, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	byID := make(map[string]models.Entry, len(existing))
	for _, e := range existing {
		byID[e.ID] = e
	}

	added, updated, skipped := 0, 0, 0
	for _, e := range blob.Entries {
		if err := e.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping entry %s: %v\n", e.ID, err)
			skipped++
			continue
		}

		current, ok := byID[e.ID]
		if !ok {
			if err := ctx.Store.AddEntry(e); err != nil {
				return err
			}
			added++
			continue
		}

		// Merge by ID, newest update wins.
		if e.UpdatedAt.After(current.UpdatedAt) {
			if err := ctx.Store.UpdateEntry(e); err != nil {
				return err
			}
			updated++
		} else {
			skipped++
		}
	}

	if c.Settings {
		if err := ctx.Store.SaveSettings(blob.Settings); err != nil {
			return err
		}
	}

	fmt.Printf("Import complete: %d added, %d updated, %d skipped\n", added, updated, skipped)
	return nil
}
