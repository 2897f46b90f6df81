package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/moodlog/internal/backup"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/reminder"
	"github.com/julianstephens/moodlog/internal/storage"
)

type Context struct {
	Store storage.Provider
	Clock reminder.Clock

	// Stdin is the confirmation input stream, overridable in tests.
	Stdin io.Reader
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// confirm prompts on stdout and reads a y/N answer from the context's input.
func (c *Context) confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(c.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}

func parseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return models.NormalizeTags(strings.Split(s, ","))
}

func formatEntryLine(e models.Entry) string {
	line := fmt.Sprintf("%s  %s %-8s (intensity %d)",
		e.Date.Local().Format("2006-01-02"), e.Mood.Emoji(), e.Mood, e.Intensity)
	if len(e.Tags) > 0 {
		line += "  [" + strings.Join(e.Tags, ", ") + "]"
	}
	if e.Notes != "" {
		notes := e.Notes
		if len(notes) > 60 {
			notes = notes[:57] + "..."
		}
		line += "  " + notes
	}
	return line
}
