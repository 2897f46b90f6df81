package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

type LogCmd struct {
	Mood      string `short:"m" help:"Mood to log (happy|excited|calm|neutral|anxious|stressed|sad|angry). Omit for the interactive form."`
	Intensity int    `short:"i" help:"Intensity (1-10)." default:"5"`
	Notes     string `short:"n" help:"Free-form notes (max 500 characters)."`
	Tags      string `short:"t" help:"Comma-separated tags (max 10)."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Clock.Now()

	var mood models.Mood
	intensity := c.Intensity
	notes := c.Notes
	tags := parseTags(c.Tags)

	if c.Mood == "" {
		var err error
		mood, intensity, notes, tags, err = runLogForm(intensity)
		if err != nil {
			return err
		}
	} else {
		var err error
		mood, err = models.ParseMood(c.Mood)
		if err != nil {
			return err
		}
	}

	existing, exists, err := ctx.Store.GetEntryForDay(now)
	if err != nil {
		return err
	}

	if exists {
		// One entry per day: logging again replaces today's entry in place.
		existing.Mood = mood
		existing.Intensity = intensity
		existing.Notes = notes
		existing.Tags = tags
		existing.UpdatedAt = now

		if err := existing.Validate(); err != nil {
			return err
		}
		if err := ctx.Store.UpdateEntry(existing); err != nil {
			return err
		}
		fmt.Printf("Updated today's entry: %s %s\n", mood.Emoji(), mood)
		return nil
	}

	entry := models.Entry{
		ID:        uuid.New().String(),
		Mood:      mood,
		Notes:     notes,
		Tags:      tags,
		Intensity: intensity,
		Date:      now,
		UpdatedAt: now,
	}

	if err := entry.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.AddEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Logged mood: %s %s (intensity %d)\n", mood.Emoji(), mood, intensity)
	return nil
}

// runLogForm collects the entry fields interactively.
func runLogForm(defaultIntensity int) (models.Mood, int, string, []string, error) {
	var mood models.Mood
	intensityStr := strconv.Itoa(defaultIntensity)
	var notes string
	var tagsStr string

	moodOptions := make([]huh.Option[models.Mood], 0, len(models.AllMoods))
	for _, m := range models.AllMoods {
		moodOptions = append(moodOptions, huh.NewOption(fmt.Sprintf("%s %s", m.Emoji(), m), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling today?").
				Options(moodOptions...).
				Value(&mood),
			huh.NewInput().
				Title("Intensity (1-10)").
				Value(&intensityStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < constants.MinIntensity || n > constants.MaxIntensity {
						return fmt.Errorf("enter a number between %d and %d", constants.MinIntensity, constants.MaxIntensity)
					}
					return nil
				}),
			huh.NewText().
				Title("Notes (optional)").
				CharLimit(constants.MaxNotesLen).
				Value(&notes),
			huh.NewInput().
				Title("Tags (comma-separated, optional)").
				Value(&tagsStr),
		),
	)

	if err := form.Run(); err != nil {
		return "", 0, "", nil, fmt.Errorf("interactive form error: %w", err)
	}

	intensity, err := strconv.Atoi(intensityStr)
	if err != nil {
		return "", 0, "", nil, fmt.Errorf("invalid intensity %q", intensityStr)
	}

	return mood, intensity, notes, parseTags(tagsStr), nil
}
