// Package achievements evaluates which badges the current entry set
// qualifies for. Evaluation is stateless and idempotent: the unlocked set
// is recomputed from scratch every time, so deleting entries can revoke a
// previously earned badge.
package achievements

import (
	"time"

	"github.com/julianstephens/moodlog/internal/analytics"
	"github.com/julianstephens/moodlog/internal/models"
)

// Achievement is a badge unlocked when entry data crosses a fixed threshold.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Emoji       string
}

const (
	streakWeek    = 7
	streakMonth   = 30
	streakCentury = 100

	volumeStarter   = 10
	volumeDedicated = 50
	volumeCentury   = 100
	volumeYear      = 365

	varietyMoods  = 5
	positiveCount = 30
	distinctTags  = 10
)

// Evaluate returns the achievements the entry set currently qualifies for,
// in a fixed catalog order.
func Evaluate(entries []models.Entry, now time.Time) []Achievement {
	var unlocked []Achievement

	streak := analytics.Streak(entries, now)
	if streak >= streakWeek {
		unlocked = append(unlocked, Achievement{
			ID: "week_streak", Title: "Week Warrior", Description: "7 day streak", Emoji: "🔥",
		})
	}
	if streak >= streakMonth {
		unlocked = append(unlocked, Achievement{
			ID: "month_streak", Title: "Month Master", Description: "30 day streak", Emoji: "🔥",
		})
	}
	if streak >= streakCentury {
		unlocked = append(unlocked, Achievement{
			ID: "century_streak", Title: "Century Club", Description: "100 day streak", Emoji: "🏆",
		})
	}

	count := len(entries)
	if count >= volumeStarter {
		unlocked = append(unlocked, Achievement{
			ID: "first_10", Title: "Getting Started", Description: "10 entries", Emoji: "⭐",
		})
	}
	if count >= volumeDedicated {
		unlocked = append(unlocked, Achievement{
			ID: "dedicated", Title: "Dedicated Logger", Description: "50 entries", Emoji: "❤️",
		})
	}
	if count >= volumeCentury {
		unlocked = append(unlocked, Achievement{
			ID: "century", Title: "Century Achiever", Description: "100 entries", Emoji: "🎯",
		})
	}
	if count >= volumeYear {
		unlocked = append(unlocked, Achievement{
			ID: "year", Title: "Year Logger", Description: "365 entries", Emoji: "📅",
		})
	}

	moods := make(map[models.Mood]bool)
	positives := 0
	tags := make(map[string]bool)
	for _, e := range entries {
		moods[e.Mood] = true
		if e.Mood.IsPositive() {
			positives++
		}
		for _, t := range e.Tags {
			tags[t] = true
		}
	}

	if len(moods) >= varietyMoods {
		unlocked = append(unlocked, Achievement{
			ID: "mood_explorer", Title: "Mood Explorer", Description: "Logged 5+ mood types", Emoji: "✨",
		})
	}
	if positives >= positiveCount {
		unlocked = append(unlocked, Achievement{
			ID: "positive_vibes", Title: "Positive Vibes", Description: "30 positive moods", Emoji: "🌟",
		})
	}
	if len(tags) >= distinctTags {
		unlocked = append(unlocked, Achievement{
			ID: "tag_master", Title: "Tag Master", Description: "Used 10+ unique tags", Emoji: "🏷️",
		})
	}

	return unlocked
}
