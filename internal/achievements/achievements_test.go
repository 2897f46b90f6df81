package achievements

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

var testNow = time.Date(2027, 6, 1, 12, 0, 0, 0, time.Local)

func entryOn(daysAgo int, mood models.Mood, tags ...string) models.Entry {
	date := testNow.AddDate(0, 0, -daysAgo)
	return models.Entry{
		ID:        fmt.Sprintf("e-%d", daysAgo),
		Mood:      mood,
		Tags:      tags,
		Intensity: 5,
		Date:      date,
		UpdatedAt: date,
	}
}

func ids(achievements []Achievement) map[string]bool {
	m := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		m[a.ID] = true
	}
	return m
}

func TestEvaluateEmpty(t *testing.T) {
	if got := Evaluate(nil, testNow); len(got) != 0 {
		t.Errorf("expected no achievements for empty entries, got %d", len(got))
	}
}

func TestEvaluateStreakBadges(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, entryOn(i, models.MoodNeutral))
	}

	got := ids(Evaluate(entries, testNow))
	if !got["week_streak"] {
		t.Error("expected week_streak for a 7 day run")
	}
	if got["month_streak"] {
		t.Error("did not expect month_streak at 7 days")
	}

	for i := 7; i < 30; i++ {
		entries = append(entries, entryOn(i, models.MoodNeutral))
	}
	got = ids(Evaluate(entries, testNow))
	if !got["month_streak"] {
		t.Error("expected month_streak for a 30 day run")
	}
	if got["century_streak"] {
		t.Error("did not expect century_streak at 30 days")
	}
}

func TestEvaluateVolumeBadges(t *testing.T) {
	var entries []models.Entry
	// Alternate days so no streak badge interferes with the check below.
	for i := 0; i < 365; i++ {
		entries = append(entries, entryOn(i*2, models.MoodNeutral))
	}

	got := ids(Evaluate(entries, testNow))
	for _, id := range []string{"first_10", "dedicated", "century", "year"} {
		if !got[id] {
			t.Errorf("expected %s with 365 entries", id)
		}
	}
	if got["week_streak"] {
		t.Error("did not expect a streak badge with alternating days")
	}
}

func TestEvaluateMoodExplorer(t *testing.T) {
	moods := []models.Mood{models.MoodHappy, models.MoodSad, models.MoodCalm, models.MoodAngry}
	var entries []models.Entry
	for i, m := range moods {
		entries = append(entries, entryOn(i*3, m))
	}

	got := ids(Evaluate(entries, testNow))
	if got["mood_explorer"] {
		t.Error("did not expect mood_explorer with 4 mood types")
	}

	entries = append(entries, entryOn(20, models.MoodAnxious))
	got = ids(Evaluate(entries, testNow))
	if !got["mood_explorer"] {
		t.Error("expected mood_explorer with 5 mood types")
	}
}

func TestEvaluatePositiveVibes(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 30; i++ {
		entries = append(entries, entryOn(i*2, models.MoodHappy))
	}

	got := ids(Evaluate(entries, testNow))
	if !got["positive_vibes"] {
		t.Error("expected positive_vibes with 30 positive entries")
	}

	// Neutral entries do not count toward positivity.
	var neutral []models.Entry
	for i := 0; i < 30; i++ {
		neutral = append(neutral, entryOn(i*2, models.MoodNeutral))
	}
	got = ids(Evaluate(neutral, testNow))
	if got["positive_vibes"] {
		t.Error("did not expect positive_vibes from neutral entries")
	}
}

func TestEvaluateTagMaster(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, entryOn(i*2, models.MoodNeutral, fmt.Sprintf("tag%d", i)))
	}

	got := ids(Evaluate(entries, testNow))
	if !got["tag_master"] {
		t.Error("expected tag_master with 10 distinct tags")
	}
}

func TestEvaluateIsRevocable(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, entryOn(i, models.MoodNeutral))
	}

	if !ids(Evaluate(entries, testNow))["week_streak"] {
		t.Fatal("expected week_streak before deletion")
	}

	// Removing a mid-streak day revokes the badge on the next evaluation.
	trimmed := append([]models.Entry{}, entries[:3]...)
	trimmed = append(trimmed, entries[4:]...)
	if ids(Evaluate(trimmed, testNow))["week_streak"] {
		t.Error("expected week_streak to be revoked after deleting a day")
	}
}
