package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

// entryOn builds an entry logged n days before the test reference time.
func entryOn(daysAgo int, mood models.Mood, tags ...string) models.Entry {
	date := testNow.AddDate(0, 0, -daysAgo)
	return models.Entry{
		ID:        fmt.Sprintf("e-%d-%s", daysAgo, mood),
		Mood:      mood,
		Tags:      tags,
		Intensity: 5,
		Date:      date,
		UpdatedAt: date,
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo []int
		want    int
	}{
		{"no entries", nil, 0},
		{"single entry today", []int{0}, 1},
		{"single entry yesterday", []int{1}, 1},
		{"entry two days ago breaks streak", []int{2}, 0},
		{"three consecutive days ending today", []int{0, 1, 2}, 3},
		{"three consecutive days ending yesterday", []int{1, 2, 3}, 3},
		{"gap stops the count", []int{0, 1, 3, 4}, 2},
		{"old run does not count", []int{5, 6, 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.Entry
			for _, d := range tt.daysAgo {
				entries = append(entries, entryOn(d, models.MoodNeutral))
			}
			if got := Streak(entries, testNow); got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakIgnoresDuplicateDays(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, models.MoodHappy),
		entryOn(0, models.MoodSad),
		entryOn(1, models.MoodNeutral),
	}
	if got := Streak(entries, testNow); got != 2 {
		t.Errorf("Streak with duplicate days = %d, want 2", got)
	}
}

func TestAverageScore(t *testing.T) {
	if got := AverageScore(nil); got != 0 {
		t.Errorf("AverageScore(empty) = %v, want 0", got)
	}

	single := []models.Entry{entryOn(0, models.MoodHappy)}
	if got := AverageScore(single); got != 7.0 {
		t.Errorf("AverageScore(happy) = %v, want 7.0", got)
	}

	// happy=7, sad=2, happy=7 -> 16/3
	mixed := []models.Entry{
		entryOn(0, models.MoodHappy),
		entryOn(1, models.MoodSad),
		entryOn(2, models.MoodHappy),
	}
	want := 16.0 / 3.0
	if got := AverageScore(mixed); got < want-0.001 || got > want+0.001 {
		t.Errorf("AverageScore(mixed) = %v, want %v", got, want)
	}
}

func TestMoodFrequency(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, models.MoodHappy),
		entryOn(1, models.MoodHappy),
		entryOn(2, models.MoodSad),
		entryOn(3, models.MoodHappy),
		entryOn(4, models.MoodCalm),
	}

	freq := MoodFrequency(entries)
	if len(freq) != 3 {
		t.Fatalf("got %d moods, want 3", len(freq))
	}
	if freq[0].Mood != models.MoodHappy || freq[0].Count != 3 {
		t.Errorf("top mood = %+v, want happy x3", freq[0])
	}

	total := 0
	for _, mc := range freq {
		total += mc.Count
	}
	if total != len(entries) {
		t.Errorf("frequency counts sum to %d, want %d", total, len(entries))
	}
}

func TestTagFrequency(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, models.MoodHappy, "work", "gym"),
		entryOn(1, models.MoodSad, "work"),
		entryOn(2, models.MoodCalm, "family"),
	}

	freq := TagFrequency(entries)
	if len(freq) != 3 {
		t.Fatalf("got %d tags, want 3", len(freq))
	}
	if freq[0].Tag != "work" || freq[0].Count != 2 {
		t.Errorf("top tag = %+v, want work x2", freq[0])
	}
}

func TestTopTagsLimit(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 15; i++ {
		entries = append(entries, entryOn(i, models.MoodNeutral, fmt.Sprintf("tag%d", i)))
	}

	tags := TopTags(entries)
	if len(tags) != TopTagsLimit {
		t.Errorf("TopTags returned %d tags, want %d", len(tags), TopTagsLimit)
	}
}

func TestWeeklyTrend(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, models.MoodHappy),
		entryOn(2, models.MoodSad),
		entryOn(2, models.MoodHappy),
	}

	trend := WeeklyTrend(entries, testNow, 7)
	if len(trend) != 7 {
		t.Fatalf("got %d trend points, want 7", len(trend))
	}

	// Oldest first; the last point is today.
	last := trend[6]
	if !last.HasData || last.Average != 7.0 || last.Count != 1 {
		t.Errorf("today's point = %+v, want avg 7.0 count 1", last)
	}

	twoDaysAgo := trend[4]
	if !twoDaysAgo.HasData || twoDaysAgo.Count != 2 {
		t.Errorf("point 2 days ago = %+v, want count 2", twoDaysAgo)
	}
	wantAvg := (2.0 + 7.0) / 2.0
	if twoDaysAgo.Average != wantAvg {
		t.Errorf("avg 2 days ago = %v, want %v", twoDaysAgo.Average, wantAvg)
	}

	yesterday := trend[5]
	if yesterday.HasData || yesterday.Count != 0 {
		t.Errorf("yesterday's point = %+v, want no data", yesterday)
	}

	for i := 1; i < len(trend); i++ {
		if !trend[i].Day.After(trend[i-1].Day) {
			t.Errorf("trend days not ascending at index %d", i)
		}
	}
}

func TestMonthlyDistribution(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, models.MoodHappy),
		entryOn(10, models.MoodSad),
		entryOn(29, models.MoodCalm),
		entryOn(45, models.MoodAngry), // outside the window
	}

	dist := MonthlyDistribution(entries, testNow)

	total := 0
	for _, mc := range dist {
		total += mc.Count
		if mc.Mood == models.MoodAngry {
			t.Error("entry older than 30 days included in distribution")
		}
	}
	if total != 3 {
		t.Errorf("distribution counts sum to %d, want 3", total)
	}
}

func TestMonthlyDistributionUsesCalendarDays(t *testing.T) {
	// The window is counted in calendar days, not 24-hour spans: an entry
	// logged late 29 days ago stays in even when more than 30*24h have
	// passed, and one 30 days ago falls out even when logged minutes before
	// the cutoff instant.
	lateOld := entryOn(29, models.MoodCalm)
	lateOld.Date = lateOld.Date.Add(-11 * time.Hour) // 29 days and ~23h before now

	justOutside := entryOn(30, models.MoodAngry)
	justOutside.Date = justOutside.Date.Add(11 * time.Hour) // 29 days and ~13h before now

	dist := MonthlyDistribution([]models.Entry{lateOld, justOutside}, testNow)

	if len(dist) != 1 {
		t.Fatalf("got %d moods in distribution, want 1", len(dist))
	}
	if dist[0].Mood != models.MoodCalm {
		t.Errorf("distribution kept %q, want %q", dist[0].Mood, models.MoodCalm)
	}
}
