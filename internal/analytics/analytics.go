// Package analytics computes derived statistics over mood entries. All
// functions are pure: they never mutate their input and are deterministic
// for a given reference time. Aggregations are recomputed from the full
// entry set on every call; at the expected data volumes (a few years of
// daily entries) this is cheaper than maintaining incremental state.
package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

// MoodCount is one row of a mood frequency distribution.
type MoodCount struct {
	Mood  models.Mood
	Count int
}

// TagCount is one row of a tag frequency distribution.
type TagCount struct {
	Tag   string
	Count int
}

// TrendPoint is the aggregate for a single calendar day in a trend series.
type TrendPoint struct {
	Day     time.Time
	Average float64
	Count   int
	HasData bool
}

// TopTagsLimit caps the tag frequency list for display.
const TopTagsLimit = 10

// Streak returns the number of consecutive calendar days with at least one
// entry, ending today or yesterday relative to now. A newest entry more than
// one day old breaks the streak entirely.
func Streak(entries []models.Entry, now time.Time) int {
	days := distinctDaysDesc(entries)
	if len(days) == 0 {
		return 0
	}

	today := models.DayOf(now)
	anchor := days[0]
	if models.DaysBetween(anchor, today) > 1 {
		return 0
	}

	streak := 0
	for i, d := range days {
		if models.DaysBetween(d, anchor) == i {
			streak++
		} else {
			break
		}
	}

	return streak
}

// AverageScore returns the mean mood score across all entries, 0 for empty
// input.
func AverageScore(entries []models.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}

	sum := 0
	for _, e := range entries {
		sum += e.Mood.Score()
	}

	return float64(sum) / float64(len(entries))
}

// MoodFrequency returns mood counts sorted by descending count. Ties keep
// first-seen order (entries are assumed oldest first).
func MoodFrequency(entries []models.Entry) []MoodCount {
	counts := make(map[models.Mood]int)
	var order []models.Mood
	for _, e := range entries {
		if counts[e.Mood] == 0 {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}

	result := make([]MoodCount, 0, len(order))
	for _, m := range order {
		result = append(result, MoodCount{Mood: m, Count: counts[m]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

// TagFrequency returns tag counts across all entries, sorted by descending
// count with first-seen order breaking ties.
func TagFrequency(entries []models.Entry) []TagCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, tag := range e.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(order))
	for _, t := range order {
		result = append(result, TagCount{Tag: t, Count: counts[t]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

// TopTags truncates a tag frequency list to the display limit.
func TopTags(entries []models.Entry) []TagCount {
	tags := TagFrequency(entries)
	if len(tags) > TopTagsLimit {
		tags = tags[:TopTagsLimit]
	}
	return tags
}

// WeeklyTrend returns one TrendPoint per calendar day for the last `days`
// days ending at now, oldest first. Days without entries have HasData false.
func WeeklyTrend(entries []models.Entry, now time.Time, days int) []TrendPoint {
	today := models.DayOf(now)

	byDay := make(map[time.Time][]models.Entry)
	for _, e := range entries {
		d := e.Day()
		byDay[d] = append(byDay[d], e)
	}

	trend := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		dayEntries := byDay[day]

		point := TrendPoint{Day: day, Count: len(dayEntries)}
		if len(dayEntries) > 0 {
			point.Average = AverageScore(dayEntries)
			point.HasData = true
		}
		trend = append(trend, point)
	}

	return trend
}

// MonthlyDistribution returns the mood frequency over entries logged within
// the last 30 calendar days ending today.
func MonthlyDistribution(entries []models.Entry, now time.Time) []MoodCount {
	today := models.DayOf(now)

	var recent []models.Entry
	for _, e := range entries {
		age := models.DaysBetween(e.Day(), today)
		if age >= 0 && age < 30 {
			recent = append(recent, e)
		}
	}
	return MoodFrequency(recent)
}

// distinctDaysDesc returns the distinct calendar days covered by the
// entries, newest first.
func distinctDaysDesc(entries []models.Entry) []time.Time {
	seen := make(map[time.Time]bool, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d := e.Day()
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}
