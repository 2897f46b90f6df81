package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

type InsightType string

const (
	InsightImprovement InsightType = "improvement"
	InsightDecline     InsightType = "decline"
	InsightPattern     InsightType = "pattern"
	InsightCorrelation InsightType = "correlation"
)

// Insight is a derived, human-readable observation about mood patterns.
type Insight struct {
	Type    InsightType
	Title   string
	Message string
}

const (
	// MinEntriesForInsights is the minimum entry count before any insight
	// is attempted.
	MinEntriesForInsights = 5

	// MaxInsights caps the number of insights returned per call.
	MaxInsights = 3

	weekDiffThreshold      = 0.5
	dominantShareThreshold = 40.0
	bestDayMinSamples      = 3
	bestDayScoreThreshold  = 5.0
	tagMinOccurrences      = 3
	tagRatioThreshold      = 0.6
)

// Insights derives up to MaxInsights observations from the entries, in a
// fixed generation order: week-over-week comparison, dominant mood pattern,
// best day of week, tag correlation. Fewer than MinEntriesForInsights
// entries yields none.
func Insights(entries []models.Entry, now time.Time) []Insight {
	if len(entries) < MinEntriesForInsights {
		return nil
	}

	var insights []Insight

	if in, ok := weekOverWeek(entries, now); ok {
		insights = append(insights, in)
	}
	if in, ok := dominantMoodPattern(entries); ok {
		insights = append(insights, in)
	}
	if in, ok := bestDayOfWeek(entries); ok {
		insights = append(insights, in)
	}
	if in, ok := tagMoodCorrelation(entries); ok {
		insights = append(insights, in)
	}

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}

	return insights
}

// startOfWeek returns the Sunday beginning the calendar week containing the
// given day. Weeks start on Sunday; this convention is fixed so the
// comparison is deterministic regardless of locale.
func startOfWeek(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// weekOverWeek compares the current calendar week's average score against
// the week before. Both weeks need at least one entry and the absolute
// difference must exceed the threshold.
func weekOverWeek(entries []models.Entry, now time.Time) (Insight, bool) {
	weekStart := startOfWeek(models.DayOf(now))
	lastWeekStart := weekStart.AddDate(0, 0, -7)

	var thisWeek, lastWeek []models.Entry
	for _, e := range entries {
		d := e.Day()
		switch {
		case !d.Before(weekStart) && d.Before(weekStart.AddDate(0, 0, 7)):
			thisWeek = append(thisWeek, e)
		case !d.Before(lastWeekStart) && d.Before(weekStart):
			lastWeek = append(lastWeek, e)
		}
	}

	if len(thisWeek) == 0 || len(lastWeek) == 0 {
		return Insight{}, false
	}

	diff := AverageScore(thisWeek) - AverageScore(lastWeek)
	if diff > -weekDiffThreshold && diff < weekDiffThreshold {
		return Insight{}, false
	}

	if diff > 0 {
		return Insight{
			Type:    InsightImprovement,
			Title:   "Mood Improvement",
			Message: "Your mood has improved this week compared to last week.",
		}, true
	}
	return Insight{
		Type:    InsightDecline,
		Title:   "Mood Decline",
		Message: "Your mood has declined this week compared to last week.",
	}, true
}

// dominantMoodPattern reports the most frequent mood when it accounts for
// more than 40% of all entries.
func dominantMoodPattern(entries []models.Entry) (Insight, bool) {
	freq := MoodFrequency(entries)
	if len(freq) == 0 {
		return Insight{}, false
	}

	top := freq[0]
	share := float64(top.Count) / float64(len(entries)) * 100
	if share <= dominantShareThreshold {
		return Insight{}, false
	}

	return Insight{
		Type:    InsightPattern,
		Title:   "Mood Pattern Detected",
		Message: fmt.Sprintf("You tend to feel %q %.0f%% of the time.", top.Mood, share),
	}, true
}

// bestDayOfWeek finds the weekday with the highest average score among
// weekdays with at least 3 samples, reporting it when that average exceeds
// 5.0 on the mood scale.
func bestDayOfWeek(entries []models.Entry) (Insight, bool) {
	var sums [7]float64
	var counts [7]int
	for _, e := range entries {
		wd := e.Date.Local().Weekday()
		sums[wd] += float64(e.Mood.Score())
		counts[wd]++
	}

	best := -1
	bestAvg := 0.0
	for wd := 0; wd < 7; wd++ {
		if counts[wd] < bestDayMinSamples {
			continue
		}
		avg := sums[wd] / float64(counts[wd])
		if best == -1 || avg > bestAvg {
			best = wd
			bestAvg = avg
		}
	}

	if best == -1 || bestAvg <= bestDayScoreThreshold {
		return Insight{}, false
	}

	return Insight{
		Type:    InsightPattern,
		Title:   "Best Day Pattern",
		Message: fmt.Sprintf("%s tends to be your best mood day!", time.Weekday(best)),
	}, true
}

// tagMoodCorrelation finds the tag most associated with positive moods.
// Only tags appearing on at least 3 entries are considered; the best tag is
// reported when its positive ratio exceeds 0.6.
func tagMoodCorrelation(entries []models.Entry) (Insight, bool) {
	type tagStats struct {
		tag      string
		positive int
		total    int
	}

	byTag := make(map[string]*tagStats)
	var order []string
	for _, e := range entries {
		for _, tag := range e.Tags {
			st, ok := byTag[tag]
			if !ok {
				st = &tagStats{tag: tag}
				byTag[tag] = st
				order = append(order, tag)
			}
			st.total++
			if e.Mood.IsPositive() {
				st.positive++
			}
		}
	}

	var eligible []*tagStats
	for _, tag := range order {
		if byTag[tag].total >= tagMinOccurrences {
			eligible = append(eligible, byTag[tag])
		}
	}
	if len(eligible) == 0 {
		return Insight{}, false
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		ri := float64(eligible[i].positive) / float64(eligible[i].total)
		rj := float64(eligible[j].positive) / float64(eligible[j].total)
		if ri != rj {
			return ri > rj
		}
		return eligible[i].total > eligible[j].total
	})

	best := eligible[0]
	ratio := float64(best.positive) / float64(best.total)
	if ratio <= tagRatioThreshold {
		return Insight{}, false
	}

	return Insight{
		Type:    InsightCorrelation,
		Title:   "Positive Correlation",
		Message: fmt.Sprintf("The tag %q is associated with %.0f%% positive moods!", best.tag, ratio*100),
	}, true
}
