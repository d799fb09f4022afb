package analytics

import (
	"sort"
	"strings"
)

// DefaultActivityVocabulary is the fixed keyword set scanned for in
// journal text. Swappable data, not code: callers may pass their own
// vocabulary to RankActivityImpact.
var DefaultActivityVocabulary = []string{
	"journaling",
	"exercise",
	"meditation",
	"walking",
	"yoga",
	"sleep",
	"running",
	"reading",
}

// RankActivityImpact scans each entry's journal text for the vocabulary
// keywords (case-insensitive substring match) and reports the average
// score of entries mentioning each one, rounded to 1 decimal place,
// sorted descending by that average. Keywords never mentioned are
// omitted.
//
// This is co-occurrence, not causal attribution: a high average for
// "yoga" means yoga was mentioned on good days, nothing more.
func RankActivityImpact(entries []Entry, vocabulary []string) []ActivityImpact {
	type activityAgg struct {
		total     float64
		frequency int
	}
	agg := make(map[string]*activityAgg, len(vocabulary))

	for _, e := range entries {
		notes := strings.ToLower(e.Notes)
		if strings.TrimSpace(notes) == "" {
			continue
		}
		score := EntryScore(e)
		for _, keyword := range vocabulary {
			if !strings.Contains(notes, strings.ToLower(keyword)) {
				continue
			}
			a, ok := agg[keyword]
			if !ok {
				a = &activityAgg{}
				agg[keyword] = a
			}
			a.total += score
			a.frequency++
		}
	}

	impacts := make([]ActivityImpact, 0, len(agg))
	for _, keyword := range vocabulary {
		a, ok := agg[keyword]
		if !ok {
			continue
		}
		impacts = append(impacts, ActivityImpact{
			Activity:          keyword,
			AverageScoreBoost: round1(a.total / float64(a.frequency)),
			Frequency:         a.frequency,
		})
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		if impacts[i].AverageScoreBoost != impacts[j].AverageScoreBoost {
			return impacts[i].AverageScoreBoost > impacts[j].AverageScoreBoost
		}
		return impacts[i].Frequency > impacts[j].Frequency
	})
	return impacts
}
