package analytics

import (
	"math"
	"strings"
)

// moodRanks orders the five moods from lowest to highest base rank.
// Lookup tables live as data, not switch branches, so they can be
// extended or localized without touching the scoring algorithm.
var moodRanks = map[Mood]float64{
	MoodSad:     1,
	MoodAnxious: 2,
	MoodNeutral: 3,
	MoodHappy:   4,
	MoodExcited: 5,
}

// subMoodModifiers maps lowercase sub-mood tags to signed score adjustments.
// Tags absent from the table contribute nothing.
var subMoodModifiers = map[string]float64{
	// positive
	"euphoric":  0.30,
	"energetic": 0.20,
	"grateful":  0.20,
	"proud":     0.15,
	"hopeful":   0.15,
	"peaceful":  0.10,
	"content":   0.10,
	"motivated": 0.10,

	// negative
	"depressed":   -0.40,
	"hopeless":    -0.35,
	"overwhelmed": -0.30,
	"lonely":      -0.25,
	"stressed":    -0.20,
	"worried":     -0.15,
	"irritable":   -0.15,
	"restless":    -0.10,

	// near-neutral
	"calm":    0.05,
	"curious": 0.05,
	"tired":   -0.05,
	"bored":   -0.05,
}

// Score converts a mood, its 1-10 intensity and any sub-mood tags into a
// single continuous value in [0,5], rounded to 2 decimal places.
//
// Base score is mood rank times intensity/10. Each sub-mood tag found in
// the modifier table (case-insensitive) adds its signed modifier. The sum
// is clamped to [0,5]. The function is total: unknown moods fall back to
// the neutral rank and it never errors for any input combination.
// Intensity range enforcement belongs to the ingestion boundary, not here.
func Score(mood Mood, intensity int, subMoods ...string) float64 {
	rank, ok := moodRanks[mood]
	if !ok {
		rank = moodRanks[MoodNeutral]
	}

	score := rank * float64(intensity) / 10

	for _, tag := range subMoods {
		score += subMoodModifiers[strings.ToLower(strings.TrimSpace(tag))]
	}

	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return round2(score)
}

// EntryScore scores a full entry, applying all of its sub-mood tags.
func EntryScore(e Entry) float64 {
	return Score(e.Mood, e.Intensity, e.SubMoods...)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
