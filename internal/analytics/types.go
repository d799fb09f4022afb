// Package analytics implements the mood and journal analytics engine:
// pure, stateless reductions over an immutable snapshot of mood entries.
// Nothing in this package touches the database or holds state between
// calls; every derived artifact is recomputed from scratch per request.
//
// All calendar-day bucketing uses UTC day boundaries. Callers that store
// local timestamps must convert before handing entries to this package.
package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the fixed five-value mood enum.
type Mood string

const (
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
)

// MoonPhase is one of the 8 lunar-cycle stages attached to an entry at
// write time by the astro package. The engine treats it as opaque.
type MoonPhase string

const (
	PhaseNewMoon        MoonPhase = "new_moon"
	PhaseWaxingCrescent MoonPhase = "waxing_crescent"
	PhaseFirstQuarter   MoonPhase = "first_quarter"
	PhaseWaxingGibbous  MoonPhase = "waxing_gibbous"
	PhaseFullMoon       MoonPhase = "full_moon"
	PhaseWaningGibbous  MoonPhase = "waning_gibbous"
	PhaseLastQuarter    MoonPhase = "last_quarter"
	PhaseWaningCrescent MoonPhase = "waning_crescent"
)

// Entry is the engine's view of a single mood record. The storage layer
// validates fields (intensity range, notes length, known mood) before
// entries reach this package.
type Entry struct {
	ID               uuid.UUID
	Mood             Mood
	SubMoods         []string
	Intensity        int
	Notes            string
	Activities       []string
	Date             time.Time
	MoonPhase        MoonPhase
	MoonIllumination float64
}

// DayBucket groups the entries of one UTC calendar day with its derived
// aggregates. Buckets are rebuilt on every request and never persisted.
type DayBucket struct {
	Date             time.Time `json:"date"`
	Entries          []Entry   `json:"-"`
	AverageScore     float64   `json:"average_score"`
	AverageIntensity float64   `json:"average_intensity"`
	EntryCount       int       `json:"entry_count"`
	HasJournal       bool      `json:"has_journal"`
}

// PhaseCorrelation is the per-moon-phase aggregate of day buckets.
type PhaseCorrelation struct {
	Phase        MoonPhase `json:"phase"`
	AverageScore float64   `json:"average_score"`
	EntryCount   int       `json:"entry_count"`
}

// ActivityImpact reports the average score of entries whose journal text
// mentions an activity keyword. This is keyword co-occurrence, not causal
// attribution: "yoga" appearing on good days does not mean yoga caused them.
type ActivityImpact struct {
	Activity          string  `json:"activity"`
	AverageScoreBoost float64 `json:"average_score_boost"`
	Frequency         int     `json:"frequency"`
}

// Sentiment classifies a lexicon token.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// EmotionWord is one frequency-ranked row of the emotion cloud.
type EmotionWord struct {
	Word      string    `json:"word"`
	Count     int       `json:"count"`
	Sentiment Sentiment `json:"sentiment"`
}

// SentimentPoint is one day of the sentiment-over-time series. Days whose
// journal text carries no sentiment-bearing tokens are emitted with Score 0
// and HasSignal false so the series stays continuous for charting.
type SentimentPoint struct {
	Date      time.Time `json:"date"`
	Score     float64   `json:"score"`
	HasSignal bool      `json:"has_signal"`
}
