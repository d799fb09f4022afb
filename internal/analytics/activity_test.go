package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalEntry(mood analytics.Mood, intensity int, notes string) analytics.Entry {
	return analytics.Entry{
		ID:        uuid.New(),
		Mood:      mood,
		Intensity: intensity,
		Notes:     notes,
		Date:      time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestRankActivityImpactAverages(t *testing.T) {
	// Three yoga mentions scoring 4.0, 4.0 and 5.0 average to 4.3 (1dp).
	entries := []analytics.Entry{
		journalEntry(analytics.MoodHappy, 10, "morning yoga before work"),
		journalEntry(analytics.MoodHappy, 10, "Yoga again, felt solid"),
		journalEntry(analytics.MoodExcited, 10, "long yoga session"),
		journalEntry(analytics.MoodSad, 2, "stayed in all day"),
	}

	impacts := analytics.RankActivityImpact(entries, analytics.DefaultActivityVocabulary)
	require.Len(t, impacts, 1)
	assert.Equal(t, "yoga", impacts[0].Activity)
	assert.Equal(t, 4.3, impacts[0].AverageScoreBoost)
	assert.Equal(t, 3, impacts[0].Frequency)
}

func TestRankActivityImpactOmitsUnmentionedKeywords(t *testing.T) {
	entries := []analytics.Entry{
		journalEntry(analytics.MoodHappy, 8, "went for a run, no keywords from the list beyond running"),
	}

	impacts := analytics.RankActivityImpact(entries, analytics.DefaultActivityVocabulary)
	require.Len(t, impacts, 1)
	assert.Equal(t, "running", impacts[0].Activity)
}

func TestRankActivityImpactSortsByBoostDescending(t *testing.T) {
	entries := []analytics.Entry{
		journalEntry(analytics.MoodExcited, 10, "meditation at dawn"),
		journalEntry(analytics.MoodSad, 2, "skipped sleep, long night"),
		journalEntry(analytics.MoodHappy, 8, "walking by the river"),
	}

	impacts := analytics.RankActivityImpact(entries, analytics.DefaultActivityVocabulary)
	require.Len(t, impacts, 3)
	for i := 1; i < len(impacts); i++ {
		assert.GreaterOrEqual(t, impacts[i-1].AverageScoreBoost, impacts[i].AverageScoreBoost)
	}
	assert.Equal(t, "meditation", impacts[0].Activity)
}

func TestRankActivityImpactIgnoresEmptyNotes(t *testing.T) {
	entries := []analytics.Entry{
		journalEntry(analytics.MoodHappy, 10, ""),
		journalEntry(analytics.MoodHappy, 10, "  "),
	}
	assert.Empty(t, analytics.RankActivityImpact(entries, analytics.DefaultActivityVocabulary))
}

func TestRankActivityImpactCustomVocabulary(t *testing.T) {
	entries := []analytics.Entry{
		journalEntry(analytics.MoodHappy, 10, "baked sourdough all afternoon"),
	}

	impacts := analytics.RankActivityImpact(entries, []string{"sourdough"})
	require.Len(t, impacts, 1)
	assert.Equal(t, "sourdough", impacts[0].Activity)
	assert.Equal(t, 4.0, impacts[0].AverageScoreBoost)
}
