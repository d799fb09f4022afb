package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moonEntry(date time.Time, mood analytics.Mood, intensity int, phase analytics.MoonPhase) analytics.Entry {
	return analytics.Entry{
		ID:        uuid.New(),
		Mood:      mood,
		Intensity: intensity,
		Date:      date,
		MoonPhase: phase,
	}
}

func TestCorrelateByPhaseAveragesAcrossDays(t *testing.T) {
	// Two full-moon days scoring 4.0 and 2.0 average to 3.0.
	entries := []analytics.Entry{
		moonEntry(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), analytics.MoodHappy, 10, analytics.PhaseFullMoon),
		moonEntry(time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC), analytics.MoodAnxious, 10, analytics.PhaseFullMoon),
	}

	correlations := analytics.CorrelateByPhase(analytics.BucketByDay(entries))
	require.Len(t, correlations, 1)
	assert.Equal(t, analytics.PhaseFullMoon, correlations[0].Phase)
	assert.Equal(t, 3.0, correlations[0].AverageScore)
	assert.Equal(t, 2, correlations[0].EntryCount)
}

func TestCorrelateByPhaseOmitsUnseenPhases(t *testing.T) {
	entries := []analytics.Entry{
		moonEntry(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), analytics.MoodHappy, 8, analytics.PhaseNewMoon),
	}

	correlations := analytics.CorrelateByPhase(analytics.BucketByDay(entries))
	require.Len(t, correlations, 1)
	for _, c := range correlations {
		assert.NotEqual(t, analytics.PhaseFullMoon, c.Phase)
	}
}

func TestCorrelateByPhaseUsesMostRecentEntryOfDay(t *testing.T) {
	// Same day, two entries with different attached phases: the later
	// timestamp decides the day's representative phase.
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	entries := []analytics.Entry{
		moonEntry(day.Add(8*time.Hour), analytics.MoodHappy, 5, analytics.PhaseWaxingGibbous),
		moonEntry(day.Add(22*time.Hour), analytics.MoodHappy, 5, analytics.PhaseFullMoon),
	}

	correlations := analytics.CorrelateByPhase(analytics.BucketByDay(entries))
	require.Len(t, correlations, 1)
	assert.Equal(t, analytics.PhaseFullMoon, correlations[0].Phase)
	assert.Equal(t, 2, correlations[0].EntryCount)
}

func TestCorrelateByPhaseEmptyBucketsContributeNothing(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	entries := []analytics.Entry{
		moonEntry(from.Add(10*time.Hour), analytics.MoodHappy, 10, analytics.PhaseFirstQuarter),
	}

	// BucketRange emits empty days; they must not show up as a phase row.
	correlations := analytics.CorrelateByPhase(analytics.BucketRange(entries, from, to))
	require.Len(t, correlations, 1)
	assert.Equal(t, analytics.PhaseFirstQuarter, correlations[0].Phase)
}

func TestCorrelateByPhaseDiscoveryOrder(t *testing.T) {
	entries := []analytics.Entry{
		moonEntry(time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC), analytics.MoodHappy, 5, analytics.PhaseFullMoon),
		moonEntry(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), analytics.MoodHappy, 5, analytics.PhaseNewMoon),
		moonEntry(time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC), analytics.MoodHappy, 5, analytics.PhaseFullMoon),
	}

	correlations := analytics.CorrelateByPhase(analytics.BucketByDay(entries))
	require.Len(t, correlations, 2)
	assert.Equal(t, analytics.PhaseNewMoon, correlations[0].Phase)
	assert.Equal(t, analytics.PhaseFullMoon, correlations[1].Phase)
}
