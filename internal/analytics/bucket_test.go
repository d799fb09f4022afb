package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(date time.Time, mood analytics.Mood, intensity int) analytics.Entry {
	return analytics.Entry{
		ID:        uuid.New(),
		Mood:      mood,
		Intensity: intensity,
		Date:      date,
	}
}

func TestBucketByDayEmptyInput(t *testing.T) {
	assert.Empty(t, analytics.BucketByDay(nil))
	assert.Empty(t, analytics.BucketByDay([]analytics.Entry{}))
}

func TestBucketByDaySingleEntry(t *testing.T) {
	e := entryAt(time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC), analytics.MoodHappy, 8)
	buckets := analytics.BucketByDay([]analytics.Entry{e})

	require.Len(t, buckets, 1)
	b := buckets[0]
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), b.Date)
	assert.Equal(t, 1, b.EntryCount)
	assert.Equal(t, analytics.EntryScore(e), b.AverageScore)
	assert.Equal(t, 8.0, b.AverageIntensity)
	assert.False(t, b.HasJournal)
}

func TestBucketByDayGroupsByUTCCalendarDate(t *testing.T) {
	// 23:30 and next-day 00:30 are under an hour apart yet distinct days.
	entries := []analytics.Entry{
		entryAt(time.Date(2026, 8, 10, 23, 30, 0, 0, time.UTC), analytics.MoodHappy, 5),
		entryAt(time.Date(2026, 8, 11, 0, 30, 0, 0, time.UTC), analytics.MoodSad, 5),
		entryAt(time.Date(2026, 8, 11, 18, 0, 0, 0, time.UTC), analytics.MoodSad, 5),
	}

	buckets := analytics.BucketByDay(entries)
	require.Len(t, buckets, 2)
	assert.Equal(t, 1, buckets[0].EntryCount)
	assert.Equal(t, 2, buckets[1].EntryCount)
	assert.True(t, buckets[0].Date.Before(buckets[1].Date), "buckets sorted chronologically")
}

func TestBucketEntryCountMatchesEntries(t *testing.T) {
	day := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	entries := []analytics.Entry{
		entryAt(day, analytics.MoodHappy, 5),
		entryAt(day.Add(2*time.Hour), analytics.MoodNeutral, 3),
		entryAt(day.Add(5*time.Hour), analytics.MoodExcited, 9),
	}

	buckets := analytics.BucketByDay(entries)
	require.Len(t, buckets, 1)
	assert.Equal(t, len(buckets[0].Entries), buckets[0].EntryCount)
	assert.Equal(t, 3, buckets[0].EntryCount)
}

func TestBucketHasJournalIgnoresWhitespaceNotes(t *testing.T) {
	day := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	blank := entryAt(day, analytics.MoodHappy, 5)
	blank.Notes = "   \n\t"
	buckets := analytics.BucketByDay([]analytics.Entry{blank})
	require.Len(t, buckets, 1)
	assert.False(t, buckets[0].HasJournal)

	written := entryAt(day, analytics.MoodHappy, 5)
	written.Notes = "slept well, long walk"
	buckets = analytics.BucketByDay([]analytics.Entry{blank, written})
	require.Len(t, buckets, 1)
	assert.True(t, buckets[0].HasJournal)
}

func TestBucketRangeMaterializesEmptyDays(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)
	entries := []analytics.Entry{
		entryAt(time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC), analytics.MoodHappy, 10),
		// outside the range, must be excluded
		entryAt(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC), analytics.MoodSad, 1),
	}

	buckets := analytics.BucketRange(entries, from, to)
	require.Len(t, buckets, 7)

	for i, b := range buckets {
		assert.Equal(t, from.AddDate(0, 0, i), b.Date)
	}

	// Only Aug 3 has data; empty days are zero rows distinguished by EntryCount.
	assert.Equal(t, 1, buckets[2].EntryCount)
	assert.Equal(t, 4.0, buckets[2].AverageScore)
	assert.Equal(t, 0, buckets[0].EntryCount)
	assert.Equal(t, 0.0, buckets[0].AverageScore)
}

func TestBucketRangeInvertedRange(t *testing.T) {
	from := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, analytics.BucketRange(nil, from, to))
}
