package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesEntry(date time.Time, notes string, subMoods ...string) analytics.Entry {
	return analytics.Entry{
		ID:        uuid.New(),
		Mood:      analytics.MoodNeutral,
		Intensity: 5,
		Notes:     notes,
		SubMoods:  subMoods,
		Date:      date,
	}
}

func findWord(cloud []analytics.EmotionWord, word string) (analytics.EmotionWord, bool) {
	for _, w := range cloud {
		if w.Word == word {
			return w, true
		}
	}
	return analytics.EmotionWord{}, false
}

func TestExtractEmotionCloudDeduplicatesWords(t *testing.T) {
	entries := []analytics.Entry{
		notesEntry(time.Now(), "I feel overwhelmed and overwhelmed again"),
	}

	cloud := analytics.ExtractEmotionCloud(entries, analytics.DefaultLexicon)

	word, ok := findWord(cloud, "overwhelmed")
	require.True(t, ok)
	assert.Equal(t, 2, word.Count)
	assert.Equal(t, analytics.SentimentNegative, word.Sentiment)

	seen := 0
	for _, w := range cloud {
		if w.Word == "overwhelmed" {
			seen++
		}
	}
	assert.Equal(t, 1, seen, "one row per distinct word")
}

func TestExtractEmotionCloudKeepsUnknownTokensAsNeutral(t *testing.T) {
	entries := []analytics.Entry{
		notesEntry(time.Now(), "quiet zymurgy evening"),
	}

	cloud := analytics.ExtractEmotionCloud(entries, analytics.DefaultLexicon)
	word, ok := findWord(cloud, "zymurgy")
	require.True(t, ok, "unlexiconed tokens are classified neutral, not dropped")
	assert.Equal(t, analytics.SentimentNeutral, word.Sentiment)
}

func TestExtractEmotionCloudIncludesSubMoodTags(t *testing.T) {
	entries := []analytics.Entry{
		notesEntry(time.Now(), "", "euphoric"),
	}

	cloud := analytics.ExtractEmotionCloud(entries, analytics.DefaultLexicon)
	word, ok := findWord(cloud, "euphoric")
	require.True(t, ok)
	assert.Equal(t, 1, word.Count)
}

func TestExtractEmotionCloudRankedByFrequency(t *testing.T) {
	entries := []analytics.Entry{
		notesEntry(time.Now(), "grateful grateful grateful tired tired calm"),
	}

	cloud := analytics.ExtractEmotionCloud(entries, analytics.DefaultLexicon)
	require.NotEmpty(t, cloud)
	assert.Equal(t, "grateful", cloud[0].Word)
	for i := 1; i < len(cloud); i++ {
		assert.GreaterOrEqual(t, cloud[i-1].Count, cloud[i].Count)
	}
}

func TestExtractEmotionCloudTokenizesOnNonAlphabeticBoundaries(t *testing.T) {
	entries := []analytics.Entry{
		notesEntry(time.Now(), "stressed...but hopeful! 100%"),
	}

	cloud := analytics.ExtractEmotionCloud(entries, analytics.DefaultLexicon)
	_, hasStressed := findWord(cloud, "stressed")
	_, hasHopeful := findWord(cloud, "hopeful")
	assert.True(t, hasStressed)
	assert.True(t, hasHopeful)
	_, hasNumber := findWord(cloud, "100")
	assert.False(t, hasNumber, "digits are not word tokens")
}

func TestSentimentOverTimeSignedAndNormalized(t *testing.T) {
	day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	entries := []analytics.Entry{
		notesEntry(day1, "grateful and happy but tired"), // 2 pos, 1 neg
		notesEntry(day2, "awful terrible day"),           // 0 pos, 2 neg
	}

	points := analytics.SentimentOverTime(analytics.BucketByDay(entries), analytics.DefaultLexicon)
	require.Len(t, points, 2)

	assert.InDelta(t, 0.33, points[0].Score, 0.001)
	assert.True(t, points[0].HasSignal)

	assert.Equal(t, -1.0, points[1].Score)
	assert.True(t, points[1].HasSignal)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Score, -1.0)
		assert.LessOrEqual(t, p.Score, 1.0)
	}
}

func TestSentimentOverTimeKeepsNeutralDaysInSeries(t *testing.T) {
	day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	entries := []analytics.Entry{
		notesEntry(day1, "grateful for everything"),
		notesEntry(day2, "went to the market, bought bread"), // no lexicon hits
	}

	points := analytics.SentimentOverTime(analytics.BucketByDay(entries), analytics.DefaultLexicon)
	require.Len(t, points, 2, "neutral days stay in the series")

	assert.Equal(t, 0.0, points[1].Score)
	assert.False(t, points[1].HasSignal)
}
