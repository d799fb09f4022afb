package services

import (
	"time"

	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/lunalog/lunalog-backend/internal/models"
	"github.com/lunalog/lunalog-backend/internal/owner"
	"gorm.io/gorm"
)

// InsightsService runs the analytics pipeline for one owner. Each call
// fetches a fresh immutable snapshot of the owner's entries and derives
// everything from scratch; nothing is cached between requests. Handlers
// do no numeric work of their own.
type InsightsService struct {
	entries *EntryService
}

func NewInsightsService(db *gorm.DB) *InsightsService {
	return &InsightsService{entries: NewEntryService(db)}
}

func (s *InsightsService) snapshot(ref owner.Ref) ([]analytics.Entry, error) {
	records, err := s.entries.AllEntries(ref)
	if err != nil {
		return nil, err
	}
	return toAnalyticsEntries(records), nil
}

// Trends materializes day buckets for the requested range, including
// empty days, for heatmap and trend-line rendering.
func (s *InsightsService) Trends(ref owner.Ref, from, to time.Time) ([]analytics.DayBucket, error) {
	entries, err := s.snapshot(ref)
	if err != nil {
		return nil, err
	}
	return analytics.BucketRange(entries, from, to), nil
}

// Streak returns the current consecutive-day streak and the trailing
// consistency percentage. "Today" is the current UTC calendar date,
// matching the engine's bucketing policy.
func (s *InsightsService) Streak(ref owner.Ref, windowDays int) (streak, consistency int, err error) {
	entries, err := s.snapshot(ref)
	if err != nil {
		return 0, 0, err
	}
	buckets := analytics.BucketByDay(entries)
	today := time.Now().UTC()
	return analytics.CurrentStreak(buckets, today), analytics.Consistency(buckets, today, windowDays), nil
}

func (s *InsightsService) LunarCorrelation(ref owner.Ref) ([]analytics.PhaseCorrelation, error) {
	entries, err := s.snapshot(ref)
	if err != nil {
		return nil, err
	}
	return analytics.CorrelateByPhase(analytics.BucketByDay(entries)), nil
}

func (s *InsightsService) ActivityImpact(ref owner.Ref) ([]analytics.ActivityImpact, error) {
	entries, err := s.snapshot(ref)
	if err != nil {
		return nil, err
	}
	return analytics.RankActivityImpact(entries, analytics.DefaultActivityVocabulary), nil
}

func (s *InsightsService) EmotionCloud(ref owner.Ref) ([]analytics.EmotionWord, error) {
	entries, err := s.snapshot(ref)
	if err != nil {
		return nil, err
	}
	return analytics.ExtractEmotionCloud(entries, analytics.DefaultLexicon), nil
}

func (s *InsightsService) SentimentSeries(ref owner.Ref) ([]analytics.SentimentPoint, error) {
	entries, err := s.snapshot(ref)
	if err != nil {
		return nil, err
	}
	return analytics.SentimentOverTime(analytics.BucketByDay(entries), analytics.DefaultLexicon), nil
}

func toAnalyticsEntries(records []models.MoodEntry) []analytics.Entry {
	entries := make([]analytics.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, ToAnalyticsEntry(r))
	}
	return entries
}
