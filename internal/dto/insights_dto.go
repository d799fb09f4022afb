package dto

import "github.com/lunalog/lunalog-backend/internal/analytics"

type TrendsResponse struct {
	Buckets []analytics.DayBucket `json:"buckets"`
	From    string                `json:"from"`
	To      string                `json:"to"`
}

type StreakResponse struct {
	CurrentStreak int `json:"current_streak"`
	Consistency   int `json:"consistency"`
	WindowDays    int `json:"window_days"`
}

type LunarResponse struct {
	Correlations []analytics.PhaseCorrelation `json:"correlations"`
}

type ActivityResponse struct {
	Impacts []analytics.ActivityImpact `json:"impacts"`
}

type EmotionCloudResponse struct {
	Words []analytics.EmotionWord `json:"words"`
}

type SentimentResponse struct {
	Points []analytics.SentimentPoint `json:"points"`
}

type RevenueResponse struct {
	Months []analytics.MonthRevenue `json:"months"`
}
