package dto

import (
	"time"

	"github.com/lunalog/lunalog-backend/internal/models"
)

type CreateEntryRequest struct {
	Mood       string    `json:"mood"`
	SubMoods   []string  `json:"sub_moods"`
	Intensity  int       `json:"intensity"`
	Notes      string    `json:"notes"`
	Activities []string  `json:"activities"`
	EntryDate  time.Time `json:"entry_date"` // zero value means "now"
}

type UpdateEntryRequest struct {
	Mood       *string   `json:"mood"`
	SubMoods   *[]string `json:"sub_moods"`
	Intensity  *int      `json:"intensity"`
	Notes      *string   `json:"notes"`
	Activities *[]string `json:"activities"`
}

type EntryListResponse struct {
	Entries []models.MoodEntry `json:"entries"`
	Total   int64              `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}
