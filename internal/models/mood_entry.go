package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MoodEntry is one user-submitted mood record. Immutable in spirit once
// created; edits go through the entry service which revalidates the full
// record. Exactly one of UserID and GuestID is set.
//
// EntryDate is the moment being described and may be backdated to catch
// up on missed days; analytics bucket by this field, not CreatedAt.
// MoonPhase and MoonIllumination are attached at write time from
// EntryDate by the astro package and never recomputed.
type MoodEntry struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	GuestID          *uuid.UUID     `gorm:"type:uuid;index" json:"guest_id,omitempty"`
	Mood             string         `gorm:"size:20;not null" json:"mood"`
	SubMoods         datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"sub_moods"`
	Intensity        int            `gorm:"not null" json:"intensity"`
	Notes            string         `gorm:"size:500" json:"notes"`
	Activities       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"activities"`
	EntryDate        time.Time      `gorm:"not null;index" json:"entry_date"`
	MoonPhase        string         `gorm:"size:20" json:"moon_phase"`
	MoonIllumination float64        `json:"moon_illumination"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
