package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/lunalog/lunalog-backend/internal/astro"
	"github.com/lunalog/lunalog-backend/internal/dto"
	"github.com/lunalog/lunalog-backend/internal/models"
	"github.com/lunalog/lunalog-backend/internal/owner"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidMood      = errors.New("mood must be one of: excited, happy, neutral, sad, anxious")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 10")
	ErrNotesTooLong     = errors.New("notes must be at most 500 characters")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrFutureEntry      = errors.New("entry date cannot be in the future")
)

var validMoods = map[string]bool{
	string(analytics.MoodExcited): true,
	string(analytics.MoodHappy):   true,
	string(analytics.MoodNeutral): true,
	string(analytics.MoodSad):     true,
	string(analytics.MoodAnxious): true,
}

// EntryService owns ingestion and retrieval of mood entries. Validation
// happens here, at the boundary, so the analytics engine can assume
// well-formed input: the engine never clamps or repairs records.
type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry validates the request, attaches the lunar context computed
// from the (possibly backdated) entry date, and persists the record for
// the given owner.
func (s *EntryService) CreateEntry(ref owner.Ref, req dto.CreateEntryRequest) (*models.MoodEntry, error) {
	entryDate := req.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now().UTC()
	}
	entryDate = entryDate.UTC()

	if err := validateEntry(req.Mood, req.Intensity, req.Notes, entryDate); err != nil {
		return nil, err
	}

	moon := astro.At(entryDate)

	entry := models.MoodEntry{
		ID:               uuid.New(),
		UserID:           ref.UserID,
		GuestID:          ref.GuestID,
		Mood:             req.Mood,
		SubMoods:         toJSONList(req.SubMoods),
		Intensity:        req.Intensity,
		Notes:            strings.TrimSpace(req.Notes),
		Activities:       toJSONList(req.Activities),
		EntryDate:        entryDate,
		MoonPhase:        string(moon.Phase),
		MoonIllumination: moon.Illumination,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntries returns a page of the owner's entries, newest first. Zero
// from/to leave that end of the date range unbounded; to is exclusive.
func (s *EntryService) GetEntries(ref owner.Ref, limit, offset int, from, to time.Time) ([]models.MoodEntry, int64, error) {
	var entries []models.MoodEntry
	var total int64

	bounded := func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(owner.Scope(ref))
		if !from.IsZero() {
			db = db.Where("entry_date >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where("entry_date < ?", to)
		}
		return db
	}

	bounded(s.db.Model(&models.MoodEntry{})).Count(&total)

	err := bounded(s.db).
		Order("entry_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// AllEntries returns the owner's full history in chronological order.
// The analytics pipeline always reduces over the whole snapshot.
func (s *EntryService) AllEntries(ref owner.Ref) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.Scopes(owner.Scope(ref)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) GetEntry(ref owner.Ref, entryID uuid.UUID) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	if err := s.db.Scopes(owner.Scope(ref)).First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) UpdateEntry(ref owner.Ref, entryID uuid.UUID, req dto.UpdateEntryRequest) (*models.MoodEntry, error) {
	entry, err := s.GetEntry(ref, entryID)
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		if !validMoods[*req.Mood] {
			return nil, ErrInvalidMood
		}
		entry.Mood = *req.Mood
	}
	if req.Intensity != nil {
		if *req.Intensity < 1 || *req.Intensity > 10 {
			return nil, ErrInvalidIntensity
		}
		entry.Intensity = *req.Intensity
	}
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if len(trimmed) > 500 {
			return nil, ErrNotesTooLong
		}
		entry.Notes = trimmed
	}
	if req.SubMoods != nil {
		entry.SubMoods = toJSONList(*req.SubMoods)
	}
	if req.Activities != nil {
		entry.Activities = toJSONList(*req.Activities)
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) DeleteEntry(ref owner.Ref, entryID uuid.UUID) error {
	entry, err := s.GetEntry(ref, entryID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}

func validateEntry(mood string, intensity int, notes string, entryDate time.Time) error {
	if !validMoods[mood] {
		return ErrInvalidMood
	}
	if intensity < 1 || intensity > 10 {
		return ErrInvalidIntensity
	}
	if len(strings.TrimSpace(notes)) > 500 {
		return ErrNotesTooLong
	}
	// A small slack absorbs client clock skew on "now" entries.
	if entryDate.After(time.Now().UTC().Add(5 * time.Minute)) {
		return ErrFutureEntry
	}
	return nil
}

func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

// ToAnalyticsEntry converts a stored record into the engine's immutable
// view, decoding the jsonb tag arrays.
func ToAnalyticsEntry(m models.MoodEntry) analytics.Entry {
	return analytics.Entry{
		ID:               m.ID,
		Mood:             analytics.Mood(m.Mood),
		SubMoods:         fromJSONList(m.SubMoods),
		Intensity:        m.Intensity,
		Notes:            m.Notes,
		Activities:       fromJSONList(m.Activities),
		Date:             m.EntryDate,
		MoonPhase:        analytics.MoonPhase(m.MoonPhase),
		MoonIllumination: m.MoonIllumination,
	}
}

func fromJSONList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
