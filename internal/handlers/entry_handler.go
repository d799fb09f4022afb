package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/dto"
	"github.com/lunalog/lunalog-backend/internal/owner"
	"github.com/lunalog/lunalog-backend/internal/services"
	"gorm.io/datatypes"
)

type EntryHandler struct {
	service *services.EntryService
}

func NewEntryHandler(service *services.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidMood) ||
		errors.Is(err, services.ErrInvalidIntensity) ||
		errors.Is(err, services.ErrNotesTooLong) ||
		errors.Is(err, services.ErrFutureEntry)
}

func (h *EntryHandler) Create(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.CreateEntry(ref, req)
	if err != nil {
		if isValidationError(err) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "Failed to create entry")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *EntryHandler) List(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	var from, to time.Time
	if q := c.Query("from"); q != "" {
		if from, err = time.Parse(dateLayout, q); err != nil {
			return badRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
		}
	}
	if q := c.Query("to"); q != "" {
		parsed, err := time.Parse(dateLayout, q)
		if err != nil {
			return badRequest(c, "Invalid 'to' date, expected YYYY-MM-DD")
		}
		// inclusive day bound
		to = parsed.AddDate(0, 0, 1)
	}

	entries, total, err := h.service.GetEntries(ref, limit, offset, from, to)
	if err != nil {
		return serverError(c, "Failed to fetch entries")
	}

	return c.JSON(dto.EntryListResponse{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (h *EntryHandler) Get(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry id")
	}

	entry, err := h.service.GetEntry(ref, entryID)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch entry")
	}

	return c.JSON(entry)
}

func (h *EntryHandler) Update(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry id")
	}

	var req dto.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.UpdateEntry(ref, entryID, req)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, err.Error())
		}
		if isValidationError(err) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "Failed to update entry")
	}

	return c.JSON(entry)
}

func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry id")
	}

	if err := h.service.DeleteEntry(ref, entryID); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete entry")
	}

	return c.JSON(fiber.Map{"message": "entry deleted"})
}

// Export downloads the owner's raw entries as CSV or JSON. Raw records
// only; derived analytics are recomputed by clients on demand.
func (h *EntryHandler) Export(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	entries, err := h.service.AllEntries(ref)
	if err != nil {
		return serverError(c, "Failed to fetch entries")
	}

	if c.Query("format", "csv") == "json" {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="mood-entries.json"`)
		return c.JSON(entries)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"id", "entry_date", "mood", "sub_moods", "intensity", "notes", "activities", "moon_phase", "moon_illumination"})
	for _, e := range entries {
		_ = w.Write([]string{
			e.ID.String(),
			e.EntryDate.UTC().Format(time.RFC3339),
			e.Mood,
			strings.Join(decodeList(e.SubMoods), ";"),
			strconv.Itoa(e.Intensity),
			e.Notes,
			strings.Join(decodeList(e.Activities), ";"),
			e.MoonPhase,
			fmt.Sprintf("%.2f", e.MoonIllumination),
		})
	}
	w.Flush()

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mood-entries.csv"`)
	return c.SendString(sb.String())
}

func decodeList(raw datatypes.JSON) []string {
	var values []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	return values
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
