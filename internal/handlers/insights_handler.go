package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunalog/lunalog-backend/internal/dto"
	"github.com/lunalog/lunalog-backend/internal/owner"
	"github.com/lunalog/lunalog-backend/internal/services"
)

// InsightsHandler exposes the analytics engine over HTTP. Each endpoint
// maps onto one pure engine function; truncation and formatting here is
// presentation only.
type InsightsHandler struct {
	service *services.InsightsService
}

func NewInsightsHandler(service *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

const dateLayout = "2006-01-02"

// Trends returns day buckets for a date range (default: trailing 30
// days), including empty days for heatmap rendering.
func (h *InsightsHandler) Trends(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -29)

	if q := c.Query("from"); q != "" {
		if from, err = time.Parse(dateLayout, q); err != nil {
			return badRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
		}
	}
	if q := c.Query("to"); q != "" {
		if to, err = time.Parse(dateLayout, q); err != nil {
			return badRequest(c, "Invalid 'to' date, expected YYYY-MM-DD")
		}
	}
	if to.Before(from) {
		return badRequest(c, "'to' must not precede 'from'")
	}
	if to.Sub(from) > 366*24*time.Hour {
		return badRequest(c, "date range must not exceed one year")
	}

	buckets, err := h.service.Trends(ref, from, to)
	if err != nil {
		return serverError(c, "Failed to compute trends")
	}

	return c.JSON(dto.TrendsResponse{
		Buckets: buckets,
		From:    from.Format(dateLayout),
		To:      to.Format(dateLayout),
	})
}

func (h *InsightsHandler) Streak(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	windowDays, _ := strconv.Atoi(c.Query("window", "30"))
	if windowDays <= 0 || windowDays > 365 {
		windowDays = 30
	}

	streak, consistency, err := h.service.Streak(ref, windowDays)
	if err != nil {
		return serverError(c, "Failed to compute streak")
	}

	return c.JSON(dto.StreakResponse{
		CurrentStreak: streak,
		Consistency:   consistency,
		WindowDays:    windowDays,
	})
}

func (h *InsightsHandler) Lunar(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	correlations, err := h.service.LunarCorrelation(ref)
	if err != nil {
		return serverError(c, "Failed to compute lunar correlation")
	}

	return c.JSON(dto.LunarResponse{Correlations: correlations})
}

func (h *InsightsHandler) Activities(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	impacts, err := h.service.ActivityImpact(ref)
	if err != nil {
		return serverError(c, "Failed to compute activity impact")
	}

	return c.JSON(dto.ActivityResponse{Impacts: impacts})
}

// Emotions returns the emotion cloud; the engine emits the full ranked
// list and the handler truncates to the requested top N.
func (h *InsightsHandler) Emotions(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	words, err := h.service.EmotionCloud(ref)
	if err != nil {
		return serverError(c, "Failed to compute emotion cloud")
	}
	if len(words) > limit {
		words = words[:limit]
	}

	return c.JSON(dto.EmotionCloudResponse{Words: words})
}

func (h *InsightsHandler) Sentiment(c *fiber.Ctx) error {
	ref, err := owner.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	points, err := h.service.SentimentSeries(ref)
	if err != nil {
		return serverError(c, "Failed to compute sentiment series")
	}

	return c.JSON(dto.SentimentResponse{Points: points})
}
