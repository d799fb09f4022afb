package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunalog/lunalog-backend/internal/dto"
	"github.com/lunalog/lunalog-backend/internal/services"
)

// AdminHandler serves operator-facing endpoints. All routes behind it
// require admin authorization.
type AdminHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewAdminHandler(subscriptionService *services.SubscriptionService) *AdminHandler {
	return &AdminHandler{subscriptionService: subscriptionService}
}

// Revenue returns the trailing 12 calendar months of subscription
// revenue, churn and growth, oldest month first.
func (h *AdminHandler) Revenue(c *fiber.Ctx) error {
	months, err := h.subscriptionService.RevenueMonths(time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to aggregate revenue")
	}

	return c.JSON(dto.RevenueResponse{Months: months})
}
