package handlers

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lunalog/lunalog-backend/internal/dto"
	"github.com/lunalog/lunalog-backend/internal/services"
)

type WebhookHandler struct {
	subscriptionService *services.SubscriptionService
	webhookAuth         string
}

func NewWebhookHandler(subscriptionService *services.SubscriptionService, webhookAuth string) *WebhookHandler {
	return &WebhookHandler{
		subscriptionService: subscriptionService,
		webhookAuth:         webhookAuth,
	}
}

// HandleBilling ingests subscription lifecycle events from the billing
// provider, authenticated by a shared secret in the Authorization header.
func (h *WebhookHandler) HandleBilling(c *fiber.Ctx) error {
	if h.webhookAuth == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhooks not configured",
		})
	}

	authHeader := c.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(authHeader), []byte(h.webhookAuth)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var webhook dto.BillingWebhook
	if err := c.BodyParser(&webhook); err != nil {
		return badRequest(c, "Invalid webhook payload")
	}

	if err := h.subscriptionService.HandleWebhookEvent(&webhook.Event); err != nil {
		slog.Error("webhook processing failed", "event_type", webhook.Event.Type, "error", err)
		return serverError(c, "Failed to process webhook event")
	}

	slog.Info("webhook processed", "event_type", webhook.Event.Type, "event_id", webhook.Event.ID)
	return c.JSON(fiber.Map{"received": true})
}
