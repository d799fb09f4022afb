package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/lunalog/lunalog-backend/internal/dto"
	"github.com/lunalog/lunalog-backend/internal/models"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// HandleWebhookEvent records the lifecycle event (append-only, replayed
// by the revenue aggregation) and updates the subscriber's current state.
func (s *SubscriptionService) HandleWebhookEvent(event *dto.BillingEvent) error {
	if err := s.recordEvent(event); err != nil {
		return err
	}

	switch event.Type {
	case "INITIAL_PURCHASE":
		return s.handleInitialPurchase(event)
	case "RENEWAL":
		return s.handleRenewal(event)
	case "CANCELLATION":
		return s.setStatus(event, "cancelled")
	case "EXPIRATION":
		return s.setStatus(event, "expired")
	default:
		return nil
	}
}

func (s *SubscriptionService) recordEvent(event *dto.BillingEvent) error {
	row := models.SubscriptionEvent{
		ID:         uuid.New(),
		ExternalID: event.AppUserID,
		Type:       strings.ToLower(event.Type),
		ProductID:  event.ProductID,
		Price:      event.Price,
		Currency:   event.Currency,
		OccurredAt: msToTime(event.PurchasedAtMs),
	}
	return s.db.Create(&row).Error
}

func (s *SubscriptionService) handleInitialPurchase(event *dto.BillingEvent) error {
	sub := models.Subscription{
		ID:                 uuid.New(),
		ExternalID:         event.AppUserID,
		ProductID:          event.ProductID,
		Status:             "active",
		CurrentPeriodStart: msToTime(event.PurchasedAtMs),
		CurrentPeriodEnd:   msToTime(event.ExpirationAtMs),
	}

	var user models.User
	if err := s.db.Where("id = ?", event.AppUserID).First(&user).Error; err == nil {
		sub.UserID = user.ID
	}

	return s.db.Create(&sub).Error
}

func (s *SubscriptionService) handleRenewal(event *dto.BillingEvent) error {
	var sub models.Subscription
	if err := s.db.Where("external_id = ?", event.AppUserID).First(&sub).Error; err != nil {
		return fmt.Errorf("subscription not found for renewal: %w", err)
	}

	return s.db.Model(&sub).Updates(map[string]interface{}{
		"status":               "active",
		"current_period_end":   msToTime(event.ExpirationAtMs),
		"current_period_start": msToTime(event.PurchasedAtMs),
	}).Error
}

func (s *SubscriptionService) setStatus(event *dto.BillingEvent, status string) error {
	return s.db.Model(&models.Subscription{}).
		Where("external_id = ?", event.AppUserID).
		Update("status", status).Error
}

// RevenueMonths replays the full event history through the revenue
// aggregation for the trailing twelve months ending now.
func (s *SubscriptionService) RevenueMonths(now time.Time) ([]analytics.MonthRevenue, error) {
	var rows []models.SubscriptionEvent
	if err := s.db.Order("occurred_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]analytics.LifecycleEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, analytics.LifecycleEvent{
			Type:       analytics.SubscriptionEventType(r.Type),
			Price:      r.Price,
			OccurredAt: r.OccurredAt,
		})
	}
	return analytics.AggregateRevenue(events, now), nil
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
