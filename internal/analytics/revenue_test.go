package analytics_test

import (
	"testing"
	"time"

	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lifecycleEvent(t analytics.SubscriptionEventType, price float64, at time.Time) analytics.LifecycleEvent {
	return analytics.LifecycleEvent{Type: t, Price: price, OccurredAt: at}
}

func TestAggregateRevenueTwelveContinuousMonths(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	months := analytics.AggregateRevenue(nil, now)
	require.Len(t, months, 12)
	assert.Equal(t, "2025-09", months[0].Month)
	assert.Equal(t, "2026-08", months[11].Month)
	for _, m := range months {
		assert.Zero(t, m.Revenue)
		assert.Zero(t, m.MonthlyChurn)
	}
}

func TestAggregateRevenueSumsPurchasesAndRenewals(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	events := []analytics.LifecycleEvent{
		lifecycleEvent(analytics.EventInitialPurchase, 4.99, time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)),
		lifecycleEvent(analytics.EventRenewal, 4.99, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)),
		lifecycleEvent(analytics.EventCancellation, 0, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)),
	}

	months := analytics.AggregateRevenue(events, now)
	require.Len(t, months, 12)

	july := months[10]
	august := months[11]
	assert.Equal(t, 4.99, july.Revenue)
	assert.Equal(t, 1, july.NewSubscriptions)
	assert.Equal(t, 4.99, august.Revenue)
	assert.Equal(t, 0, august.NewSubscriptions)
	// Cancellation records intent only; churn counts expirations.
	assert.Equal(t, 0, august.ChurnedSubscriptions)
}

func TestAggregateRevenueChurnAgainstActiveBaseline(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Four subscribers active before July; one expires during July.
	var events []analytics.LifecycleEvent
	for day := 1; day <= 4; day++ {
		events = append(events, lifecycleEvent(analytics.EventInitialPurchase, 9.99,
			time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC)))
	}
	events = append(events, lifecycleEvent(analytics.EventExpiration, 0,
		time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)))

	months := analytics.AggregateRevenue(events, now)
	july := months[10]
	assert.Equal(t, 1, july.ChurnedSubscriptions)
	assert.Equal(t, -1, july.NetGrowth)
	assert.Equal(t, 25.0, july.MonthlyChurn)
	assert.Equal(t, -25.0, july.MonthlyGrowth)
}

func TestAggregateRevenueZeroBaselineAvoidsDivision(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	events := []analytics.LifecycleEvent{
		// First ever purchase this month: baseline is zero.
		lifecycleEvent(analytics.EventInitialPurchase, 4.99, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)),
	}

	months := analytics.AggregateRevenue(events, now)
	august := months[11]
	assert.Equal(t, 1, august.NewSubscriptions)
	assert.Equal(t, 0.0, august.MonthlyChurn)
	assert.Equal(t, 0.0, august.MonthlyGrowth)
}

func TestAggregateRevenueIgnoresEventsOutsideWindowForRowsButSeedsBaseline(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	events := []analytics.LifecycleEvent{
		// Two years old: not in any row, but seeds the active count.
		lifecycleEvent(analytics.EventInitialPurchase, 9.99, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)),
		lifecycleEvent(analytics.EventExpiration, 0, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)),
	}

	months := analytics.AggregateRevenue(events, now)
	august := months[11]
	assert.Zero(t, months[0].NewSubscriptions)
	assert.Equal(t, 1, august.ChurnedSubscriptions)
	assert.Equal(t, 100.0, august.MonthlyChurn)
}
