package analytics

import (
	"sort"
	"time"
)

// SubscriptionEventType is a subscription lifecycle transition.
type SubscriptionEventType string

const (
	EventInitialPurchase SubscriptionEventType = "initial_purchase"
	EventRenewal         SubscriptionEventType = "renewal"
	EventCancellation    SubscriptionEventType = "cancellation"
	EventExpiration      SubscriptionEventType = "expiration"
)

// LifecycleEvent is the engine's view of one subscription event.
type LifecycleEvent struct {
	Type       SubscriptionEventType
	Price      float64
	OccurredAt time.Time
}

// MonthRevenue is the per-calendar-month aggregate for the admin
// dashboard. Churn and growth percentages are measured against the
// subscriber count active at the start of the month.
type MonthRevenue struct {
	Month                string  `json:"month"` // "2006-01"
	Revenue              float64 `json:"revenue"`
	NewSubscriptions     int     `json:"new_subscriptions"`
	ChurnedSubscriptions int     `json:"churned_subscriptions"`
	NetGrowth            int     `json:"net_growth"`
	MonthlyChurn         float64 `json:"monthly_churn"`
	MonthlyGrowth        float64 `json:"monthly_growth"`
}

// AggregateRevenue buckets subscription lifecycle events by calendar
// month over the trailing twelve months ending at now, oldest month
// first. Same bucket-then-reduce shape as the mood analytics: events are
// replayed from the full history so the active-subscriber baseline of
// each month is exact. Months without activity are emitted as zero rows
// to keep the series continuous. A zero active baseline yields 0% churn
// and growth rather than a division error.
func AggregateRevenue(events []LifecycleEvent, now time.Time) []MonthRevenue {
	sorted := make([]LifecycleEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	u := now.UTC()
	windowStart := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	// Replay history before the window to seed the active count.
	active := 0
	idx := 0
	for idx < len(sorted) && sorted[idx].OccurredAt.UTC().Before(windowStart) {
		switch sorted[idx].Type {
		case EventInitialPurchase:
			active++
		case EventExpiration:
			active--
		}
		idx++
	}
	if active < 0 {
		active = 0
	}

	months := make([]MonthRevenue, 0, 12)
	for i := 0; i < 12; i++ {
		monthStart := windowStart.AddDate(0, i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		row := MonthRevenue{Month: monthStart.Format("2006-01")}
		activeAtStart := active

		for idx < len(sorted) && sorted[idx].OccurredAt.UTC().Before(monthEnd) {
			ev := sorted[idx]
			switch ev.Type {
			case EventInitialPurchase:
				row.NewSubscriptions++
				row.Revenue += ev.Price
				active++
			case EventRenewal:
				row.Revenue += ev.Price
			case EventExpiration:
				row.ChurnedSubscriptions++
				active--
			}
			idx++
		}
		if active < 0 {
			active = 0
		}

		row.Revenue = round2(row.Revenue)
		row.NetGrowth = row.NewSubscriptions - row.ChurnedSubscriptions
		if activeAtStart > 0 {
			row.MonthlyChurn = round1(float64(row.ChurnedSubscriptions) / float64(activeAtStart) * 100)
			row.MonthlyGrowth = round1(float64(row.NetGrowth) / float64(activeAtStart) * 100)
		}
		months = append(months, row)
	}
	return months
}
