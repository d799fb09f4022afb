package analytics

import (
	"math"
	"time"
)

// CurrentStreak counts consecutive UTC calendar days with at least one
// entry, walking backward from today.
//
// Policy: a missing entry for today itself does not break the streak —
// the user may simply not have logged yet. The walk starts at today when
// today has an entry, otherwise at yesterday, and stops at the first
// empty day after that. Backdated entries count for the day of their
// Date field, not the day they were created.
func CurrentStreak(buckets []DayBucket, today time.Time) int {
	days := entryDays(buckets)

	day := dayKey(today)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Consistency returns the percentage of days within the trailing
// windowDays-day window (inclusive of today) that have at least one
// entry, rounded to the nearest integer and capped at 100.
func Consistency(buckets []DayBucket, today time.Time, windowDays int) int {
	if windowDays <= 0 {
		return 0
	}

	days := entryDays(buckets)
	end := dayKey(today)
	start := end.AddDate(0, 0, -(windowDays - 1))

	logged := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if days[day] {
			logged++
		}
	}

	pct := int(math.Round(float64(logged) / float64(windowDays) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func entryDays(buckets []DayBucket) map[time.Time]bool {
	days := make(map[time.Time]bool, len(buckets))
	for _, b := range buckets {
		if b.EntryCount > 0 {
			days[dayKey(b.Date)] = true
		}
	}
	return days
}
