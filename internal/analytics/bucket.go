package analytics

import (
	"sort"
	"strings"
	"time"
)

// dayKey truncates a timestamp to its UTC calendar day.
func dayKey(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// BucketByDay groups entries by UTC calendar day and computes per-day
// aggregates. The result is sorted chronologically. An empty input yields
// an empty slice, never nil aggregates or a divide-by-zero.
func BucketByDay(entries []Entry) []DayBucket {
	byDay := make(map[time.Time][]Entry)
	for _, e := range entries {
		key := dayKey(e.Date)
		byDay[key] = append(byDay[key], e)
	}

	buckets := make([]DayBucket, 0, len(byDay))
	for day, dayEntries := range byDay {
		buckets = append(buckets, buildBucket(day, dayEntries))
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})
	return buckets
}

// BucketRange materializes one bucket per day from 'from' through 'to'
// inclusive, including empty days, so a heatmap can render a continuous
// grid. Empty days carry EntryCount 0 and AverageScore 0; consumers must
// distinguish "no entries" from a real zero score via EntryCount.
func BucketRange(entries []Entry, from, to time.Time) []DayBucket {
	start := dayKey(from)
	end := dayKey(to)
	if end.Before(start) {
		return []DayBucket{}
	}

	byDay := make(map[time.Time][]Entry)
	for _, e := range entries {
		key := dayKey(e.Date)
		if key.Before(start) || key.After(end) {
			continue
		}
		byDay[key] = append(byDay[key], e)
	}

	var buckets []DayBucket
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if dayEntries, ok := byDay[day]; ok {
			buckets = append(buckets, buildBucket(day, dayEntries))
		} else {
			buckets = append(buckets, DayBucket{Date: day, Entries: []Entry{}})
		}
	}
	return buckets
}

func buildBucket(day time.Time, entries []Entry) DayBucket {
	bucket := DayBucket{
		Date:       day,
		Entries:    entries,
		EntryCount: len(entries),
	}

	var scoreSum, intensitySum float64
	for _, e := range entries {
		scoreSum += EntryScore(e)
		intensitySum += float64(e.Intensity)
		if strings.TrimSpace(e.Notes) != "" {
			bucket.HasJournal = true
		}
	}

	if len(entries) > 0 {
		n := float64(len(entries))
		bucket.AverageScore = round2(scoreSum / n)
		bucket.AverageIntensity = round2(intensitySum / n)
	}
	return bucket
}

// mostRecentEntry returns the entry with the latest timestamp within a
// bucket. Insertion order is irrelevant; ties keep the earlier element.
func mostRecentEntry(b DayBucket) (Entry, bool) {
	if len(b.Entries) == 0 {
		return Entry{}, false
	}
	latest := b.Entries[0]
	for _, e := range b.Entries[1:] {
		if e.Date.After(latest.Date) {
			latest = e
		}
	}
	return latest, true
}
