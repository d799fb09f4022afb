package analytics

import "sort"

// CorrelateByPhase joins day buckets with their moon phase and returns the
// per-phase average mood score and entry count.
//
// A day has exactly one representative phase: the phase attached to its
// most-recent entry. Phases never reached by a non-empty bucket are omitted
// entirely rather than emitted as zero rows. Result order is discovery
// order over chronologically sorted buckets; any fixed display order is a
// presentation concern.
func CorrelateByPhase(buckets []DayBucket) []PhaseCorrelation {
	sorted := make([]DayBucket, len(buckets))
	copy(sorted, buckets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	type phaseAgg struct {
		scoreSum   float64
		bucketNum  int
		entryCount int
	}

	order := make([]MoonPhase, 0, 8)
	agg := make(map[MoonPhase]*phaseAgg)

	for _, b := range sorted {
		entry, ok := mostRecentEntry(b)
		if !ok {
			continue
		}
		phase := entry.MoonPhase

		a, seen := agg[phase]
		if !seen {
			a = &phaseAgg{}
			agg[phase] = a
			order = append(order, phase)
		}
		a.scoreSum += b.AverageScore
		a.bucketNum++
		a.entryCount += b.EntryCount
	}

	correlations := make([]PhaseCorrelation, 0, len(order))
	for _, phase := range order {
		a := agg[phase]
		correlations = append(correlations, PhaseCorrelation{
			Phase:        phase,
			AverageScore: round2(a.scoreSum / float64(a.bucketNum)),
			EntryCount:   a.entryCount,
		})
	}
	return correlations
}
