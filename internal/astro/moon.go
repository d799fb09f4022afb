// Package astro computes the lunar context attached to mood entries at
// write time. The analytics engine treats phase and illumination as
// opaque, already-attached fields; this package is the only producer.
package astro

import (
	"math"
	"time"

	"github.com/lunalog/lunalog-backend/internal/analytics"
)

// synodicMonth is the mean length of a lunar cycle in days.
const synodicMonth = 29.530588853

// referenceNewMoon is a well-known new moon epoch (2000-01-06 18:14 UTC).
var referenceNewMoon = time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)

// MoonContext is the lunar state for a given instant.
type MoonContext struct {
	Phase        analytics.MoonPhase
	Illumination float64 // percent, 0-100
}

// At returns the moon phase and illumination percentage for t.
//
// The cycle fraction is the elapsed portion of the synodic month since a
// reference new moon; the 8 named phases split the cycle into equal
// slices centered on the four principal phases. Illumination follows the
// cosine model: 0% at new moon, 100% at full moon.
func At(t time.Time) MoonContext {
	days := t.UTC().Sub(referenceNewMoon).Hours() / 24
	frac := math.Mod(days/synodicMonth, 1)
	if frac < 0 {
		frac += 1
	}

	illumination := (1 - math.Cos(2*math.Pi*frac)) / 2 * 100

	return MoonContext{
		Phase:        phaseFor(frac),
		Illumination: math.Round(illumination*100) / 100,
	}
}

func phaseFor(frac float64) analytics.MoonPhase {
	// Eight equal slices, each centered on its phase (new moon spans the
	// wrap-around at 0/1).
	switch {
	case frac < 0.0625 || frac >= 0.9375:
		return analytics.PhaseNewMoon
	case frac < 0.1875:
		return analytics.PhaseWaxingCrescent
	case frac < 0.3125:
		return analytics.PhaseFirstQuarter
	case frac < 0.4375:
		return analytics.PhaseWaxingGibbous
	case frac < 0.5625:
		return analytics.PhaseFullMoon
	case frac < 0.6875:
		return analytics.PhaseWaningGibbous
	case frac < 0.8125:
		return analytics.PhaseLastQuarter
	default:
		return analytics.PhaseWaningCrescent
	}
}
