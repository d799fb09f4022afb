package astro_test

import (
	"testing"
	"time"

	"github.com/lunalog/lunalog-backend/internal/analytics"
	"github.com/lunalog/lunalog-backend/internal/astro"
	"github.com/stretchr/testify/assert"
)

func TestAtReferenceNewMoon(t *testing.T) {
	ctx := astro.At(time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC))
	assert.Equal(t, analytics.PhaseNewMoon, ctx.Phase)
	assert.InDelta(t, 0, ctx.Illumination, 0.5)
}

func TestAtHalfCycleIsFullMoon(t *testing.T) {
	half := time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC).
		Add(time.Duration(29.530588853 / 2 * 24 * float64(time.Hour)))
	ctx := astro.At(half)
	assert.Equal(t, analytics.PhaseFullMoon, ctx.Phase)
	assert.InDelta(t, 100, ctx.Illumination, 0.5)
}

func TestAtIlluminationBounds(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day++ {
		ctx := astro.At(start.AddDate(0, 0, day))
		assert.GreaterOrEqual(t, ctx.Illumination, 0.0)
		assert.LessOrEqual(t, ctx.Illumination, 100.0)
		assert.NotEmpty(t, ctx.Phase)
	}
}

func TestAtDatesBeforeReferenceEpoch(t *testing.T) {
	// Backdated entries may precede the reference new moon.
	ctx := astro.At(time.Date(1999, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.NotEmpty(t, ctx.Phase)
	assert.GreaterOrEqual(t, ctx.Illumination, 0.0)
	assert.LessOrEqual(t, ctx.Illumination, 100.0)
}

func TestAtCoversAllEightPhases(t *testing.T) {
	seen := make(map[analytics.MoonPhase]bool)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 30; day++ {
		seen[astro.At(start.AddDate(0, 0, day)).Phase] = true
	}
	assert.Len(t, seen, 8)
}
