package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 5, DaysBetween(date(2024, 6, 10), date(2024, 6, 15)))
	assert.Equal(t, 0, DaysBetween(date(2024, 6, 10), date(2024, 6, 10)))
	assert.Equal(t, -3, DaysBetween(date(2024, 6, 13), date(2024, 6, 10)))
	// Partial days round up.
	assert.Equal(t, 1, DaysBetween(date(2024, 6, 10), date(2024, 6, 10).Add(6*time.Hour)))
}

func TestComputeOverlapInsideViewport(t *testing.T) {
	// Block 2024-06-10..2024-06-15 inside viewport 2024-06-01..2024-06-30.
	overlap, ok, err := ComputeOverlap(
		date(2024, 6, 10), date(2024, 6, 15),
		date(2024, 6, 1), date(2024, 6, 30),
	)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, date(2024, 6, 10), overlap.EffectiveStart)
	assert.Equal(t, date(2024, 6, 15), overlap.EffectiveEnd)
	assert.InDelta(t, 9.0/29.0, overlap.OffsetFraction, 1e-9)
	assert.InDelta(t, 5.0/29.0, overlap.WidthFraction, 1e-9)
	assert.False(t, overlap.IsPartial)
}

func TestComputeOverlapBlockSpansViewport(t *testing.T) {
	// The same block seen through a one-day viewport is clipped on both sides.
	overlap, ok, err := ComputeOverlap(
		date(2024, 6, 10), date(2024, 6, 15),
		date(2024, 6, 12), date(2024, 6, 13),
	)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, date(2024, 6, 12), overlap.EffectiveStart)
	assert.Equal(t, date(2024, 6, 13), overlap.EffectiveEnd)
	assert.Equal(t, 0.0, overlap.OffsetFraction)
	assert.Equal(t, 1.0, overlap.WidthFraction)
	assert.True(t, overlap.IsPartial)
}

func TestComputeOverlapNormalizesTimeOfDay(t *testing.T) {
	// A block arriving with a noon start must place exactly like its
	// midnight-truncated equivalent; partial days never widen the segment.
	overlap, ok, err := ComputeOverlap(
		date(2024, 6, 10).Add(12*time.Hour), date(2024, 7, 5),
		date(2024, 6, 1), date(2024, 6, 30),
	)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, date(2024, 6, 10), overlap.EffectiveStart)
	assert.Equal(t, date(2024, 6, 30), overlap.EffectiveEnd)
	assert.InDelta(t, 9.0/29.0, overlap.OffsetFraction, 1e-9)
	assert.InDelta(t, 20.0/29.0, overlap.WidthFraction, 1e-9)
	assert.LessOrEqual(t, overlap.OffsetFraction+overlap.WidthFraction, 1.0+1e-9)
	assert.True(t, overlap.IsPartial)
}

func TestTruncateToDay(t *testing.T) {
	assert.Equal(t, date(2024, 6, 10), TruncateToDay(date(2024, 6, 10).Add(12*time.Hour+30*time.Minute)))
	assert.Equal(t, date(2024, 6, 10), TruncateToDay(date(2024, 6, 10)))
	// Non-UTC inputs land on the UTC calendar day.
	est := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, date(2024, 6, 11), TruncateToDay(time.Date(2024, 6, 10, 22, 0, 0, 0, est)))
}

func TestComputeOverlapExactMatch(t *testing.T) {
	overlap, ok, err := ComputeOverlap(
		date(2024, 6, 1), date(2024, 6, 30),
		date(2024, 6, 1), date(2024, 6, 30),
	)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.0, overlap.OffsetFraction)
	assert.Equal(t, 1.0, overlap.WidthFraction)
	assert.False(t, overlap.IsPartial)
}

func TestComputeOverlapDisjointRanges(t *testing.T) {
	_, ok, err := ComputeOverlap(
		date(2024, 7, 1), date(2024, 7, 5),
		date(2024, 6, 1), date(2024, 6, 30),
	)
	require.NoError(t, err)
	assert.False(t, ok)

	// Touching ranges do not overlap: the block ends where the viewport starts.
	_, ok, err = ComputeOverlap(
		date(2024, 5, 25), date(2024, 6, 1),
		date(2024, 6, 1), date(2024, 6, 30),
	)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComputeOverlapRejectsInvalidRanges(t *testing.T) {
	_, _, err := ComputeOverlap(
		date(2024, 6, 15), date(2024, 6, 10),
		date(2024, 6, 1), date(2024, 6, 30),
	)
	assert.Error(t, err)

	// Zero-length viewport is invalid input.
	_, _, err = ComputeOverlap(
		date(2024, 6, 10), date(2024, 6, 15),
		date(2024, 6, 12), date(2024, 6, 12),
	)
	assert.Error(t, err)
}

func TestComputeOverlapFractionsStayInUnitRange(t *testing.T) {
	viewStart, viewEnd := date(2024, 6, 1), date(2024, 6, 30)
	for startOff := -10; startOff <= 40; startOff += 3 {
		for length := 1; length <= 45; length += 4 {
			blockStart := viewStart.AddDate(0, 0, startOff)
			blockEnd := blockStart.AddDate(0, 0, length)
			overlap, ok, err := ComputeOverlap(blockStart, blockEnd, viewStart, viewEnd)
			require.NoError(t, err)
			if !ok {
				continue
			}
			assert.GreaterOrEqual(t, overlap.OffsetFraction, 0.0)
			assert.GreaterOrEqual(t, overlap.WidthFraction, 0.0)
			assert.LessOrEqual(t, overlap.OffsetFraction+overlap.WidthFraction, 1.0+1e-9)
		}
	}
}
