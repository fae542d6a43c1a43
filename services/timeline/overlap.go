// Package timeline computes how room blocks intersect a rendered tape chart
// viewport. Pure date math at day granularity; room-nights carry no
// time-of-day component.
package timeline

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Overlap is the clipped intersection of a block's date range with a
// viewport, with fractional horizontal placement within the viewport.
type Overlap struct {
	EffectiveStart time.Time
	EffectiveEnd   time.Time
	OffsetFraction float64
	WidthFraction  float64
	IsPartial      bool
}

// TruncateToDay normalizes a timestamp to UTC midnight. All date math in this
// package runs on truncated values so a stray time-of-day component cannot
// shift the day counts.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day difference from one date to another,
// rounding any partial day up. Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	d := to.Sub(from)
	days := d / day
	if d%day > 0 {
		days++
	}
	return int(days)
}

// maxDate and minDate compare calendar dates.
func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// ComputeOverlap clips the block range against the viewport and positions it.
// The second return value is false when the ranges do not intersect, in which
// case nothing should be rendered. Both ranges must be non-empty.
func ComputeOverlap(blockStart, blockEnd, viewStart, viewEnd time.Time) (Overlap, bool, error) {
	blockStart = TruncateToDay(blockStart)
	blockEnd = TruncateToDay(blockEnd)
	viewStart = TruncateToDay(viewStart)
	viewEnd = TruncateToDay(viewEnd)

	if !blockStart.Before(blockEnd) {
		return Overlap{}, false, fmt.Errorf("invalid block range: start %s is not before end %s",
			blockStart.Format("2006-01-02"), blockEnd.Format("2006-01-02"))
	}
	if !viewStart.Before(viewEnd) {
		return Overlap{}, false, fmt.Errorf("invalid viewport range: start %s is not before end %s",
			viewStart.Format("2006-01-02"), viewEnd.Format("2006-01-02"))
	}

	effectiveStart := maxDate(blockStart, viewStart)
	effectiveEnd := minDate(blockEnd, viewEnd)
	if !effectiveStart.Before(effectiveEnd) {
		return Overlap{}, false, nil
	}

	totalDays := DaysBetween(viewStart, viewEnd)
	startDay := DaysBetween(viewStart, effectiveStart)
	duration := DaysBetween(effectiveStart, effectiveEnd)

	return Overlap{
		EffectiveStart: effectiveStart,
		EffectiveEnd:   effectiveEnd,
		OffsetFraction: float64(startDay) / float64(totalDays),
		WidthFraction:  float64(duration) / float64(totalDays),
		IsPartial:      blockStart.Before(viewStart) || blockEnd.After(viewEnd),
	}, true, nil
}
