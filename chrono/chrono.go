// Package chrono implements the absolute-time primitives shared by the
// commanded-state interpreter and the telemetry event detector: a
// monotonic seconds count paired with the canonical 21-character date
// string used as the primary ordering key throughout this module.
package chrono

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the canonical Chandra date string: YYYY:DOY:HH:MM:SS.sss
const DateLayout = "2006:002:15:04:05.000"

// FutureSentinel closes the final interval of any state or event table.
const FutureSentinel = "2099:365:00:00:00.000"

// epoch is 1997-12-31T23:58:56.816 in UTC, the mission reference epoch
// against which Chandra seconds-since-epoch ("secs") are measured.
var epoch = time.Date(1997, time.December, 31, 23, 58, 56, 816000000, time.UTC)

// SecsToDate converts a mission-epoch seconds count to the canonical
// 21-character date string.
func SecsToDate(secs float64) string {
	// Round to the millisecond before formatting so the layout's three
	// fractional digits carry the rounded value.
	t := epoch.Add(time.Duration(math.Round(secs*1000)) * time.Millisecond)
	return t.Format(DateLayout)
}

// DateToSecs parses a canonical date string into mission-epoch seconds.
func DateToSecs(date string) (float64, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("chrono: invalid date %q: %w", date, err)
	}
	return t.Sub(epoch).Seconds(), nil
}

// SecsRange returns the sequence start, start+step, start+2*step, ...
// strictly less than stop. It mirrors Chandra.Time.DateTime's behavior
// of producing half-open, evenly spaced sample times.
func SecsRange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, 0, n)
	for t := start; t < stop; t += step {
		out = append(out, t)
	}
	return out
}

// AlignedFloor returns the largest multiple of step that is <= secs. Used
// to align periodic pitch-sample epochs across overlapping interpreter
// invocations (§4.6 / §4.8 of SPEC_FULL.md).
func AlignedFloor(secs, step float64) float64 {
	return math.Floor(secs/step) * step
}

// Before reports whether a is strictly earlier than b using the
// lexicographic string order, which is total and agrees with time
// ordering for the canonical date layout (SPEC_FULL.md §9 design note).
func Before(a, b string) bool { return a < b }

// Interpolate performs nearest-neighbor interpolation of ys sampled at
// xs (xs must be non-decreasing) onto the query point x. It is the Go
// analogue of Ska.Numpy.interpolate(method='nearest'). The event detector
// does not call it; it reads related-MSID values with telemetry.Series.At.
func Interpolate(xs []float64, ys []float64, x float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	// binary search for the insertion point
	lo, hi := 0, len(xs)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// lo is the first index with xs[lo] >= x
	if lo == 0 {
		return ys[0]
	}
	before, after := xs[lo-1], xs[lo]
	if x-before <= after-x {
		return ys[lo-1]
	}
	return ys[lo]
}
