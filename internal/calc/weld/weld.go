// Package weld holds the arithmetic primitives and job-level parameters shared
// by the duct seam, gored elbow and pipe component calculators.
//
// None of the functions here ever fail: out-of-range input is clamped, floored
// or zeroed, because the expected caller is an interactive form where partial
// input is the normal state while the estimator is typing.
package weld

import (
	"fmt"
	"math"
)

// Stitch describes an intermittent weld pattern: weld StitchLengthIn, skip
// SkipLengthIn, repeat. It is modeled as a duty-cycle fraction applied to the
// total length, not a per-segment simulation.
type Stitch struct {
	Enabled        bool    `json:"enabled"`
	StitchLengthIn float64 `json:"stitch_length_in"`
	SkipLengthIn   float64 `json:"skip_length_in"`
}

// Globals are the job-level parameters. One set applies uniformly to every row
// of a calculation; real jobs may vary procedure per item, but this matches
// the uniform-procedure convention used on the shop floor.
type Globals struct {
	EffectiveFactor float64 `json:"effective_factor"`
	Passes          float64 `json:"passes"`
	Stitch          Stitch  `json:"stitch"`
	RoundTo         float64 `json:"round_to"`
}

// Normalized is the validated form of Globals actually used in arithmetic.
type Normalized struct {
	EffectiveFactor float64 `json:"effective_factor"`
	Passes          int     `json:"passes"`
	StitchFraction  float64 `json:"stitch_fraction"`
	RoundTo         float64 `json:"round_to"`
}

// Normalize clamps and floors the raw parameters into the values the
// calculators multiply with. It is a single explicit step so the normalization
// rules stay testable in one place.
func (g Globals) Normalize() Normalized {
	return Normalized{
		EffectiveFactor: ClampUnit(g.EffectiveFactor),
		Passes:          PassCount(g.Passes),
		StitchFraction:  StitchFraction(g.Stitch.Enabled, g.Stitch.StitchLengthIn, g.Stitch.SkipLengthIn),
		RoundTo:         g.RoundTo,
	}
}

// Describe renders the normalized parameters for explanation strings.
func (n Normalized) Describe() string {
	return fmt.Sprintf("eff %.3f x stitch %.3f x %d pass(es)", n.EffectiveFactor, n.StitchFraction, n.Passes)
}

// Circumference returns pi times the outside diameter. Negative diameters are
// treated as zero.
func Circumference(od float64) float64 {
	if !(od > 0) {
		return 0
	}
	return math.Pi * od
}

// ClampUnit clamps x into [0, 1]. NaN becomes 0.
func ClampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// StitchFraction returns the duty-cycle fraction for a stitch pattern: 1 when
// disabled or when the pattern is degenerate (stitch+skip <= 0), otherwise
// stitch/(stitch+skip). Negative lengths count as zero. Note an enabled
// pattern with a zero stitch length yields 0: nothing gets welded.
func StitchFraction(enabled bool, stitchLen, skipLen float64) float64 {
	if !enabled {
		return 1
	}
	if !(stitchLen > 0) {
		stitchLen = 0
	}
	if !(skipLen > 0) {
		skipLen = 0
	}
	total := stitchLen + skipLen
	if total <= 0 {
		return 1
	}
	return stitchLen / total
}

// RoundToStep rounds value to the nearest multiple of step. A step <= 0 (or
// NaN) means no rounding. Rounded values are for presentation only and are
// never fed back into arithmetic.
func RoundToStep(value, step float64) float64 {
	if !(step > 0) {
		return value
	}
	return math.Round(value/step) * step
}

// Count floors x to a non-negative integer. Counting fields (quantities,
// gores, joints, rings) pass through here so fractional or negative form
// input never throws.
func Count(x float64) int {
	if !(x > 0) {
		return 0
	}
	return int(math.Floor(x))
}

// CountAtLeast floors x like Count but never returns less than min.
func CountAtLeast(x float64, min int) int {
	c := Count(x)
	if c < min {
		return min
	}
	return c
}

// PassCount floors the pass multiplier to an integer, minimum one pass.
func PassCount(x float64) int {
	return CountAtLeast(x, 1)
}

// NonNegative zeroes negative (or NaN) lengths.
func NonNegative(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return x
}

// Feet converts inches to feet.
func Feet(inches float64) float64 {
	return inches / 12.0
}
