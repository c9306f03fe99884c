// Package goredelbow estimates the weld length for gored (segmented) duct
// elbows. An elbow built from G gores has G-1 circumferential joints between
// gores, plus up to two end joints connecting to adjacent duct, plus one
// circumferential weld per stiffening ring. Longitudinal seams along each gore
// do not scale with diameter and are accumulated separately, then both pools
// receive the same stitch/efficiency/pass treatment: weld procedure is uniform
// across a job.
package goredelbow

import (
	"fmt"
	"strings"

	weld "Weldline/internal/calc/weld"
)

// ElbowSpec describes one group of identical elbows. All groups share the
// job's outside diameter and global parameters.
type ElbowSpec struct {
	Name                  string  `json:"name"`
	Quantity              float64 `json:"quantity"`
	Gores                 float64 `json:"gores"`
	EndJoints             float64 `json:"end_joints"`
	Rings                 float64 `json:"rings"`
	LongitudinalPerGoreIn float64 `json:"longitudinal_per_gore_in"`
}

// StraightDuct is the optional straight-run contribution welded with the same
// procedure and diameter as the elbows.
type StraightDuct struct {
	ButtJoints           float64 `json:"butt_joints"`
	Rings                float64 `json:"rings"`
	LongitudinalLengthIn float64 `json:"longitudinal_length_in"`
}

type Input struct {
	OutsideDiameterIn float64      `json:"outside_diameter_in"`
	Elbows            []ElbowSpec  `json:"elbows"`
	Straight          StraightDuct `json:"straight"`
	Globals           weld.Globals `json:"globals"`
}

// GroupResult is the normalized per-group breakdown.
type GroupResult struct {
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Gores         int     `json:"gores"`
	SeamsPerElbow int     `json:"seams_per_elbow"`
	CircSeams     int     `json:"circ_seams"`
	LongInches    float64 `json:"long_inches"`
}

type Result struct {
	Groups        []GroupResult `json:"groups"`
	CircSeams     int           `json:"circ_seams"`
	CircInches    float64       `json:"circ_inches"`
	LongInches    float64       `json:"long_inches"`
	BaseInches    float64       `json:"base_inches"`
	TotalInches   float64       `json:"total_inches"`
	TotalFeet     float64       `json:"total_feet"`
	RoundedInches float64       `json:"rounded_inches"`
	RoundedFeet   float64       `json:"rounded_feet"`
	Warnings      []string      `json:"warnings,omitempty"`
	Explanation   string        `json:"explanation"`
}

// Calculate accumulates circumferential seam counts and longitudinal inches
// across all elbow groups and the straight duct, then applies the job-level
// factors once to the summed base length. It never fails; malformed counts are
// floored and surfaced in Warnings.
func Calculate(in Input) Result {
	n := in.Globals.Normalize()
	od := weld.NonNegative(in.OutsideDiameterIn)

	var warnings []string
	var circSeams int
	var longInches float64
	groups := make([]GroupResult, 0, len(in.Elbows))

	for i, e := range in.Elbows {
		label := e.Name
		if label == "" {
			label = fmt.Sprintf("group %d", i+1)
		}

		gores := weld.CountAtLeast(e.Gores, 2)
		if e.Gores < 2 {
			warnings = append(warnings, fmt.Sprintf("%s: gores %g raised to 2 (minimum gored elbow)", label, e.Gores))
		}
		qty := weld.Count(e.Quantity)
		seamsPer := (gores - 1) + weld.Count(e.EndJoints) + weld.Count(e.Rings)
		groupCirc := seamsPer * qty
		groupLong := weld.NonNegative(e.LongitudinalPerGoreIn) * float64(gores) * float64(qty)

		circSeams += groupCirc
		longInches += groupLong
		groups = append(groups, GroupResult{
			Name:          label,
			Quantity:      qty,
			Gores:         gores,
			SeamsPerElbow: seamsPer,
			CircSeams:     groupCirc,
			LongInches:    groupLong,
		})
	}

	circSeams += weld.Count(in.Straight.ButtJoints) + weld.Count(in.Straight.Rings)
	longInches += weld.NonNegative(in.Straight.LongitudinalLengthIn)

	if n.StitchFraction == 0 {
		warnings = append(warnings, "stitch length is zero: nothing gets welded")
	}

	circInches := weld.Circumference(od) * float64(circSeams)
	base := circInches + longInches
	total := base * n.StitchFraction * n.EffectiveFactor * float64(n.Passes)

	var b strings.Builder
	fmt.Fprintf(&b, "%d circ seam(s) x %.2f in circumference + %.2f in longitudinal = %.2f in base; ",
		circSeams, weld.Circumference(od), longInches, base)
	fmt.Fprintf(&b, "%s = %.2f in (%.2f ft)", n.Describe(), total, weld.Feet(total))

	return Result{
		Groups:        groups,
		CircSeams:     circSeams,
		CircInches:    circInches,
		LongInches:    longInches,
		BaseInches:    base,
		TotalInches:   total,
		TotalFeet:     weld.Feet(total),
		RoundedInches: weld.RoundToStep(total, n.RoundTo),
		RoundedFeet:   weld.RoundToStep(weld.Feet(total), n.RoundTo),
		Warnings:      warnings,
		Explanation:   b.String(),
	}
}
