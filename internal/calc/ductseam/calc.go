// Package ductseam estimates the weld length for duct seams: either a number
// of circumferential seams around a known outside diameter, or a number of
// custom-length (typically longitudinal) seams.
package ductseam

import (
	"fmt"

	weld "Weldline/internal/calc/weld"
)

type SeamType string

const (
	SeamCircumferential SeamType = "circumferential"
	SeamCustom          SeamType = "custom"
)

type Input struct {
	SeamType          SeamType     `json:"seam_type"`
	SeamCount         float64      `json:"seam_count"`
	OutsideDiameterIn float64      `json:"outside_diameter_in"`
	CustomLengthIn    float64      `json:"custom_length_in"`
	Globals           weld.Globals `json:"globals"`
}

type Result struct {
	SeamType      SeamType `json:"seam_type"`
	SeamCount     int      `json:"seam_count"`
	BaseLengthIn  float64  `json:"base_length_in"`
	PerSeamIn     float64  `json:"per_seam_in"`
	TotalInches   float64  `json:"total_inches"`
	TotalFeet     float64  `json:"total_feet"`
	RoundedInches float64  `json:"rounded_inches"`
	RoundedFeet   float64  `json:"rounded_feet"`
	Warnings      []string `json:"warnings,omitempty"`
	Explanation   string   `json:"explanation"`
}

// Calculate never fails: a zero diameter or custom length is a valid
// zero-length job, and a seam count below one is raised to one (a seam row
// cannot describe zero seams).
func Calculate(in Input) Result {
	n := in.Globals.Normalize()

	seamType := in.SeamType
	if seamType != SeamCustom {
		seamType = SeamCircumferential
	}

	var base float64
	if seamType == SeamCircumferential {
		base = weld.Circumference(in.OutsideDiameterIn)
	} else {
		base = weld.NonNegative(in.CustomLengthIn)
	}

	var warnings []string
	seams := weld.CountAtLeast(in.SeamCount, 1)
	if in.SeamCount < 1 {
		warnings = append(warnings, fmt.Sprintf("seam count %g raised to 1", in.SeamCount))
	}
	if n.StitchFraction == 0 {
		warnings = append(warnings, "stitch length is zero: nothing gets welded")
	}

	perSeam := base * n.EffectiveFactor * n.StitchFraction * float64(n.Passes)
	total := perSeam * float64(seams)

	explanation := fmt.Sprintf(
		"%d %s seam(s) x %.2f in base x %s = %.2f in (%.2f ft)",
		seams, seamType, base, n.Describe(), total, weld.Feet(total),
	)

	return Result{
		SeamType:      seamType,
		SeamCount:     seams,
		BaseLengthIn:  base,
		PerSeamIn:     perSeam,
		TotalInches:   total,
		TotalFeet:     weld.Feet(total),
		RoundedInches: weld.RoundToStep(total, n.RoundTo),
		RoundedFeet:   weld.RoundToStep(weld.Feet(total), n.RoundTo),
		Warnings:      warnings,
		Explanation:   explanation,
	}
}
