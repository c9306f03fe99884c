// Package recommend sizes a fillet weld leg for a given shear load. This is a
// helper for estimators choosing weldsPerItem assumptions, not part of the
// length arithmetic.
package recommend

import "fmt"

type FilletInput struct {
	ShearKips    float64 `json:"shear_kips"`
	WeldLengthIn float64 `json:"weld_length_in"`
	AllowableKsi float64 `json:"allowable_ksi"`
	MinimumLegIn float64 `json:"minimum_leg_in"`
}

type FilletResult struct {
	RequiredLegIn float64 `json:"required_leg_in"`
	Notes         string  `json:"notes"`
}

// FilletSize returns the required fillet leg from s = V / (0.707 * L * Fvw).
// Defaults: 21 ksi allowable (E70XX at 0.3 Fu) and a 1/8 in minimum leg.
func FilletSize(in FilletInput) (FilletResult, error) {
	if in.ShearKips <= 0 || in.WeldLengthIn <= 0 {
		return FilletResult{}, fmt.Errorf("invalid input")
	}
	if in.AllowableKsi <= 0 {
		in.AllowableKsi = 21
	}
	if in.MinimumLegIn <= 0 {
		in.MinimumLegIn = 0.125
	}
	s := in.ShearKips / (0.707 * in.WeldLengthIn * in.AllowableKsi)
	if s < in.MinimumLegIn {
		s = in.MinimumLegIn
	}
	return FilletResult{
		RequiredLegIn: s,
		Notes:         "Fillet leg for shear on the weld throat; round up to the next fabrication size.",
	}, nil
}
