// Package pipeweld estimates the weld length for a pipe line: straight
// butt joints plus per-component welds (elbows, tees, flanges, valves) at a
// single line size. Pipe welds are modeled as continuous, so the stitch
// settings in Globals are ignored here.
package pipeweld

import (
	"fmt"
	"strings"

	weld "Weldline/internal/calc/weld"
)

// ComponentSpec is one component type on the line. JointType ("butt" or
// "fillet") is informational only and never alters the arithmetic.
type ComponentSpec struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	WeldsPerItem float64 `json:"welds_per_item"`
	JointType    string  `json:"joint_type"`
}

type Input struct {
	NominalSize       string          `json:"nominal_size"`
	OutsideDiameterIn float64         `json:"outside_diameter_in"` // overrides the NPS lookup when > 0
	ButtJoints        float64         `json:"butt_joints"`
	Components        []ComponentSpec `json:"components"`
	Globals           weld.Globals    `json:"globals"`
}

type ComponentResult struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Welds     int    `json:"welds"`
	JointType string `json:"joint_type"`
}

type Result struct {
	OutsideDiameterIn float64           `json:"outside_diameter_in"`
	CircumferenceIn   float64           `json:"circumference_in"`
	ButtJoints        int               `json:"butt_joints"`
	Components        []ComponentResult `json:"components"`
	WeldCount         int               `json:"weld_count"`
	TotalInches       float64           `json:"total_inches"`
	TotalFeet         float64           `json:"total_feet"`
	RoundedInches     float64           `json:"rounded_inches"`
	RoundedFeet       float64           `json:"rounded_feet"`
	Warnings          []string          `json:"warnings,omitempty"`
	Explanation       string            `json:"explanation"`
}

// ResolveOD applies the resolution order: explicit override, then the NPS
// table, then zero for an unrecognized size.
func ResolveOD(nominal string, override float64) float64 {
	if override > 0 {
		return override
	}
	if od, ok := LookupOD(nominal); ok {
		return od
	}
	return 0
}

// Calculate accumulates the weld count and multiplies it by one circumference.
// An unrecognized line size yields a zero-length result, not an error.
func Calculate(in Input) Result {
	n := in.Globals.Normalize()

	var warnings []string
	od := ResolveOD(in.NominalSize, weld.NonNegative(in.OutsideDiameterIn))
	if od == 0 && in.NominalSize != "" {
		if _, ok := LookupOD(in.NominalSize); !ok {
			warnings = append(warnings, fmt.Sprintf("unknown nominal size %q: outside diameter is 0", in.NominalSize))
		}
	}

	butt := weld.Count(in.ButtJoints)
	weldCount := butt
	comps := make([]ComponentResult, 0, len(in.Components))
	for _, c := range in.Components {
		qty := weld.Count(c.Quantity)
		welds := qty * weld.Count(c.WeldsPerItem)
		weldCount += welds
		comps = append(comps, ComponentResult{
			Name:      c.Name,
			Quantity:  qty,
			Welds:     welds,
			JointType: c.JointType,
		})
	}

	circ := weld.Circumference(od)
	total := circ * float64(weldCount) * float64(n.Passes) * n.EffectiveFactor

	var b strings.Builder
	fmt.Fprintf(&b, "%d weld(s) (%d butt joint(s)", weldCount, butt)
	for _, c := range comps {
		fmt.Fprintf(&b, " + %dx %s", c.Quantity, componentLabel(c))
	}
	fmt.Fprintf(&b, ") x %.3f in circumference (OD %.3f) x eff %.3f x %d pass(es) = %.2f in (%.2f ft)",
		circ, od, n.EffectiveFactor, n.Passes, total, weld.Feet(total))

	return Result{
		OutsideDiameterIn: od,
		CircumferenceIn:   circ,
		ButtJoints:        butt,
		Components:        comps,
		WeldCount:         weldCount,
		TotalInches:       total,
		TotalFeet:         weld.Feet(total),
		RoundedInches:     weld.RoundToStep(total, n.RoundTo),
		RoundedFeet:       weld.RoundToStep(weld.Feet(total), n.RoundTo),
		Warnings:          warnings,
		Explanation:       b.String(),
	}
}

func componentLabel(c ComponentResult) string {
	name := c.Name
	if name == "" {
		name = "component"
	}
	if c.JointType != "" {
		return fmt.Sprintf("%s (%s)", name, c.JointType)
	}
	return name
}
