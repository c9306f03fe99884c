package ductseam

import (
	"math"
	"reflect"
	"testing"

	weld "Weldline/internal/calc/weld"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCalculate_CircumferentialExample(t *testing.T) {
	// 165 in OD stack, two girth seams, two passes.
	in := Input{
		SeamType:          SeamCircumferential,
		SeamCount:         2,
		OutsideDiameterIn: 165,
		Globals:           weld.Globals{EffectiveFactor: 1, Passes: 2},
	}
	res := Calculate(in)

	nearlyEqual(t, "perSeam", res.PerSeamIn, math.Pi*165*2)
	nearlyEqual(t, "totalInches", res.TotalInches, math.Pi*165*2*2)
	nearlyEqual(t, "totalFeet", res.TotalFeet, math.Pi*165*2*2/12)
	if res.TotalInches < 2073.4 || res.TotalInches > 2073.5 {
		t.Fatalf("totalInches = %v, want about 2073.45", res.TotalInches)
	}
}

func TestCalculate_ZeroLengthJobs(t *testing.T) {
	circ := Calculate(Input{
		SeamType:  SeamCircumferential,
		SeamCount: 5,
		Globals:   weld.Globals{EffectiveFactor: 1, Passes: 3},
	})
	nearlyEqual(t, "zero OD total", circ.TotalInches, 0)

	custom := Calculate(Input{
		SeamType:  SeamCustom,
		SeamCount: 5,
		Globals:   weld.Globals{EffectiveFactor: 1, Passes: 3},
	})
	nearlyEqual(t, "zero custom length total", custom.TotalInches, 0)
}

func TestCalculate_SeamCountFloor(t *testing.T) {
	res := Calculate(Input{
		SeamType:          SeamCircumferential,
		SeamCount:         0,
		OutsideDiameterIn: 10,
		Globals:           weld.Globals{EffectiveFactor: 1, Passes: 1},
	})
	if res.SeamCount != 1 {
		t.Fatalf("seamCount = %d, want 1", res.SeamCount)
	}
	nearlyEqual(t, "total equals one seam", res.TotalInches, math.Pi*10)
	if len(res.Warnings) == 0 {
		t.Fatal("expected a warning about the raised seam count")
	}
}

func TestCalculate_EffectiveFactorClamp(t *testing.T) {
	at1 := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 100,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 1}})
	above := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 100,
		Globals: weld.Globals{EffectiveFactor: 1.5, Passes: 1}})
	nearlyEqual(t, "clamped factor matches 1.0", above.TotalInches, at1.TotalInches)
}

func TestCalculate_PassFlooring(t *testing.T) {
	two := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 100,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 2}})
	twoSeven := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 100,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 2.7}})
	zero := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 100,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 0}})
	nearlyEqual(t, "2.7 passes floors to 2", twoSeven.TotalInches, two.TotalInches)
	nearlyEqual(t, "0 passes floors to 1", zero.TotalInches, 100)
}

func TestCalculate_StitchHalvesTotal(t *testing.T) {
	full := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 80,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 1}})
	half := Calculate(Input{SeamType: SeamCustom, SeamCount: 1, CustomLengthIn: 80,
		Globals: weld.Globals{
			EffectiveFactor: 1, Passes: 1,
			Stitch: weld.Stitch{Enabled: true, StitchLengthIn: 2, SkipLengthIn: 2},
		}})
	nearlyEqual(t, "half duty cycle", half.TotalInches, full.TotalInches/2)
}

func TestCalculate_UnknownSeamTypeDefaultsToCircumferential(t *testing.T) {
	res := Calculate(Input{SeamType: "girth", SeamCount: 1, OutsideDiameterIn: 12,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 1}})
	if res.SeamType != SeamCircumferential {
		t.Fatalf("seamType = %q, want circumferential", res.SeamType)
	}
	nearlyEqual(t, "uses circumference", res.TotalInches, math.Pi*12)
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Input{
		SeamType:          SeamCircumferential,
		SeamCount:         3,
		OutsideDiameterIn: 24,
		Globals: weld.Globals{
			EffectiveFactor: 0.9, Passes: 2, RoundTo: 0.01,
			Stitch: weld.Stitch{Enabled: true, StitchLengthIn: 3, SkipLengthIn: 1},
		},
	}
	a := Calculate(in)
	b := Calculate(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated calls differ:\n%+v\n%+v", a, b)
	}
}

func TestCalculate_RoundingIsPresentationOnly(t *testing.T) {
	res := Calculate(Input{
		SeamType: SeamCircumferential, SeamCount: 2, OutsideDiameterIn: 165,
		Globals: weld.Globals{EffectiveFactor: 1, Passes: 2, RoundTo: 0.1},
	})
	nearlyEqual(t, "roundedInches", res.RoundedInches, 2073.5)
	nearlyEqual(t, "roundedFeet", res.RoundedFeet, 172.8)
	// The raw totals keep the exact /12 relationship.
	nearlyEqual(t, "feet invariant", res.TotalFeet, res.TotalInches/12)
}
