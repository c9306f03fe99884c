package total

import (
	"math"
	"testing"

	ductseam "Weldline/internal/calc/ductseam"
	goredelbow "Weldline/internal/calc/goredelbow"
	pipeweld "Weldline/internal/calc/pipeweld"
	weld "Weldline/internal/calc/weld"
)

func TestCalculate_SumsAllCalculators(t *testing.T) {
	in := Input{
		DuctSeams: []ductseam.Input{
			{SeamType: ductseam.SeamCustom, SeamCount: 1, CustomLengthIn: 100,
				Globals: weld.Globals{EffectiveFactor: 1, Passes: 1}},
		},
		GoredElbows: []goredelbow.Input{
			{OutsideDiameterIn: 12,
				Straight: goredelbow.StraightDuct{ButtJoints: 1},
				Globals:  weld.Globals{EffectiveFactor: 1, Passes: 1}},
		},
		PipeWelds: []pipeweld.Input{
			{NominalSize: "6", ButtJoints: 2,
				Globals: weld.Globals{EffectiveFactor: 1, Passes: 1}},
		},
	}
	res := Calculate(in)

	want := 100 + math.Pi*12 + math.Pi*6.625*2
	if math.Abs(res.TotalInches-want) > 1e-6 {
		t.Fatalf("totalInches = %v, want %v", res.TotalInches, want)
	}
	if math.Abs(res.TotalFeet-want/12) > 1e-6 {
		t.Fatalf("totalFeet = %v, want %v", res.TotalFeet, want/12)
	}
	if len(res.DuctSeams) != 1 || len(res.GoredElbows) != 1 || len(res.PipeWelds) != 1 {
		t.Fatal("expected one result per input row")
	}
}

func TestCalculate_EmptyInputIsZero(t *testing.T) {
	res := Calculate(Input{})
	if res.TotalInches != 0 || res.TotalFeet != 0 {
		t.Fatalf("empty input total = %v in, %v ft, want 0", res.TotalInches, res.TotalFeet)
	}
}
