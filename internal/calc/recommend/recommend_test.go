package recommend

import (
	"math"
	"testing"
)

func TestFilletSize(t *testing.T) {
	res, err := FilletSize(FilletInput{ShearKips: 30, WeldLengthIn: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 30.0 / (0.707 * 10 * 21)
	if math.Abs(res.RequiredLegIn-want) > 1e-9 {
		t.Fatalf("leg = %v, want %v", res.RequiredLegIn, want)
	}
}

func TestFilletSize_MinimumLeg(t *testing.T) {
	res, err := FilletSize(FilletInput{ShearKips: 0.1, WeldLengthIn: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RequiredLegIn != 0.125 {
		t.Fatalf("leg = %v, want minimum 0.125", res.RequiredLegIn)
	}
}

func TestFilletSize_InvalidInput(t *testing.T) {
	if _, err := FilletSize(FilletInput{ShearKips: 0, WeldLengthIn: 10}); err == nil {
		t.Fatal("expected an error for zero shear")
	}
}
