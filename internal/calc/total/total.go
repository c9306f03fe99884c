// Package total runs any mix of the three calculators over their input lists
// and sums the outputs into one project-wide weld total. Summing is plain
// addition of total inches; each calculator keeps its own parameters.
package total

import (
	ductseam "Weldline/internal/calc/ductseam"
	goredelbow "Weldline/internal/calc/goredelbow"
	pipeweld "Weldline/internal/calc/pipeweld"
	weld "Weldline/internal/calc/weld"
)

type Input struct {
	DuctSeams   []ductseam.Input   `json:"duct_seams"`
	GoredElbows []goredelbow.Input `json:"gored_elbows"`
	PipeWelds   []pipeweld.Input   `json:"pipe_welds"`
}

type Result struct {
	DuctSeams   []ductseam.Result   `json:"duct_seams"`
	GoredElbows []goredelbow.Result `json:"gored_elbows"`
	PipeWelds   []pipeweld.Result   `json:"pipe_welds"`
	TotalInches float64             `json:"total_inches"`
	TotalFeet   float64             `json:"total_feet"`
}

func Calculate(in Input) Result {
	out := Result{
		DuctSeams:   make([]ductseam.Result, 0, len(in.DuctSeams)),
		GoredElbows: make([]goredelbow.Result, 0, len(in.GoredElbows)),
		PipeWelds:   make([]pipeweld.Result, 0, len(in.PipeWelds)),
	}
	for _, item := range in.DuctSeams {
		res := ductseam.Calculate(item)
		out.DuctSeams = append(out.DuctSeams, res)
		out.TotalInches += res.TotalInches
	}
	for _, item := range in.GoredElbows {
		res := goredelbow.Calculate(item)
		out.GoredElbows = append(out.GoredElbows, res)
		out.TotalInches += res.TotalInches
	}
	for _, item := range in.PipeWelds {
		res := pipeweld.Calculate(item)
		out.PipeWelds = append(out.PipeWelds, res)
		out.TotalInches += res.TotalInches
	}
	out.TotalFeet = weld.Feet(out.TotalInches)
	return out
}
