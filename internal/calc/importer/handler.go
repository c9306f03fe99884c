// Package importer accepts an xlsx takeoff sheet of pipe components and runs
// the pipe weld calculator over it. Expected columns after the header row:
// name, quantity, welds_per_item, joint_type. Line size and global parameters
// arrive as form fields next to the file.
package importer

import (
	"encoding/json"
	"net/http"
	"strconv"

	pipeweld "Weldline/internal/calc/pipeweld"
	weld "Weldline/internal/calc/weld"
	"github.com/xuri/excelize/v2"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type PipeImportResult struct {
	Rows    int             `json:"rows"`
	Skipped int             `json:"skipped"`
	Result  pipeweld.Result `json:"result"`
}

func (h *Handler) PipeWeld(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	input := pipeweld.Input{
		NominalSize:       r.FormValue("nominal_size"),
		OutsideDiameterIn: formFloat(r, "outside_diameter_in"),
		ButtJoints:        formFloat(r, "butt_joints"),
		Globals: weld.Globals{
			EffectiveFactor: formFloat(r, "effective_factor"),
			Passes:          formFloat(r, "passes"),
			RoundTo:         formFloat(r, "round_to"),
		},
	}

	var skipped int
	for i := 1; i < len(rows); i++ {
		spec, ok := parseComponentRow(rows[i])
		if !ok {
			skipped++
			continue
		}
		input.Components = append(input.Components, spec)
	}

	res := pipeweld.Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PipeImportResult{
		Rows:    len(input.Components),
		Skipped: skipped,
		Result:  res,
	})
}

// parseComponentRow reads name, quantity, welds_per_item, joint_type. The
// joint type column is optional.
func parseComponentRow(row []string) (pipeweld.ComponentSpec, bool) {
	if len(row) < 3 || row[0] == "" {
		return pipeweld.ComponentSpec{}, false
	}
	qty, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return pipeweld.ComponentSpec{}, false
	}
	welds, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return pipeweld.ComponentSpec{}, false
	}
	spec := pipeweld.ComponentSpec{Name: row[0], Quantity: qty, WeldsPerItem: welds}
	if len(row) > 3 {
		spec.JointType = row[3]
	}
	return spec, true
}

func formFloat(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(r.FormValue(key), 64)
	if err != nil {
		return 0
	}
	return v
}
