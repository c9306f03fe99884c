package pipeweld

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Sizes serves the supported nominal sizes so a host can build its picker
// from the same table the calculator uses.
func (h *Handler) Sizes(w http.ResponseWriter, r *http.Request) {
	type size struct {
		NominalSize       string  `json:"nominal_size"`
		OutsideDiameterIn float64 `json:"outside_diameter_in"`
	}
	var out []size
	for _, nps := range Sizes() {
		od, _ := LookupOD(nps)
		out = append(out, size{NominalSize: nps, OutsideDiameterIn: od})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
