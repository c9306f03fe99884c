package ductseam

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	body := `{
		"seam_type": "circumferential",
		"seam_count": 2,
		"outside_diameter_in": 165,
		"globals": {"effective_factor": 1, "passes": 2, "round_to": 0.1}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/ductseam/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if math.Abs(res.RoundedInches-2073.5) > 1e-6 {
		t.Fatalf("roundedInches = %v, want 2073.5", res.RoundedInches)
	}
	if res.Explanation == "" {
		t.Fatal("expected a non-empty explanation")
	}
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/ductseam/calc", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
