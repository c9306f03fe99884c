// Package report renders a weld summary PDF for the estimator: one labeled
// line per calculation plus the project total. The PDF is built entirely from
// the posted payload; nothing is persisted.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"
)

type Line struct {
	Label       string  `json:"label"`
	TotalInches float64 `json:"total_inches"`
	TotalFeet   float64 `json:"total_feet"`
	Explanation string  `json:"explanation"`
}

type Input struct {
	Project   string `json:"project"`
	Estimator string `json:"estimator"`
	Title     string `json:"title"`
	Lines     []Line `json:"lines"`
	Notes     string `json:"notes"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Weld Length Summary"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Estimator: %s", input.Estimator))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Inches", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "Feet", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var totalInches, totalFeet float64
	for _, line := range input.Lines {
		pdf.CellFormat(90, 7, line.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", line.TotalInches), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", line.TotalFeet), "1", 1, "R", false, 0, "")
		totalInches += line.TotalInches
		totalFeet += line.TotalFeet
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", totalInches), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", totalFeet), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range input.Lines {
		if line.Explanation == "" {
			continue
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", line.Label, line.Explanation), "", "L", false)
		pdf.Ln(1)
	}
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"weld-summary.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
