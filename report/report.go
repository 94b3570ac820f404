// Package report writes connection design output: a one-page PDF design
// report and an XLSX anchor bolt schedule.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/gosteel/boltcad/capacity"
)

// Summary is the content of a bolt design report. Capacities come from
// package capacity; the caller assembles the value.
type Summary struct {
	Project  string
	Designer string
	Date     time.Time // zero value means today

	BoltDiameter   int     // mm
	BoltGrade      string  // e.g. "4.6"
	BoltCount      int
	BoltFu         float64 // MPa
	PlateFu        float64 // MPa
	PlateThickness float64 // mm
	HoleType       capacity.HoleType

	ShearCapacity   float64 // kN
	BearingCapacity float64 // kN
	HoleClearance   int     // mm
	KB              float64
	Distances       capacity.Distances

	Notes string
}

// WritePDF writes a one-page A4 design report to w.
func WritePDF(w io.Writer, s Summary) error {
	date := s.Date
	if date.IsZero() {
		date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Bolted Connection Design Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", s.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Designer: %s", s.Designer))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(95, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, value, "1", 1, "R", false, 0, "")
	}
	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
	}

	section("Bolt")
	row("Diameter", fmt.Sprintf("M%d", s.BoltDiameter))
	row("Grade", s.BoltGrade)
	row("Count", fmt.Sprintf("%d", s.BoltCount))
	row("Ultimate tensile strength fu", fmt.Sprintf("%.0f MPa", s.BoltFu))
	row("Hole type", s.HoleType.String())
	row("Hole clearance", fmt.Sprintf("%d mm", s.HoleClearance))
	pdf.Ln(4)

	section("Plate")
	row("Thickness", fmt.Sprintf("%.1f mm", s.PlateThickness))
	row("Ultimate tensile strength fu", fmt.Sprintf("%.0f MPa", s.PlateFu))
	pdf.Ln(4)

	section("Capacities (IS 800)")
	row("Factored shear capacity", fmt.Sprintf("%.3f kN", s.ShearCapacity))
	row("Factored bearing capacity", fmt.Sprintf("%.3f kN", s.BearingCapacity))
	row("Bearing factor k_b", fmt.Sprintf("%.3f", s.KB))
	pdf.Ln(4)

	section("Spacing limits")
	row("Minimum pitch / gauge", fmt.Sprintf("%d / %d mm", s.Distances.MinPitch, s.Distances.MinGauge))
	row("Minimum end / edge distance", fmt.Sprintf("%d / %d mm", s.Distances.MinEndDistance, s.Distances.MinEdgeDistance))
	row("Maximum spacing", fmt.Sprintf("%d mm", s.Distances.MaxSpacing))
	row("Maximum edge distance", fmt.Sprintf("%d mm", s.Distances.MaxEdgeDistance))

	if s.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, s.Notes, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: write pdf: %w", err)
	}
	return nil
}
