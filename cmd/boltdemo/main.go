// Command boltdemo runs a small end-to-end connection design: capacity
// checks for one bolt group, the three anchor bolt solid variants, plan
// and elevation drawings, and the PDF/XLSX design output.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gosteel/boltcad"
	"github.com/gosteel/boltcad/capacity"
	"github.com/gosteel/boltcad/drawing"
	"github.com/gosteel/boltcad/kernel"
	_ "github.com/gosteel/boltcad/kernel/sdf"
	"github.com/gosteel/boltcad/report"
)

func main() {
	var (
		outDir   = flag.String("out", ".", "output directory")
		diameter = flag.Int("diameter", 20, "bolt diameter (mm)")
		count    = flag.Int("count", 4, "number of bolts")
		boltFu   = flag.Float64("bolt-fu", 400, "bolt ultimate tensile strength (MPa)")
		plateFu  = flag.Float64("plate-fu", 410, "plate ultimate tensile strength (MPa)")
		plateThk = flag.Float64("plate-thk", 10, "plate thickness (mm)")
		fy       = flag.Float64("fy", 250, "steel yield strength (MPa)")
		kernName = flag.String("kernel", kernel.KernelSDF, "geometry kernel")
	)
	flag.Parse()

	clearance, err := capacity.HoleClearance(capacity.HoleStandard, *diameter, nil)
	if err != nil {
		log.Fatalf("hole clearance: %v", err)
	}
	holeDia := float64(*diameter + clearance)

	dist, err := capacity.Spacing(*diameter, holeDia, 1.7, *plateThk, *fy)
	if err != nil {
		log.Fatalf("spacing: %v", err)
	}
	kb, err := capacity.KB(float64(dist.MinEndDistance), float64(dist.MinPitch), holeDia, *boltFu, *plateFu)
	if err != nil {
		log.Fatalf("k_b: %v", err)
	}
	shear, err := capacity.Shear(*diameter, *count, *boltFu)
	if err != nil {
		log.Fatalf("shear: %v", err)
	}
	bearing, err := capacity.Bearing(*diameter, *count, *plateThk, kb, *plateFu)
	if err != nil {
		log.Fatalf("bearing: %v", err)
	}
	log.Printf("M%d x%d: shear %.3f kN, bearing %.3f kN, k_b %.3f",
		*diameter, *count, shear, bearing, kb)

	// Plan view of the bolt group at minimum spacings.
	plan, err := drawing.BoltPattern(drawing.PatternSpec{
		Rows: 2, Cols: 2,
		Pitch: float64(dist.MinPitch), Gauge: float64(dist.MinGauge),
		EndDistance:  float64(dist.MinEndDistance),
		EdgeDistance: float64(dist.MinEdgeDistance),
		HoleDiameter: holeDia,
	})
	if err != nil {
		log.Fatalf("bolt pattern: %v", err)
	}
	if err := plan.SavePNG(filepath.Join(*outDir, "pattern.png")); err != nil {
		log.Fatalf("save pattern: %v", err)
	}

	// The three anchor bolt variants, placed in the canonical frame.
	k, err := kernel.Lookup(*kernName)
	if err != nil {
		log.Fatalf("kernel: %v", err)
	}
	dims := boltcad.Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8}
	origin := r3.Vec{}
	u := r3.Vec{X: 1}
	shaft := r3.Vec{Z: 1}

	var rows []report.ScheduleRow
	for i, v := range []boltcad.Variant{boltcad.VariantA, boltcad.VariantB, boltcad.VariantEndplate} {
		b, err := boltcad.NewBuilder(v, dims)
		if err != nil {
			log.Fatalf("variant %s: %v", v, err)
		}
		if err := b.Place(origin, u, shaft); err != nil {
			log.Fatalf("place %s: %v", v, err)
		}
		solid, err := b.CreateModel(k)
		if err != nil {
			log.Fatalf("model %s: %v", v, err)
		}
		size := solid.Bounds().Size()
		log.Printf("variant %s: fused solid %.0fx%.0fx%.0f mm", v, size.X, size.Y, size.Z)

		elev, err := drawing.AnchorElevation(b, 0)
		if err != nil {
			log.Fatalf("elevation %s: %v", v, err)
		}
		if err := elev.SavePNG(filepath.Join(*outDir, "anchor_"+v.String()+".png")); err != nil {
			log.Fatalf("save elevation %s: %v", v, err)
		}

		rows = append(rows, report.ScheduleRow{
			Mark:     string(rune('A' + i)),
			Variant:  v,
			Diameter: *diameter,
			Dims:     dims,
			Count:    *count,
		})
	}

	pdfFile, err := os.Create(filepath.Join(*outDir, "report.pdf"))
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	defer pdfFile.Close()
	err = report.WritePDF(pdfFile, report.Summary{
		Project:         "boltdemo",
		Designer:        "boltcad",
		BoltDiameter:    *diameter,
		BoltGrade:       "4.6",
		BoltCount:       *count,
		BoltFu:          *boltFu,
		PlateFu:         *plateFu,
		PlateThickness:  *plateThk,
		HoleType:        capacity.HoleStandard,
		ShearCapacity:   shear,
		BearingCapacity: bearing,
		HoleClearance:   clearance,
		KB:              kb,
		Distances:       dist,
	})
	if err != nil {
		log.Fatalf("report: %v", err)
	}

	xlsxFile, err := os.Create(filepath.Join(*outDir, "schedule.xlsx"))
	if err != nil {
		log.Fatalf("create schedule: %v", err)
	}
	defer xlsxFile.Close()
	if err := report.WriteSchedule(xlsxFile, rows); err != nil {
		log.Fatalf("schedule: %v", err)
	}

	log.Printf("wrote drawings, report.pdf and schedule.xlsx to %s", *outDir)
}
