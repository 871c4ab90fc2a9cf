// paste-calculator — solder paste volume calculator for Gerber layers.
//
// Parses the flash operations of a Gerber file into pad records, applies
// thickness overrides from a settings file or the command line, and reports
// per-pad and total paste volumes. Reports can be exported to Excel, CSV,
// PDF and the pad geometry to DXF.
//
// Build:
//   go build -o paste-calculator ./cmd/paste-calculator
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/paste-calculator/internal/export"
	"github.com/piwi3910/paste-calculator/internal/gerber"
	"github.com/piwi3910/paste-calculator/internal/project"
	"github.com/piwi3910/paste-calculator/internal/thickness"
	"github.com/piwi3910/paste-calculator/internal/volume"
)

func main() {
	var (
		settingsPath = flag.String("settings", "", "thickness settings file to load (JSON)")
		saveSettings = flag.String("save-settings", "", "write thickness settings to this file after applying edits")
		setSpec      = flag.String("set", "", "thickness override, e.g. 1,2,3:0.2 (pad ids : thickness)")
		xlsxPath     = flag.String("xlsx", "", "export the volume report to this .xlsx file")
		csvPath      = flag.String("csv", "", "export the volume report to this .csv file")
		pdfPath      = flag.String("pdf", "", "export the volume report to this .pdf file")
		dxfPath      = flag.String("dxf", "", "export the pad geometry to this .dxf file")
		verbose      = flag.Bool("v", false, "print every parser warning")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <gerber-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	result, err := gerber.ParseFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}

	fmt.Printf("%d pads, %d problem lines (%d lines read)\n",
		len(result.Pads), result.Problems(), result.LinesRead)
	if *verbose {
		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}

	manager := thickness.NewManager()
	if *settingsPath != "" {
		if err := project.LoadSettings(*settingsPath, manager); err != nil {
			log.Fatalf("cannot load settings: %v", err)
		}
	}

	if *setSpec != "" {
		ids, t, err := parseSetSpec(*setSpec)
		if err != nil {
			log.Fatalf("bad -set value: %v", err)
		}
		name := manager.SetThickness(ids, t)
		fmt.Printf("applied thickness %g to %d pads (group %s)\n", t, len(ids), name)
	}

	calc := volume.NewCalculator(manager)
	total, err := calc.TotalVolume(result.Pads)
	if err != nil {
		log.Fatalf("volume calculation failed: %v", err)
	}
	fmt.Printf("total paste volume: %.6f\n", total)

	if *saveSettings != "" {
		if err := project.SaveSettings(*saveSettings, manager); err != nil {
			log.Fatalf("cannot save settings: %v", err)
		}
	}
	if *xlsxPath != "" {
		if err := export.ExportExcel(*xlsxPath, result.Pads, calc); err != nil {
			log.Fatalf("excel export failed: %v", err)
		}
	}
	if *csvPath != "" {
		if err := export.ExportCSV(*csvPath, result.Pads, calc); err != nil {
			log.Fatalf("csv export failed: %v", err)
		}
	}
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, result.Pads, calc); err != nil {
			log.Fatalf("pdf export failed: %v", err)
		}
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, result.Pads); err != nil {
			log.Fatalf("dxf export failed: %v", err)
		}
	}
}

// parseSetSpec parses "1,2,3:0.2" into pad ids and a thickness value.
func parseSetSpec(spec string) ([]int, float64, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, 0, fmt.Errorf("expected <ids>:<thickness>, got %q", spec)
	}
	var ids []int
	for _, s := range strings.Split(parts[0], ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, 0, fmt.Errorf("bad pad id %q", s)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, 0, fmt.Errorf("no pad ids in %q", spec)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, 0, fmt.Errorf("bad thickness %q", parts[1])
	}
	if t < 0 {
		return nil, 0, fmt.Errorf("thickness must be non-negative, got %g", t)
	}
	return ids, t, nil
}
