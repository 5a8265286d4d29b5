package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/planforge-xyz/go-planforge/layout"
	"github.com/planforge-xyz/go-planforge/schedule"
	"github.com/planforge-xyz/go-planforge/structural"
)

func scheduleCmd(args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	format := fs.String("format", "csv", "Export format: csv or jsonl")
	outputFile := fs.String("output", "", "Write the schedule to file (default stdout)")
	catalogFile := fs.String("catalog", "", "YAML catalog overriding the built-in materials and codes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: planforge schedule <requirements.json> [options]

Derive structural elements from the requirements and export them as a
construction schedule.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  planforge schedule requirements.json --format csv --output schedule.csv
  planforge schedule requirements.json --format jsonl
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("requirements file required")
	}

	req, err := loadRequirements(fs.Arg(0))
	if err != nil {
		return err
	}
	cat, err := loadCatalog(*catalogFile)
	if err != nil {
		return err
	}

	fp, err := layout.Synthesize(req)
	if err != nil {
		return err
	}
	entries := schedule.FromElements(structural.Generate(fp, req), cat.Materials)

	switch *format {
	case "csv":
		if *outputFile != "" {
			return schedule.WriteCSVFile(*outputFile, entries)
		}
		return schedule.WriteCSV(os.Stdout, entries)
	case "jsonl":
		if *outputFile != "" {
			return schedule.WriteJSONLFile(*outputFile, entries)
		}
		return schedule.WriteJSONL(os.Stdout, entries)
	default:
		return fmt.Errorf("unknown format %q (want csv or jsonl)", *format)
	}
}
