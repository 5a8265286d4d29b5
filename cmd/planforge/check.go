package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/planforge-xyz/go-planforge/compliance"
	"github.com/planforge-xyz/go-planforge/layout"
	"github.com/planforge-xyz/go-planforge/plan"
)

func check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	outputJSON := fs.Bool("json", false, "Output the report as JSON")
	outputFile := fs.String("output", "", "Write the JSON report to file")
	catalogFile := fs.String("catalog", "", "YAML catalog overriding the built-in materials and codes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: planforge check <requirements.json> [options]

Synthesize a floor plan from requirements and check it against the
requirements' building code rule table.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
An unknown building code yields an empty rule table and a trivially
compliant report; a warning is logged in that case.

Examples:
  planforge check requirements.json
  planforge check requirements.json --json --output report.json
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

	if req.BuildingCode != "" && !cat.Codes.Known(req.BuildingCode) {
		logger := consoleLogger()
		logger.Warn().
			Err(plan.ErrUnknownBuildingCode).
			Str("buildingCode", req.BuildingCode).
			Msg("compliance check degrades to no rules")
	}

	fp, err := layout.Synthesize(req)
	if err != nil {
		return err
	}
	report := compliance.Check(fp, req, cat.Codes)

	if *outputJSON || *outputFile != "" {
		if err := writeOrPrintJSON(report, *outputFile); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if report.Status != compliance.StatusCompliant {
		os.Exit(1)
	}
	return nil
}

func printReport(report *compliance.Report) {
	fmt.Println("=== Building Code Compliance ===")
	fmt.Printf("Standards: %v\n", report.Standards)
	fmt.Printf("Status: %s\n", report.Status)
	fmt.Println()

	if len(report.Issues) > 0 {
		fmt.Printf("Issues (%d):\n", len(report.Issues))
		for _, issue := range report.Issues {
			fmt.Printf("  ✗ %s\n", issue)
		}
		fmt.Println()
	}
	if len(report.Compliant) > 0 {
		fmt.Printf("Passed (%d):\n", len(report.Compliant))
		for _, passed := range report.Compliant {
			fmt.Printf("  ✓ %s\n", passed)
		}
	}
}
