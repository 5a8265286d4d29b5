package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/planforge-xyz/go-planforge/generator"
)

func generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	objective := fs.String("objective", "", "Optimization objective: space, cost, sustainability, accessibility (default space)")
	outputFile := fs.String("output", "", "Write the CAD artifact JSON to file")
	resultFile := fs.String("result", "", "Write the full result bundle JSON to file")
	catalogFile := fs.String("catalog", "", "YAML catalog overriding the built-in materials and codes")
	noStructural := fs.Bool("no-structural", false, "Omit structural elements from the result bundle")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: planforge generate <requirements.json> [options]

Synthesize a floor plan from requirements, derive structural elements,
check building code compliance and optimize materials.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  planforge generate requirements.json
  planforge generate requirements.json --objective cost --output artifact.json
  planforge generate requirements.json --result bundle.json
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

	opts := generator.DefaultOptions()
	opts.Optimization = *objective
	opts.IncludeStructural = !*noStructural
	opts.Catalog = cat
	opts.Logger = consoleLogger()

	result, err := generator.GenerateFloorPlan(req, opts)
	if err != nil {
		return err
	}

	if *resultFile != "" {
		if err := writeOrPrintJSON(result, *resultFile); err != nil {
			return err
		}
	}
	if *outputFile != "" || *resultFile == "" {
		if err := writeOrPrintJSON(result.CADArtifact, *outputFile); err != nil {
			return err
		}
	}

	fp := result.FloorPlan
	fmt.Fprintf(os.Stderr, "Generated %d rooms, efficiency %.1f%%, compliance: %s\n",
		len(fp.Rooms), fp.Efficiency, result.BuildingCodeCompliance.Status)
	return nil
}
