package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/planforge-xyz/go-planforge/layout"
	"github.com/planforge-xyz/go-planforge/materials"
	"github.com/planforge-xyz/go-planforge/structural"
)

func materialsCmd(args []string) error {
	fs := flag.NewFlagSet("materials", flag.ExitOnError)
	objective := fs.String("objective", "", "Optimization objective: space, cost, sustainability, accessibility (default space)")
	compare := fs.Bool("compare", false, "Run all four objectives and rank the outcomes")
	outputFile := fs.String("output", "", "Write the JSON result to file")
	catalogFile := fs.String("catalog", "", "YAML catalog overriding the built-in materials and codes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: planforge materials <requirements.json> [options]

Derive structural elements from the requirements and optimize material
selection under an objective, or compare all objectives.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  planforge materials requirements.json --objective sustainability
  planforge materials requirements.json --compare
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
	elements := structural.Generate(fp, req)

	if *compare {
		comparison, err := materials.CompareObjectives(elements, cat.Materials)
		if err != nil {
			return err
		}
		return writeOrPrintJSON(comparison, *outputFile)
	}

	obj, err := materials.ParseObjective(*objective)
	if err != nil {
		return err
	}
	result, err := materials.Optimize(elements, obj, cat.Materials)
	if err != nil {
		return err
	}
	return writeOrPrintJSON(result, *outputFile)
}
