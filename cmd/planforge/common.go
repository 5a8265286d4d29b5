package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/planforge-xyz/go-planforge/catalog"
	"github.com/planforge-xyz/go-planforge/plan"
)

// consoleLogger builds the logger handed to the generation entry points, so
// caller warnings (e.g. an unknown building code) reach the terminal.
func consoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// loadRequirements reads a requirements JSON file.
func loadRequirements(filename string) (*plan.Requirements, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read requirements: %w", err)
	}
	var req plan.Requirements
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse requirements: %w", err)
	}
	return &req, nil
}

// loadCatalog resolves the catalog: a YAML file when given, else defaults.
func loadCatalog(filename string) (*catalog.Catalog, error) {
	if filename == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(filename)
}

// writeOrPrintJSON writes indented JSON to a file, or stdout when filename
// is empty.
func writeOrPrintJSON(v any, filename string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if filename != "" {
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Written to %s\n", filename)
		return nil
	}
	fmt.Println(string(data))
	return nil
}
