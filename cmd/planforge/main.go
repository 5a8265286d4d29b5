package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "model3d":
		if err := model3d(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := check(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "materials":
		if err := materialsCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "schedule":
		if err := scheduleCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("planforge version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planforge - parametric architectural design generator

Usage:
  planforge <command> [options]

Commands:
  generate   Generate a floor plan bundle from requirements
  model3d    Extrude a generated plan into a 3D model with analysis
  check      Check building code compliance for requirements
  materials  Optimize or compare material selections
  schedule   Export the structural element schedule (CSV/JSONL)
  help       Show this help message
  version    Show version information

Examples:
  # Generate a floor plan and write the artifact
  planforge generate requirements.json --output artifact.json

  # Generate with a specific optimization objective
  planforge generate requirements.json --objective sustainability

  # Extrude to 3D and run structural analysis
  planforge model3d requirements.json --height 10

  # Compliance report only
  planforge check requirements.json

  # Material schedule as CSV
  planforge schedule requirements.json --format csv --output schedule.csv

For command-specific help, run:
  planforge <command> --help`)
}
