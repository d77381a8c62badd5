package main

import (
	"encoding/json"
	"fmt"
	"os"

	"coilmap/app"
	"coilmap/domain/detect"
	"coilmap/domain/wiring"
	"coilmap/internal"
	"coilmap/models"
)

const usage = `Usage: coilmap-cli <command> [args]

Commands:
  analyze <input.json>   Run the full pickup analysis on a measurement file
  detect <matrix.json>   Discover coil pairs from a resistance matrix file
  guide <mode>           Print the soldering guide for a wiring variant
  presets                List known manufacturer color presets
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	logger := internal.NewLogger(internal.LogLevelWarn)
	analysis := app.NewAnalysisService(logger)

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(analysis, os.Args[2:])
	case "detect":
		err = runDetect(analysis, os.Args[2:])
	case "guide":
		err = runGuide(os.Args[2:])
	case "presets":
		err = printJSON(wiring.ColorPresets())
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAnalyze(analysis *app.AnalysisService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("analyze needs exactly one input file")
	}
	var input models.PickupInput
	if err := readJSONFile(args[0], &input); err != nil {
		return err
	}
	result, err := analysis.AnalyzePickup(input)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runDetect(analysis *app.AnalysisService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("detect needs exactly one matrix file")
	}
	var measurements detect.Measurements
	if err := readJSONFile(args[0], &measurements); err != nil {
		return err
	}
	result, err := analysis.DetectLayout(measurements, nil)
	if err != nil {
		return err
	}
	if err := printJSON(result); err != nil {
		return err
	}
	// The ASCII diagram reads better unescaped
	fmt.Println()
	fmt.Println(result.Plan.Diagram)
	return nil
}

func runGuide(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("guide needs a wiring variant: series, parallel, slug_only or screw_only")
	}
	text, err := app.NewSolderingGuide().ForMode(wiring.WiringMode(args[0]))
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
