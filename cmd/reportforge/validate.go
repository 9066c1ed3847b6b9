package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/logging"
	"github.com/reportforge/reportforge/pkg/report"
	"github.com/reportforge/reportforge/pkg/ui"
)

func runValidate() {
	flags := flag.NewFlagSet("validate", flag.ExitOnError)
	output := flags.String("output", "", "Artifacts directory")
	seed := flags.Int64("seed", 0, "Simulation seed (0 seeds from the clock)")
	stylePath := flags.String("style", "", "Style config YAML file")
	silent := flags.Bool("silent", false, "Suppress banner and progress output")
	noColor := flags.Bool("no-color", false, "Disable colored output")
	verbose := flags.Bool("verbose", false, "Enable debug logging")
	logJSON := flags.Bool("log-json", false, "Emit structured JSON logs")
	flags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	style := loadStyle(*stylePath)

	ui.PrintBanner()
	ui.PrintConfigLine("Output", report.ResolveOutputDir(*output))
	if *seed != 0 {
		ui.PrintConfigLine("Seed", fmt.Sprintf("%d", *seed))
	}
	if *stylePath != "" {
		ui.PrintConfigLine("Style", *stylePath)
	}
	ui.PrintDivider()

	logger := logging.New(logging.Options{JSON: *logJSON, Verbose: *verbose})

	ui.PrintInfo("Synthesizing model validation run...")
	result, err := report.GenerateValidationReport(context.Background(), report.ValidationOptions{
		OutputDir: *output,
		Style:     style,
		Seed:      *seed,
		Logger:    logger,
	})
	if err != nil {
		exitInternal("cannot write report: %v", err)
	}

	printValidationSummary(result)
	os.Exit(defaults.ExitClean)
}

func printValidationSummary(result report.ValidationReport) {
	p := message.NewPrinter(language.English)

	ui.PrintSection("Validation Summary")
	ui.PrintConfigLine("Simulations", p.Sprintf("%d", result.Result.NumSimulations))
	ui.PrintConfigLine("Mean Price", fmt.Sprintf("$%.2f", result.Summary.Mean))
	ui.PrintConfigLine("95% CI", fmt.Sprintf("[$%.2f, $%.2f]", result.Summary.CILower, result.Summary.CIUpper))
	ui.PrintConfigLine("VaR (95%)", fmt.Sprintf("$%.2f", result.Summary.VaR95))
	ui.PrintConfigLine("RMSE", fmt.Sprintf("%.4f", result.Result.Validation.RMSE))
	ui.PrintConfigLine("R-Squared", fmt.Sprintf("%.4f", result.Result.Validation.RSquared))

	if result.Passed {
		ui.PrintSuccess("Model validation " + ui.PassStyle.Render("PASSED"))
	} else {
		ui.PrintWarning("Model validation " + ui.FailStyle.Render("REVIEW REQUIRED"))
	}
	ui.PrintSuccess("Report written to " + result.Path)
}
