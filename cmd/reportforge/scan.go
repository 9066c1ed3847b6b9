package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/finding"
	"github.com/reportforge/reportforge/pkg/logging"
	"github.com/reportforge/reportforge/pkg/report"
	"github.com/reportforge/reportforge/pkg/ui"
)

func runScan() {
	flags := flag.NewFlagSet("scan", flag.ExitOnError)
	target := flags.String("target", defaults.ScanTargetDir, "Directory to scan")
	output := flags.String("output", "", "Artifacts directory (default: $"+defaults.EnvArtifactsDir+", then "+defaults.ArtifactsDir+")")
	stylePath := flags.String("style", "", "Style config YAML file")
	timeout := flags.Duration("timeout", defaults.ScanTimeout, "Scanner timeout")
	semgrep := flags.String("semgrep", "", "Semgrep executable override")
	silent := flags.Bool("silent", false, "Suppress banner and progress output")
	noColor := flags.Bool("no-color", false, "Disable colored output")
	verbose := flags.Bool("verbose", false, "Enable debug logging")
	logJSON := flags.Bool("log-json", false, "Emit structured JSON logs")
	flags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	style := loadStyle(*stylePath)

	if info, err := os.Stat(*target); err != nil || !info.IsDir() {
		exitUsage(fmt.Sprintf("target %q is not a readable directory", *target),
			"reportforge scan -target <dir>")
	}

	ui.PrintBanner()
	ui.PrintConfigLine("Target", *target)
	ui.PrintConfigLine("Output", report.ResolveOutputDir(*output))
	ui.PrintConfigLine("Timeout", timeout.String())
	if *stylePath != "" {
		ui.PrintConfigLine("Style", *stylePath)
	}
	ui.PrintDivider()

	logger := logging.New(logging.Options{JSON: *logJSON, Verbose: *verbose})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintInfo("Running static analysis scan...")
	start := time.Now()
	result, err := report.GenerateScanReport(ctx, report.ScanOptions{
		Target:        *target,
		OutputDir:     *output,
		Style:         style,
		SemgrepBinary: *semgrep,
		Timeout:       *timeout,
		Logger:        logger,
	})
	if err != nil {
		exitInternal("cannot write report: %v", err)
	}

	printScanSummary(result, time.Since(start))
	os.Exit(result.Status.ExitCode())
}

func printScanSummary(result report.ScanReport, elapsed time.Duration) {
	buckets := finding.Categorize(result.Outcome.Findings)

	ui.PrintSection("Scan Summary")
	for _, sev := range finding.Severities() {
		if n := buckets.Count(sev); n > 0 {
			ui.PrintSeverityCount(sev.String(), n)
		}
	}
	for _, msg := range result.Outcome.Errors {
		ui.PrintWarning(msg)
	}

	if result.Status == finding.StatusClean {
		ui.PrintSuccess(closingLine(result.Status, buckets))
	} else {
		ui.PrintWarning(closingLine(result.Status, buckets))
	}

	ui.PrintInfo(fmt.Sprintf("Completed in %s", elapsed.Round(time.Millisecond)))
	ui.PrintSuccess("Report written to " + result.Path)

	status := result.Status.String()
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		ui.ConfigLabelStyle.Render("Status:"),
		ui.StatusStyle(status).Render(status),
	)
}

// closingLine is the final verdict line of the scan summary, naming the
// highest severity present.
func closingLine(status finding.Status, buckets finding.Buckets) string {
	switch status {
	case finding.StatusCritical:
		return fmt.Sprintf("Found %d CRITICAL severity issues", buckets.Count(finding.Critical))
	case finding.StatusHigh:
		return fmt.Sprintf("Found %d HIGH severity issues", buckets.Count(finding.High))
	default:
		return "No critical or high severity issues found"
	}
}

// loadStyle resolves the -style flag; a broken style file is a usage
// error, not something to silently default away.
func loadStyle(path string) *report.StyleConfig {
	if path == "" {
		return nil
	}
	style, err := report.LoadStyle(path)
	if err != nil {
		exitUsage(fmt.Sprintf("style config: %v", err), "reportforge <command> -style <file.yaml>")
	}
	return style
}
