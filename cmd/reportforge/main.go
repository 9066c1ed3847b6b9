// Command reportforge generates security scan and model validation
// reports into the artifacts directory.
package main

import (
	"fmt"
	"os"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/ui"
)

func printUsage() {
	ui.PrintBanner()

	fmt.Fprintln(os.Stderr, ui.SectionStyle.Render("USAGE"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  reportforge <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, ui.SectionStyle.Render("COMMANDS"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "    %s  Run the static-analysis scanner and write the findings PDF\n", ui.ConfigValueStyle.Render("scan    "))
	fmt.Fprintf(os.Stderr, "    %s  Synthesize a model validation run and write the HTML report\n", ui.ConfigValueStyle.Render("validate"))
	fmt.Fprintf(os.Stderr, "    %s  Print version information\n", ui.ConfigValueStyle.Render("version "))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, ui.SectionStyle.Render("EXAMPLES"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  reportforge scan -target ./src")
	fmt.Fprintln(os.Stderr, "  reportforge validate -seed 42 -output ./artifacts")
	fmt.Fprintln(os.Stderr)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(defaults.ExitUsageError)
	}

	switch os.Args[1] {
	case "scan":
		runScan()
	case "validate":
		runValidate()
	case "-v", "--version", "version":
		fmt.Printf("reportforge v%s (%s, built %s)\n", ui.Version, ui.Commit, ui.BuildDate)
		os.Exit(defaults.ExitClean)
	case "-h", "--help", "help":
		printUsage()
		os.Exit(defaults.ExitClean)
	default:
		ui.PrintError(fmt.Sprintf("unknown command %q", os.Args[1]))
		printUsage()
		os.Exit(defaults.ExitUsageError)
	}
}
