package document

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/metrics"
)

// ValidationCharts bundles the three chart geometries of the
// validation report, synthesized once from the simulation result.
type ValidationCharts struct {
	Convergence   chart.Convergence
	Histogram     chart.Histogram
	Sensitivities chart.SensitivityBars
}

// enPrinter formats integers with English-locale thousands separators
// for the narrative simulation counts.
var enPrinter = message.NewPrinter(language.English)

// AssembleValidation composes a simulation result and its derived
// summary into the validation report structure. Section order is fixed:
// executive summary, statistical analysis, risk metrics, sensitivities,
// validation, methodology. Purely structural; no I/O.
func AssembleValidation(result metrics.SimulationResult, summary metrics.Summary, charts ValidationCharts, meta Meta) *Document {
	doc := &Document{Meta: meta}

	badgeTone := "pass"
	if !result.Validation.Passed() {
		badgeTone = "fail"
	}

	doc.append(
		Title{
			Text:      "Monte Carlo Validation Report",
			Badge:     result.Validation.Status(),
			BadgeTone: badgeTone,
		},
		Subtitle{Text: fmt.Sprintf(
			"Generated: %s UTC | Model Version: %s | Simulations: %s",
			meta.GeneratedAt.UTC().Format(timestampLayout),
			defaults.ModelVersion,
			enPrinter.Sprintf("%d", result.NumSimulations),
		)},
	)

	appendExecutiveSummary(doc, result, summary)
	appendStatisticalAnalysis(doc, result, summary, charts)
	appendRiskMetrics(doc, summary)
	appendSensitivities(doc, result.Sensitivities, charts)
	appendValidationMetrics(doc, result)
	appendMethodology(doc, result)

	return doc
}

func appendExecutiveSummary(doc *Document, result metrics.SimulationResult, summary metrics.Summary) {
	doc.append(
		SectionHeading{Text: "Executive Summary"},
		Note{Text: enPrinter.Sprintf(
			"The Monte Carlo pricing model completed %d simulation paths. "+
				"The estimator achieved a convergence rate of %.2f%% with statistical "+
				"significance at the 95%% confidence level.",
			result.NumSimulations, result.ConvergenceRate*100,
		)},
		SummaryTable{
			Style:  TableCards,
			Header: []string{"Metric", "Value", "Detail"},
			Rows: [][]string{
				{"Mean Price", fmt.Sprintf("$%.2f", summary.Mean), fmt.Sprintf("± $%.2f std dev", summary.StdDev)},
				{"Convergence", fmt.Sprintf("%.2f%%", result.ConvergenceRate*100), enPrinter.Sprintf("%d iterations", result.NumSimulations)},
				{"R² Score", fmt.Sprintf("%.4f", result.Validation.RSquared), "Model fit quality"},
				{"RMSE", fmt.Sprintf("%.4f", result.Validation.RMSE), "Root mean square error"},
			},
		},
	)
}

func appendStatisticalAnalysis(doc *Document, result metrics.SimulationResult, summary metrics.Summary, charts ValidationCharts) {
	doc.append(
		SectionHeading{Text: "Statistical Analysis"},
		Chart{Spec: ChartSpec{Convergence: &charts.Convergence}, Caption: "Estimator Convergence"},
		Note{Text: enPrinter.Sprintf(
			"The running estimate stabilized within the target band after "+
				"approximately %d iterations and remained inside it for the rest of the run.",
			result.Methodology.ConvergenceIterations,
		)},
		Chart{Spec: ChartSpec{Histogram: &charts.Histogram}, Caption: "Price Distribution"},
		Note{
			Text:  fmt.Sprintf("95%% Confidence Interval: $%.2f — $%.2f", summary.CILower, summary.CIUpper),
			Style: NoteHighlight,
		},
		SummaryTable{
			Header: []string{"Statistic", "Value", "Interpretation"},
			Rows: [][]string{
				{"Mean (μ)", fmt.Sprintf("%.4f", summary.Mean), "Expected option price"},
				{"Std Dev (σ)", fmt.Sprintf("%.4f", summary.StdDev), "Price dispersion across paths"},
				{"Lower Bound", fmt.Sprintf("%.4f", summary.CILower), "95% CI lower limit"},
				{"Upper Bound", fmt.Sprintf("%.4f", summary.CIUpper), "95% CI upper limit"},
			},
		},
	)
}

func appendRiskMetrics(doc *Document, summary metrics.Summary) {
	stdDevStatus := "PASS"
	if summary.StdDev >= defaults.StdDevThreshold {
		stdDevStatus = "REVIEW"
	}

	doc.append(
		SectionHeading{Text: "Risk Metrics"},
		SummaryTable{
			Style:  TableCards,
			Header: []string{"Metric", "Value", "Detail"},
			Rows: [][]string{
				{"VaR (95%)", fmt.Sprintf("$%.2f", summary.VaR95), "Value at Risk"},
				{"CVaR (95%)", fmt.Sprintf("$%.2f", summary.CVaR95), "Expected tail loss"},
			},
		},
		SummaryTable{
			Header: []string{"Metric", "Value", "Threshold", "Status"},
			Rows: [][]string{
				{"Standard Deviation", fmt.Sprintf("%.4f", summary.StdDev), fmt.Sprintf("< %.1f", defaults.StdDevThreshold), stdDevStatus},
				{"VaR (95%)", fmt.Sprintf("%.4f", summary.VaR95), "—", "Monitoring"},
				{"CVaR (95%)", fmt.Sprintf("%.4f", summary.CVaR95), "—", "Monitoring"},
			},
		},
	)
}

func appendSensitivities(doc *Document, s metrics.Sensitivities, charts ValidationCharts) {
	deltaImpact := "Price falls as the underlying rises"
	if s.Delta >= 0 {
		deltaImpact = "Price rises with the underlying"
	}
	gammaImpact := "Moderate curvature"
	if s.Gamma > 0.02 {
		gammaImpact = "High curvature"
	}
	vegaImpact := "Moderate volatility impact"
	if s.Vega > 0.2 || s.Vega < -0.2 {
		vegaImpact = "Significant volatility impact"
	}
	rhoImpact := "Falls as rates rise"
	if s.Rho >= 0 {
		rhoImpact = "Rises with interest rates"
	}

	doc.append(
		SectionHeading{Text: "Option Greeks & Sensitivities"},
		Chart{Spec: ChartSpec{Sensitivities: &charts.Sensitivities}, Caption: "Sensitivity Magnitudes"},
		SummaryTable{
			Header: []string{"Greek", "Symbol", "Value", "Impact"},
			Rows: [][]string{
				{"Delta", "Δ", fmt.Sprintf("%.4f", s.Delta), deltaImpact},
				{"Gamma", "Γ", fmt.Sprintf("%.4f", s.Gamma), gammaImpact},
				{"Vega", "ν", fmt.Sprintf("%.4f", s.Vega), vegaImpact},
				{"Theta", "Θ", fmt.Sprintf("%.4f", s.Theta), fmt.Sprintf("$%.4f per day time decay", s.Theta)},
				{"Rho", "ρ", fmt.Sprintf("%.4f", s.Rho), rhoImpact},
			},
		},
	)
}

func appendValidationMetrics(doc *Document, result metrics.SimulationResult) {
	v := result.Validation

	rows := [][]string{
		{"R² Score", fmt.Sprintf("%.4f", v.RSquared), fmt.Sprintf("> %.2f", defaults.RSquaredThreshold), passMark(v.RSquared > defaults.RSquaredThreshold)},
		{"RMSE", fmt.Sprintf("%.4f", v.RMSE), fmt.Sprintf("< %.2f", defaults.RMSEThreshold), passMark(v.RMSE < defaults.RMSEThreshold)},
		{"MAE", fmt.Sprintf("%.4f", v.MAE), fmt.Sprintf("< %.3f", defaults.MAEThreshold), passMark(v.MAE < defaults.MAEThreshold)},
		{"Convergence Rate", fmt.Sprintf("%.2f%%", result.ConvergenceRate*100), fmt.Sprintf("> %.1f%%", defaults.ConvergenceThreshold*100), passMark(result.ConvergenceRate > defaults.ConvergenceThreshold)},
	}

	summaryText := "Validation Summary: all fit metrics cleared their thresholds. " +
		"The model is approved for production pricing."
	if !v.Passed() {
		summaryText = "Validation Summary: one or more fit metrics missed their thresholds. " +
			"Manual review is required before the model prices production trades."
	}

	doc.append(
		SectionHeading{Text: "Model Validation Metrics"},
		SummaryTable{
			Header: []string{"Metric", "Value", "Threshold", "Status"},
			Rows:   rows,
		},
		Note{Text: summaryText, Style: NoteHighlight},
	)
}

func appendMethodology(doc *Document, result metrics.SimulationResult) {
	m := result.Methodology
	doc.append(
		SectionHeading{Text: "Methodology"},
		SummaryTable{
			Caption: "Simulation Parameters",
			Header:  []string{"Parameter", "Value"},
			Rows: [][]string{
				{"Simulation Paths", enPrinter.Sprintf("%d", result.NumSimulations)},
				{"Random Source", "Mersenne Twister (MT19937)"},
				{"Price Process", "Geometric Brownian Motion (GBM)"},
				{"Time Horizon", fmt.Sprintf("%d days", m.TimeHorizonDays)},
				{"Time Steps", fmt.Sprintf("%d", m.TimeSteps)},
				{"Confidence Level", "95%"},
			},
		},
		SummaryTable{
			Caption: "Statistical Tests",
			Header:  []string{"Test", "Value"},
			Rows: [][]string{
				{"Shapiro-Wilk (normality)", fmt.Sprintf("p = %.3f", m.ShapiroWilkP)},
				{"Durbin-Watson (autocorrelation)", fmt.Sprintf("%.3f", m.DurbinWatson)},
				{"Breusch-Pagan (heteroscedasticity)", fmt.Sprintf("p = %.3f", m.BreuschPaganP)},
			},
		},
	)
}

// passMark renders a table pass/fail cell.
func passMark(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
