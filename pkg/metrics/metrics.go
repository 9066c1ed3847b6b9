// Package metrics derives descriptive statistics, risk measures, and
// validation scores from a numeric sample set. All stochastic functions
// take an explicit *rand.Rand; nothing in this package touches the
// global random source, so every computation is reproducible under a
// fixed seed.
//
// Usage:
//
//	summary, err := metrics.Summarize(result.Prices)
//	traj := metrics.Trajectory(rng, summary.Mean, defaults.TrajectoryIterations)
package metrics

import (
	"errors"
	"math"

	"github.com/reportforge/reportforge/pkg/defaults"
)

// ErrEmptySampleSet indicates a summary was requested over zero samples.
// Mean and variance are undefined, so there is no degraded result to
// return; callers must treat this as fatal.
var ErrEmptySampleSet = errors.New("metrics: empty sample set")

// Summary holds the scalars derived from one sample set. Computed once
// per run and never mutated.
type Summary struct {
	N       int     `json:"n"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
	VaR95   float64 `json:"var_95"`
	CVaR95  float64 `json:"cvar_95"`
}

// Summarize computes the summary statistics for samples. The standard
// deviation is the population form (divide by n, not n-1), matching the
// simulation it describes: the draws are the whole population of this
// run, not a sample from a larger one.
//
// Invariants on the result: CILower <= Mean <= CIUpper, and
// CVaR95 <= VaR95 (the CVaR multiplier sits deeper in the tail).
func Summarize(samples []float64) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, ErrEmptySampleSet
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, v := range samples {
		d := v - mean
		sqDiff += d * d
	}
	stdDev := math.Sqrt(sqDiff / float64(n))

	margin := defaults.ZScore95 * stdDev / math.Sqrt(float64(n))

	return Summary{
		N:       n,
		Mean:    mean,
		StdDev:  stdDev,
		CILower: mean - margin,
		CIUpper: mean + margin,
		VaR95:   mean - defaults.VaRMultiplier*stdDev,
		CVaR95:  mean - defaults.CVaRMultiplier*stdDev,
	}, nil
}

// Sensitivities holds the five first- and second-order price
// sensitivities of the model (the option greeks).
type Sensitivities struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// Validation holds the model fit scores the pass/fail gate reads.
type Validation struct {
	RMSE     float64 `json:"rmse"`
	MAE      float64 `json:"mae"`
	RSquared float64 `json:"r_squared"`
}

// Passed reports whether the model clears both validation gates:
// RMSE below the error threshold and R-squared above the fit threshold.
// A pure function of the two scalars; MAE is reported but not gated.
func (v Validation) Passed() bool {
	return v.RMSE < defaults.RMSEThreshold && v.RSquared > defaults.RSquaredThreshold
}

// Status returns the badge text for the validation outcome.
func (v Validation) Status() string {
	if v.Passed() {
		return "PASSED"
	}
	return "REVIEW REQUIRED"
}
