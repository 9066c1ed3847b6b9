package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.ErrorIs(t, err, ErrEmptySampleSet)

	_, err = Summarize([]float64{})
	require.ErrorIs(t, err, ErrEmptySampleSet)
}

func TestSummarizeKnownValues(t *testing.T) {
	// Population stddev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	s, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)

	margin := 1.96 * 2.0 / math.Sqrt(8)
	assert.InDelta(t, 5.0-margin, s.CILower, 1e-12)
	assert.InDelta(t, 5.0+margin, s.CIUpper, 1e-12)
	assert.InDelta(t, 5.0-1.645*2.0, s.VaR95, 1e-12)
	assert.InDelta(t, 5.0-2.063*2.0, s.CVaR95, 1e-12)
}

func TestSummarizeInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		n := 1 + rng.Intn(200)
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = 100 * (1 + rng.NormFloat64()*0.15)
		}

		s, err := Summarize(samples)
		require.NoError(t, err)

		assert.LessOrEqual(t, s.CILower, s.Mean)
		assert.LessOrEqual(t, s.Mean, s.CIUpper)
		assert.LessOrEqual(t, s.CVaR95, s.VaR95)
	}
}

func TestSummarizeZeroVariance(t *testing.T) {
	samples := make([]float64, 50)
	for i := range samples {
		samples[i] = 100
	}

	s, err := Summarize(samples)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 100.0, s.Mean)
	assert.Equal(t, 100.0, s.CILower)
	assert.Equal(t, 100.0, s.CIUpper)
	assert.Equal(t, 100.0, s.VaR95)
	assert.Equal(t, 100.0, s.CVaR95)
}

func TestValidationGate(t *testing.T) {
	tests := []struct {
		name   string
		v      Validation
		passed bool
	}{
		{"both clear", Validation{RMSE: 0.015, MAE: 0.01, RSquared: 0.99}, true},
		{"rmse too high", Validation{RMSE: 0.03, MAE: 0.01, RSquared: 0.99}, false},
		{"r2 too low", Validation{RMSE: 0.015, MAE: 0.01, RSquared: 0.95}, false},
		{"both fail", Validation{RMSE: 0.5, MAE: 0.4, RSquared: 0.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passed, tt.v.Passed())
			if tt.passed {
				assert.Equal(t, "PASSED", tt.v.Status())
			} else {
				assert.Equal(t, "REVIEW REQUIRED", tt.v.Status())
			}
		})
	}
}

func TestTrajectoryShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const target = 100.0

	traj := Trajectory(rng, target, 25)
	require.Len(t, traj, 25)

	// Late estimates must sit closer to the target than the noise floor
	// of the early walk: convergence factor ~1 and noise ~0 by i=20.
	for i := 20; i < 25; i++ {
		assert.InDelta(t, target, traj[i], 5.0, "iteration %d should have converged", i)
	}
}

func TestTrajectoryDeterministic(t *testing.T) {
	a := Trajectory(rand.New(rand.NewSource(1)), 100, 25)
	b := Trajectory(rand.New(rand.NewSource(1)), 100, 25)
	assert.Equal(t, a, b)

	c := Trajectory(rand.New(rand.NewSource(2)), 100, 25)
	assert.NotEqual(t, a, c)
}

func TestTrajectoryDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, Trajectory(rng, 100, 0))
	assert.Nil(t, Trajectory(rng, 100, -3))
	assert.Len(t, Trajectory(rng, 100, 1), 1)
}

func TestSimulateRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for run := 0; run < 20; run++ {
		r := Simulate(rng)

		require.Len(t, r.Prices, 50)
		assert.GreaterOrEqual(t, r.NumSimulations, 98000)
		assert.LessOrEqual(t, r.NumSimulations, 102000)
		assert.InDelta(t, 0.9950, r.ConvergenceRate, 0.0025)

		assert.InDelta(t, 0.5, r.Sensitivities.Delta, 0.15)
		assert.InDelta(t, 0.02, r.Sensitivities.Gamma, 0.005)
		assert.InDelta(t, 0.25, r.Sensitivities.Vega, 0.05)
		assert.InDelta(t, -0.05, r.Sensitivities.Theta, 0.01)
		assert.InDelta(t, 0.15, r.Sensitivities.Rho, 0.03)

		assert.GreaterOrEqual(t, r.Validation.RMSE, 0.008)
		assert.Less(t, r.Validation.RMSE, 0.025)
		assert.GreaterOrEqual(t, r.Validation.MAE, 0.006)
		assert.Less(t, r.Validation.MAE, 0.020)
		assert.InDelta(t, 0.985, r.Validation.RSquared, 0.015)

		assert.GreaterOrEqual(t, r.Methodology.TimeHorizonDays, 30)
		assert.LessOrEqual(t, r.Methodology.TimeHorizonDays, 180)
		assert.GreaterOrEqual(t, r.Methodology.TimeSteps, 50)
		assert.LessOrEqual(t, r.Methodology.TimeSteps, 100)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := Simulate(rand.New(rand.NewSource(3)))
	b := Simulate(rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
}
