package metrics

import (
	"math"
	"math/rand"
)

// Trajectory produces a damped random walk of length iterations that
// starts off-target and decays toward target with shrinking noise. It
// models how a running Monte Carlo estimate settles: fast early
// convergence, narrowing variance.
//
// The first estimate is seeded at target x U(0.85, 1.15). At step i the
// estimate is a convex blend of the target and the previous estimate,
// weighted by 1-e^(-i/5), plus Gaussian noise with amplitude 10*e^(-i/3).
func Trajectory(rng *rand.Rand, target float64, iterations int) []float64 {
	if iterations <= 0 {
		return nil
	}

	estimate := target * (0.85 + rng.Float64()*0.30)

	out := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		factor := 1 - math.Exp(-float64(i)/5)
		noise := rng.NormFloat64() * 10 * math.Exp(-float64(i)/3)
		estimate = target*factor + estimate*(1-factor) + noise
		out[i] = estimate
	}
	return out
}
