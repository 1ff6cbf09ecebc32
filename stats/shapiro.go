package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrSampleSize is returned when a sample is outside the supported
	// size range of the Shapiro-Wilk approximation.
	ErrSampleSize = errors.New("stats: sample size must be between 3 and 5000")
	// ErrConstantSample is returned when all sample values are identical.
	ErrConstantSample = errors.New("stats: sample has zero range")
)

// ShapiroWilk tests a sample for normality.
//
// It returns the W statistic and the p-value of the null hypothesis that
// the sample is drawn from a normal distribution, using Royston's 1995
// approximation (AS R94). Supported sample sizes are 3 through 5000.
func ShapiroWilk(x []float64) (w, p float64, err error) {
	n := len(x)
	if n < 3 || n > 5000 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrSampleSize, n)
	}

	sorted := slices.Clone(x)
	slices.Sort(sorted)
	if sorted[n-1] == sorted[0] {
		return 0, 0, ErrConstantSample
	}

	w = shapiroW(sorted)
	p = shapiroP(w, n)

	return w, p, nil
}

// shapiroW computes the W statistic from an ascending sample.
func shapiroW(sorted []float64) float64 {
	n := len(sorted)
	fn := float64(n)

	// Expected normal order statistics via the Blom approximation.
	m := make([]float64, n)
	ssm := 0.0
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (fn + 0.25))
		ssm += m[i] * m[i]
	}

	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt2 / 2
		a[2] = math.Sqrt2 / 2
	} else {
		rsm := math.Sqrt(ssm)
		u := 1 / math.Sqrt(fn)

		// Royston's polynomial corrections to the two extreme weights.
		an := -2.706056*math.Pow(u, 5) + 4.434685*math.Pow(u, 4) -
			2.071190*math.Pow(u, 3) - 0.147981*u*u + 0.221157*u + m[n-1]/rsm
		a[n-1] = an
		a[0] = -an

		if n <= 5 {
			phi := (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
			for i := 1; i < n-1; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		} else {
			an1 := -3.582633*math.Pow(u, 5) + 5.682633*math.Pow(u, 4) -
				1.752461*math.Pow(u, 3) - 0.293762*u*u + 0.042981*u + m[n-2]/rsm
			a[n-2] = an1
			a[1] = -an1

			phi := (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
				(1 - 2*an*an - 2*an1*an1)
			for i := 2; i < n-2; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		}
	}

	mean := 0.0
	for _, v := range sorted {
		mean += v
	}
	mean /= fn

	num, den := 0.0, 0.0
	for i, v := range sorted {
		num += a[i] * v
		den += (v - mean) * (v - mean)
	}

	return num * num / den
}

// shapiroP approximates the upper-tail p-value of W for sample size n.
func shapiroP(w float64, n int) float64 {
	if n == 3 {
		// Exact small-sample distribution.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return math.Min(math.Max(p, 0), 1)
	}

	fn := float64(n)
	var z float64
	if n <= 11 {
		gamma := -2.273 + 0.459*fn
		wt := -math.Log(gamma - math.Log(1-w))
		mu := 0.5440 - 0.39978*fn + 0.025054*fn*fn - 0.0006714*fn*fn*fn
		sigma := math.Exp(1.3822 - 0.77857*fn + 0.062767*fn*fn - 0.0020322*fn*fn*fn)
		z = (wt - mu) / sigma
	} else {
		ln := math.Log(fn)
		wt := math.Log(1 - w)
		mu := -1.5861 - 0.31082*ln - 0.083751*ln*ln + 0.0038915*ln*ln*ln
		sigma := math.Exp(-0.4803 - 0.082676*ln + 0.0030302*ln*ln)
		z = (wt - mu) / sigma
	}

	return 1 - distuv.UnitNormal.CDF(z)
}
