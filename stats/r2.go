package stats

import (
	"math"

	"github.com/statkit/reglin/ols"
)

// R2 returns the coefficient of determination of a fitted model, NaN for
// a nil fit.
func R2(fit *ols.Model) float64 {
	if fit == nil {
		return math.NaN()
	}

	return fit.RSquared
}

// R2Adj returns the adjusted coefficient of determination, which
// penalizes extra design columns and is the better criterion when
// comparing models of different sizes. NaN for a nil fit.
func R2Adj(fit *ols.Model) float64 {
	if fit == nil {
		return math.NaN()
	}

	return fit.AdjRSquared
}
