package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/statkit/reglin/ols"
)

// ModelPress pairs a candidate model with its PRESS statistic.
type ModelPress struct {
	// Model is the 1-based position of the fit in the PressTable call.
	Model int
	// Formula is the model formula, when the fit carries one.
	Formula string
	// Press is the prediction sum of squares.
	Press float64
}

func (m ModelPress) String() string {
	if m.Formula != "" {
		return fmt.Sprintf("Model %d (%s): PRESS = %.4f", m.Model, m.Formula, m.Press)
	}

	return fmt.Sprintf("Model %d: PRESS = %.4f", m.Model, m.Press)
}

// Press computes the prediction sum of squares of a fitted model using
// the leverage shortcut: each term is the squared leave-one-out residual
// eᵢ / (1 - hᵢ), so no model is actually refitted. A nil fit yields NaN.
func Press(fit *ols.Model) float64 {
	if fit == nil {
		return math.NaN()
	}

	press := 0.0
	for i, e := range fit.Residuals {
		d := e / (1 - fit.Leverage[i])
		press += d * d
	}

	return press
}

// PressTable computes PRESS for each candidate model and returns the
// results sorted ascending, best predictor first. Ties keep call order;
// nil fits carry a NaN PRESS and sort last.
func PressTable(fits ...*ols.Model) []ModelPress {
	table := make([]ModelPress, len(fits))
	for i, fit := range fits {
		table[i] = ModelPress{Model: i + 1, Press: Press(fit)}
		if fit != nil {
			table[i].Formula = fit.Formula
		}
	}
	sort.SliceStable(table, func(i, j int) bool {
		pi, pj := table[i].Press, table[j].Press
		if math.IsNaN(pj) {
			return !math.IsNaN(pi)
		}
		if math.IsNaN(pi) {
			return false
		}

		return pi < pj
	})

	return table
}
