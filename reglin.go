// Package reglin simulates and analyzes linear regression models.
//
// The library is organized around a small pipeline:
//
//   - frame holds tabular data with numeric and factor columns
//   - formula parses Wilkinson model formulas ("y ~ x + a*b") and
//     expands them into design matrices with configurable contrasts
//   - simdata generates synthetic responses y = Xβ + ε
//   - ols fits models by ordinary least squares
//   - stats and anova provide diagnostics and variance decomposition
//   - dataset bundles and fetches example data
//
// This package re-exports the most common entry points so simple
// workflows need a single import:
//
//	data, _ := reglin.LoadDataset("entregas")
//	fit, _ := reglin.Fit("tempo ~ caixas + distancia", data, nil)
//	tab, _ := reglin.Anova(fit)
//	fmt.Print(tab)
//
// Simulation works against any frame:
//
//	data := frame.New()
//	_ = data.AddNumeric("x", []float64{0, 1, 2})
//	y, _ := reglin.Simulate("x", []float64{1, 2}, 0.5, data,
//		simdata.WithSeed(42))
package reglin

import (
	"github.com/statkit/reglin/anova"
	"github.com/statkit/reglin/dataset"
	"github.com/statkit/reglin/formula"
	"github.com/statkit/reglin/frame"
	"github.com/statkit/reglin/internal/hash"
	"github.com/statkit/reglin/ols"
	"github.com/statkit/reglin/simdata"
	"github.com/statkit/reglin/stats"
)

// Simulate generates a response vector with the linear structure
// described by a model formula. It is a shorthand for simdata.Rlm.
func Simulate(expr string, beta []float64, sigma float64, data *frame.Frame, opts ...simdata.Option) ([]float64, error) {
	return simdata.Rlm(expr, beta, sigma, data, opts...)
}

// Fit estimates a linear model by ordinary least squares. It is a
// shorthand for ols.Fit.
func Fit(expr string, data *frame.Frame, contrasts map[string]formula.ContrastType) (*ols.Model, error) {
	return ols.Fit(expr, data, contrasts)
}

// Anova builds the analysis-of-variance table of a fitted model. It is
// a shorthand for anova.NewTable.
func Anova(fit *ols.Model) (*anova.Table, error) {
	return anova.NewTable(fit)
}

// CheckResiduals runs the standard residual diagnostics on a fitted
// model. It is a shorthand for stats.CheckResiduals.
func CheckResiduals(fit *ols.Model) (*stats.Diagnostics, error) {
	return stats.CheckResiduals(fit)
}

// LoadDataset returns a bundled example dataset by name. It is a
// shorthand for dataset.Load.
func LoadDataset(name string) (*frame.Frame, error) {
	return dataset.Load(name)
}

// SeedID derives a deterministic simulation seed from a label, so runs
// can be reproduced from a human-readable identifier. The same value
// drives simdata.WithSeedString.
func SeedID(label string) uint64 {
	return hash.ID(label)
}
