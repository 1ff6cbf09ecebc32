// Package ols fits linear models by ordinary least squares.
//
// Fit expands a model formula against a data frame (the response side of
// the formula names a numeric column) and solves the normal equations for
// the coefficient vector. The resulting Model carries everything the
// downstream statistics need: coefficients aligned with design column
// names, fitted values, residuals, leverage, R² and adjusted R², and the
// residual standard error.
//
//	fit, err := ols.Fit("tempo ~ caixas + distancia", data, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("R² = %.3f\n", fit.RSquared)
//
// FitMatrix is the lower-level entry point that accepts an already-built
// design matrix; the diagnostics in the stats package use it for auxiliary
// regressions.
package ols
