// Package stats provides model-quality statistics and residual
// diagnostics for fitted linear models.
//
// The package operates on *ols.Model values:
//
//   - R2 and R2Adj report goodness of fit.
//   - Press computes the prediction sum of squares from the leverage
//     shortcut, and PressTable ranks candidate models by it.
//   - CheckResiduals bundles the standard residual checks: Shapiro-Wilk
//     normality, Breusch-Pagan heteroscedasticity, the Durbin-Watson
//     autocorrelation statistic, and Bonferroni-adjusted outlier
//     detection on externally studentized residuals.
//
// ShapiroWilk is also exported on its own for testing arbitrary samples.
package stats
