// Package anova builds analysis-of-variance tables for fitted linear
// models.
//
// NewTable decomposes the total sum of squares of an *ols.Model into model
// and residual components and tests the overall regression with an F
// statistic:
//
//	fit, _ := ols.Fit("y ~ x + group", data, nil)
//	tab, _ := anova.NewTable(fit)
//	fmt.Print(tab)
//
// For intercept models the total sum of squares is mean-corrected with
// n-1 total degrees of freedom; without an intercept the decomposition
// uses the uncorrected sum with n total degrees of freedom.
package anova
