package anova

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/reglin/ols"
)

var (
	// ErrNilFit is returned when a table is requested for a nil fit.
	ErrNilFit = errors.New("anova: nil fit")
	// ErrNoModelTerms is returned when the fit has no model degrees of
	// freedom to test, such as an intercept-only model.
	ErrNoModelTerms = errors.New("anova: model has no terms to test")
)

// Row is one line of an ANOVA table. MeanSq, F and P are NaN where the
// classical table leaves them blank.
type Row struct {
	Source string
	Df     int
	SumSq  float64
	MeanSq float64
	F      float64
	P      float64
}

// Table is the analysis-of-variance decomposition of a fitted model,
// with Model, Residuals and Total rows in that order.
type Table struct {
	Formula string
	Rows    []Row
}

// NewTable decomposes the variation of a fitted model and tests the
// joint significance of its terms against an F distribution.
func NewTable(fit *ols.Model) (*Table, error) {
	if fit == nil {
		return nil, ErrNilFit
	}

	dfModel := fit.P
	dfTotal := fit.N
	if fit.Intercept {
		dfModel = fit.P - 1
		dfTotal = fit.N - 1
	}
	if dfModel < 1 {
		return nil, ErrNoModelTerms
	}
	dfRes := fit.DFResidual

	ssModel := fit.TSS - fit.RSS
	msModel := ssModel / float64(dfModel)
	msRes := fit.RSS / float64(dfRes)

	f := math.NaN()
	p := math.NaN()
	if msRes > 0 {
		f = msModel / msRes
		dist := distuv.F{D1: float64(dfModel), D2: float64(dfRes)}
		p = 1 - dist.CDF(f)
	}

	nan := math.NaN()

	return &Table{
		Formula: fit.Formula,
		Rows: []Row{
			{Source: "Model", Df: dfModel, SumSq: ssModel, MeanSq: msModel, F: f, P: p},
			{Source: "Residuals", Df: dfRes, SumSq: fit.RSS, MeanSq: msRes, F: nan, P: nan},
			{Source: "Total", Df: dfTotal, SumSq: fit.TSS, MeanSq: nan, F: nan, P: nan},
		},
	}, nil
}

// String renders the table in the familiar fixed-width layout.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Analysis of Variance")
	if t.Formula != "" {
		fmt.Fprintf(&sb, " (%s)", t.Formula)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%-10s %4s %10s %10s %9s %9s\n",
		"Source", "Df", "Sum Sq", "Mean Sq", "F value", "Pr(>F)")

	for _, r := range t.Rows {
		fmt.Fprintf(&sb, "%-10s %4d %10.4f", r.Source, r.Df, r.SumSq)
		if !math.IsNaN(r.MeanSq) {
			fmt.Fprintf(&sb, " %10.4f", r.MeanSq)
		}
		if !math.IsNaN(r.F) {
			fmt.Fprintf(&sb, " %9.4f %9.4f", r.F, r.P)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
