package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/reglin/ols"
)

// ErrNilFit is returned when diagnostics are requested for a nil fit.
var ErrNilFit = errors.New("stats: nil fit")

// outlierAlpha is the Bonferroni-adjusted significance level used to
// flag outliers.
const outlierAlpha = 0.05

// Outlier is an observation flagged by the studentized residual test.
type Outlier struct {
	// Index is the zero-based observation index.
	Index int
	// Studentized is the externally studentized residual.
	Studentized float64
	// PValue is the two-sided t-test p-value of the residual.
	PValue float64
	// Bonferroni is min(1, n * PValue).
	Bonferroni float64
}

// Diagnostics bundles the standard residual checks for a fitted model.
type Diagnostics struct {
	// ShapiroW and ShapiroP test the residuals for normality.
	ShapiroW, ShapiroP float64
	// BreuschPaganStat, BreuschPaganDF and BreuschPaganP test for
	// heteroscedasticity; the statistic is NaN when the model has no
	// covariates to regress the squared residuals on.
	BreuschPaganStat float64
	BreuschPaganDF   int
	BreuschPaganP    float64
	// DurbinWatson measures first-order autocorrelation; values near 2
	// indicate none.
	DurbinWatson float64
	// Studentized holds the externally studentized residuals, nil when
	// the residual degrees of freedom are too small to compute them.
	Studentized []float64
	// Outliers lists observations with Bonferroni-adjusted p below 0.05.
	Outliers []Outlier
}

// CheckResiduals runs the residual diagnostics on a fitted model:
// Shapiro-Wilk normality, Breusch-Pagan heteroscedasticity,
// Durbin-Watson autocorrelation and outlier detection on externally
// studentized residuals.
func CheckResiduals(fit *ols.Model) (*Diagnostics, error) {
	if fit == nil {
		return nil, ErrNilFit
	}

	w, p, err := ShapiroWilk(fit.Residuals)
	if err != nil {
		return nil, fmt.Errorf("stats: shapiro-wilk on residuals: %w", err)
	}

	d := &Diagnostics{
		ShapiroW:     w,
		ShapiroP:     p,
		DurbinWatson: durbinWatson(fit.Residuals),
	}

	d.BreuschPaganStat, d.BreuschPaganDF, d.BreuschPaganP = breuschPagan(fit)
	d.Studentized = studentized(fit)
	d.Outliers = flagOutliers(fit, d.Studentized)

	return d, nil
}

// String renders the diagnostics in a compact report.
func (d *Diagnostics) String() string {
	var sb strings.Builder
	sb.WriteString("Residual diagnostics\n")
	fmt.Fprintf(&sb, "  Shapiro-Wilk:   W = %.4f  p = %.4f\n", d.ShapiroW, d.ShapiroP)
	if math.IsNaN(d.BreuschPaganStat) {
		sb.WriteString("  Breusch-Pagan:  not applicable\n")
	} else {
		fmt.Fprintf(&sb, "  Breusch-Pagan:  LM = %.4f  df = %d  p = %.4f\n",
			d.BreuschPaganStat, d.BreuschPaganDF, d.BreuschPaganP)
	}
	fmt.Fprintf(&sb, "  Durbin-Watson:  DW = %.4f\n", d.DurbinWatson)
	if len(d.Outliers) == 0 {
		sb.WriteString("  Outliers:       none\n")
	} else {
		sb.WriteString("  Outliers:\n")
		for _, o := range d.Outliers {
			fmt.Fprintf(&sb, "    obs %d: t = %.4f  bonferroni p = %.4f\n",
				o.Index, o.Studentized, o.Bonferroni)
		}
	}

	return sb.String()
}

// durbinWatson computes sum of squared successive differences over the
// residual sum of squares.
func durbinWatson(residuals []float64) float64 {
	num, den := 0.0, 0.0
	for i, e := range residuals {
		den += e * e
		if i > 0 {
			d := e - residuals[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return math.NaN()
	}

	return num / den
}

// breuschPagan runs the Koenker variant: regress squared residuals on the
// original design and compare n·R² against a chi-squared with one degree
// of freedom per covariate.
func breuschPagan(fit *ols.Model) (stat float64, df int, p float64) {
	df = fit.P
	if fit.Intercept {
		df = fit.P - 1
	}
	if df < 1 || fit.N <= fit.P {
		return math.NaN(), 0, math.NaN()
	}

	sq := make([]float64, fit.N)
	for i, e := range fit.Residuals {
		sq[i] = e * e
	}

	aux, err := ols.FitMatrix(fit.X, fit.Columns, sq, fit.Intercept)
	if err != nil {
		return math.NaN(), 0, math.NaN()
	}

	stat = float64(fit.N) * aux.RSquared
	chi := distuv.ChiSquared{K: float64(df)}

	return stat, df, 1 - chi.CDF(stat)
}

// studentized computes externally studentized residuals, deleting each
// observation from the error variance estimate through the leverage
// shortcut.
func studentized(fit *ols.Model) []float64 {
	df := fit.N - fit.P - 1
	if df < 1 {
		return nil
	}

	t := make([]float64, fit.N)
	for i, e := range fit.Residuals {
		h := fit.Leverage[i]
		s2 := (fit.RSS - e*e/(1-h)) / float64(df)
		if s2 <= 0 {
			t[i] = math.Inf(sign(e))
			continue
		}
		t[i] = e / (math.Sqrt(s2) * math.Sqrt(1-h))
	}

	return t
}

// flagOutliers applies a two-sided t-test with Bonferroni correction to
// the studentized residuals.
func flagOutliers(fit *ols.Model, t []float64) []Outlier {
	if t == nil {
		return nil
	}
	df := fit.N - fit.P - 1
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	var out []Outlier
	for i, ti := range t {
		p := 2 * (1 - dist.CDF(math.Abs(ti)))
		bonf := math.Min(1, float64(fit.N)*p)
		if bonf < outlierAlpha {
			out = append(out, Outlier{
				Index:       i,
				Studentized: ti,
				PValue:      p,
				Bonferroni:  bonf,
			})
		}
	}

	return out
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}

	return 1
}
