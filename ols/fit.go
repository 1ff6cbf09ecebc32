package ols

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/reglin/formula"
	"github.com/statkit/reglin/frame"
)

var (
	// ErrNoResponse is returned when the formula lacks a "y ~" response.
	ErrNoResponse = errors.New("ols: formula has no response variable")
	// ErrSingularDesign is returned when the normal equations cannot be
	// solved because the design matrix is rank deficient.
	ErrSingularDesign = errors.New("ols: singular design matrix")
	// ErrTooFewObservations is returned when there are not more
	// observations than design columns.
	ErrTooFewObservations = errors.New("ols: need more observations than design columns")
	// ErrLengthMismatch is returned by FitMatrix when the response length
	// differs from the design matrix row count.
	ErrLengthMismatch = errors.New("ols: response length does not match design matrix rows")
)

// Model is a fitted ordinary-least-squares model.
type Model struct {
	// Formula is the model formula, empty when fitted via FitMatrix.
	Formula string
	// Columns names the design matrix columns; Coef is aligned with it.
	Columns []string
	// Coef holds the estimated coefficients.
	Coef []float64
	// X is the design matrix the model was fitted against.
	X *mat.Dense
	// Y is the observed response.
	Y []float64
	// Fitted holds the in-sample predictions Xβ̂.
	Fitted []float64
	// Residuals holds Y - Fitted.
	Residuals []float64
	// Leverage holds the hat matrix diagonal.
	Leverage []float64

	// N and P are the observation and design column counts; DFResidual
	// is N - P.
	N, P       int
	DFResidual int

	// RSS and TSS are the residual and total sums of squares. TSS is
	// mean-corrected only when the model has an intercept.
	RSS, TSS float64
	// RSquared and AdjRSquared measure goodness of fit.
	RSquared, AdjRSquared float64
	// Sigma is the residual standard error sqrt(RSS / DFResidual).
	Sigma float64
	// Intercept reports whether the design includes an intercept column.
	Intercept bool
}

// String returns a short summary of the fit.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Formula: %q, N: %d, P: %d, R²: %.4f}",
		m.Formula, m.N, m.P, m.RSquared)
}

// Fit estimates a linear model by ordinary least squares.
//
// The formula must carry a response ("y ~ x + group") naming a numeric
// column of data. Factor contrast codings can be overridden per variable
// through the contrasts map, as in formula.ModelMatrix.
func Fit(expr string, data *frame.Frame, contrasts map[string]formula.ContrastType) (*Model, error) {
	f, err := formula.Parse(expr)
	if err != nil {
		return nil, err
	}
	if f.Response == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoResponse, expr)
	}

	y, err := data.Numeric(f.Response)
	if err != nil {
		return nil, fmt.Errorf("ols: response %q: %w", f.Response, err)
	}

	design, err := f.ModelMatrix(data, contrasts)
	if err != nil {
		return nil, err
	}

	fit, err := FitMatrix(design.Matrix, design.Columns, y, f.Intercept)
	if err != nil {
		return nil, err
	}
	fit.Formula = f.String()

	return fit, nil
}

// FitMatrix estimates a linear model from an already-built design matrix.
//
// The intercept flag records whether x includes an intercept column; it
// decides whether the total sum of squares is mean-corrected.
func FitMatrix(x *mat.Dense, columns []string, y []float64, intercept bool) (*Model, error) {
	n, p := x.Dims()
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows vs %d responses", ErrLengthMismatch, n, len(y))
	}
	if n <= p {
		return nil, fmt.Errorf("%w: n=%d, p=%d", ErrTooFewObservations, n, p)
	}

	y = slices.Clone(y)
	yVec := mat.NewVecDense(n, y)

	// Normal equations: (XᵀX) β = Xᵀy.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), yVec)

	var coefVec mat.VecDense
	coefVec.MulVec(&xtxInv, &xty)

	var fittedVec mat.VecDense
	fittedVec.MulVec(x, &coefVec)

	coef := make([]float64, p)
	for j := range coef {
		coef[j] = coefVec.AtVec(j)
	}

	fitted := make([]float64, n)
	residuals := make([]float64, n)
	rss := 0.0
	for i := range fitted {
		fitted[i] = fittedVec.AtVec(i)
		residuals[i] = y[i] - fitted[i]
		rss += residuals[i] * residuals[i]
	}

	leverage := hatDiagonal(x, &xtxInv)

	tss := totalSumOfSquares(y, intercept)
	dfRes := n - p
	dfTot := n
	if intercept {
		dfTot = n - 1
	}

	r2, adjR2 := 0.0, 0.0
	if tss > 0 {
		r2 = 1 - rss/tss
		adjR2 = 1 - (rss/float64(dfRes))/(tss/float64(dfTot))
	}

	return &Model{
		Columns:     slices.Clone(columns),
		Coef:        coef,
		X:           x,
		Y:           y,
		Fitted:      fitted,
		Residuals:   residuals,
		Leverage:    leverage,
		N:           n,
		P:           p,
		DFResidual:  dfRes,
		RSS:         rss,
		TSS:         tss,
		RSquared:    r2,
		AdjRSquared: adjR2,
		Sigma:       math.Sqrt(rss / float64(dfRes)),
		Intercept:   intercept,
	}, nil
}

// hatDiagonal computes hᵢ = xᵢᵀ (XᵀX)⁻¹ xᵢ for each row of the design.
func hatDiagonal(x *mat.Dense, xtxInv *mat.Dense) []float64 {
	n, p := x.Dims()
	h := make([]float64, n)
	tmp := make([]float64, p)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		for j := 0; j < p; j++ {
			s := 0.0
			for k := 0; k < p; k++ {
				s += xtxInv.At(j, k) * row[k]
			}
			tmp[j] = s
		}
		for j := 0; j < p; j++ {
			h[i] += row[j] * tmp[j]
		}
	}

	return h
}

// totalSumOfSquares is mean-corrected only for intercept models, matching
// the ANOVA decomposition.
func totalSumOfSquares(y []float64, intercept bool) float64 {
	tss := 0.0
	if !intercept {
		for _, v := range y {
			tss += v * v
		}

		return tss
	}

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	for _, v := range y {
		tss += (v - mean) * (v - mean)
	}

	return tss
}
