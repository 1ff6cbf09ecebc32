package simdata

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/reglin/formula"
	"github.com/statkit/reglin/frame"
	"github.com/statkit/reglin/internal/options"
)

// Rlm generates a response variable with a linear regression structure.
//
// The formula is expanded against data into a design matrix X (see the
// formula package; a "y ~" response prefix is accepted and ignored), and
// the result is Xβ plus independent Gaussian noise with standard deviation
// sigma. The returned vector has one entry per row of data.
//
// Parameters:
//   - expr: model formula, e.g. "x + group" or "x*group - 1"
//   - beta: regression coefficients, aligned with the design columns;
//     its length must equal the design matrix column count
//   - sigma: noise standard deviation, must be non-negative; sigma of 0
//     returns the linear predictor exactly
//   - data: covariate table, must have at least one row
//   - opts: contrast overrides and noise-source configuration
//
// Errors:
//   - formula.ErrMalformedFormula: expr cannot be parsed
//   - formula.ErrMissingVariable: expr references a column absent from data
//   - ErrDimensionMismatch: len(beta) differs from the design column count
//   - ErrInvalidSigma, ErrSigmaLength: invalid noise scale
//   - ErrEmptyData: nil or zero-row data
//
// The call either fully succeeds or fails; no partial results are
// produced.
//
// Example:
//
//	data := frame.New()
//	_ = data.AddNumeric("x", []float64{0, 1, 2})
//
//	y, err := simdata.Rlm("x", []float64{1, 2}, 0, data)
//	// y == [1 3 5]
func Rlm(expr string, beta []float64, sigma float64, data *frame.Frame, opts ...Option) ([]float64, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if data == nil || data.NumRows() == 0 {
		return nil, ErrEmptyData
	}
	n := data.NumRows()

	sigmas, err := resolveSigmas(cfg, sigma, n)
	if err != nil {
		return nil, err
	}

	f, err := formula.Parse(expr)
	if err != nil {
		return nil, err
	}

	design, err := f.ModelMatrix(data, cfg.contrasts)
	if err != nil {
		return nil, err
	}

	p := design.NumCols()
	if len(beta) != p {
		return nil, fmt.Errorf("%w: design matrix has %d columns, beta has %d",
			ErrDimensionMismatch, p, len(beta))
	}

	var mu mat.VecDense
	mu.MulVec(design.Matrix, mat.NewVecDense(p, beta))

	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: cfg.src}

	y := make([]float64, n)
	for i := range y {
		y[i] = mu.AtVec(i)
		if sigmas[i] > 0 {
			y[i] += sigmas[i] * noise.Rand()
		}
	}

	return y, nil
}

// resolveSigmas validates the noise scale and expands it to one entry per
// observation. A sigma vector supplied via WithSigmas takes precedence
// over the scalar argument.
func resolveSigmas(cfg *config, sigma float64, n int) ([]float64, error) {
	if cfg.sigmas == nil {
		if sigma < 0 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidSigma, sigma)
		}
		sigmas := make([]float64, n)
		for i := range sigmas {
			sigmas[i] = sigma
		}

		return sigmas, nil
	}

	if len(cfg.sigmas) != n {
		return nil, fmt.Errorf("%w: got %d values for %d rows",
			ErrSigmaLength, len(cfg.sigmas), n)
	}
	for i, s := range cfg.sigmas {
		if s < 0 {
			return nil, fmt.Errorf("%w: got %v at row %d", ErrInvalidSigma, s, i)
		}
	}

	return cfg.sigmas, nil
}
