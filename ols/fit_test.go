package ols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/reglin/frame"
)

// Hand-checked simple regression: x = 1..4, y = {2,3,5,4} gives
// ŷ = 1.5 + 0.8x, RSS = 1.8, TSS = 5, R² = 0.64.
func simpleData(t *testing.T) *frame.Frame {
	t.Helper()
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{1, 2, 3, 4}))
	require.NoError(t, data.AddNumeric("y", []float64{2, 3, 5, 4}))

	return data
}

func TestFit_SimpleRegression(t *testing.T) {
	fit, err := Fit("y ~ x", simpleData(t), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Intercept", "x"}, fit.Columns)
	assert.Equal(t, 4, fit.N)
	assert.Equal(t, 2, fit.P)
	assert.Equal(t, 2, fit.DFResidual)
	assert.True(t, fit.Intercept)

	assert.InDelta(t, 1.5, fit.Coef[0], 1e-10)
	assert.InDelta(t, 0.8, fit.Coef[1], 1e-10)

	wantFitted := []float64{2.3, 3.1, 3.9, 4.7}
	wantResid := []float64{-0.3, -0.1, 1.1, -0.7}
	for i := range wantFitted {
		assert.InDelta(t, wantFitted[i], fit.Fitted[i], 1e-10)
		assert.InDelta(t, wantResid[i], fit.Residuals[i], 1e-10)
	}

	assert.InDelta(t, 1.8, fit.RSS, 1e-10)
	assert.InDelta(t, 5.0, fit.TSS, 1e-10)
	assert.InDelta(t, 0.64, fit.RSquared, 1e-10)
	assert.InDelta(t, 0.46, fit.AdjRSquared, 1e-10)
	assert.InDelta(t, 0.9486832980505138, fit.Sigma, 1e-10)
}

// Fit the function and Model the type must coexist: the wrapper calls
// read ols.Fit while results are passed around as *ols.Model.
func TestFit_ReturnsModel(t *testing.T) {
	var m *Model
	m, err := Fit("y ~ x", simpleData(t), nil)
	require.NoError(t, err)

	assert.Contains(t, m.String(), `Model{Formula: "y ~ x"`)
	assert.Contains(t, m.String(), "N: 4")
}

func TestFit_Leverage(t *testing.T) {
	fit, err := Fit("y ~ x", simpleData(t), nil)
	require.NoError(t, err)

	// h_i = 1/n + (x_i - x̄)² / Sxx for simple regression.
	want := []float64{0.7, 0.3, 0.3, 0.7}
	sum := 0.0
	for i, h := range fit.Leverage {
		assert.InDelta(t, want[i], h, 1e-10)
		sum += h
	}
	assert.InDelta(t, float64(fit.P), sum, 1e-10, "trace of the hat matrix is p")
}

func TestFit_PerfectFit(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{1, 2, 3, 4, 5}))
	require.NoError(t, data.AddNumeric("y", []float64{3, 5, 7, 9, 11}))

	fit, err := Fit("y ~ x", data, nil)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, fit.Coef[0], 1e-9)
	assert.InDelta(t, 2.0, fit.Coef[1], 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	assert.InDelta(t, 0.0, fit.Sigma, 1e-9)
}

func TestFit_FactorModel(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddFactor("g", []string{"A", "A", "B", "B"}))
	require.NoError(t, data.AddNumeric("y", []float64{1, 3, 10, 14}))

	fit, err := Fit("y ~ g", data, nil)
	require.NoError(t, err)

	// Treatment coding: intercept = mean(A) = 2, g[T.B] = mean(B) - mean(A).
	assert.Equal(t, []string{"Intercept", "g[T.B]"}, fit.Columns)
	assert.InDelta(t, 2.0, fit.Coef[0], 1e-10)
	assert.InDelta(t, 10.0, fit.Coef[1], 1e-10)
}

func TestFit_NoIntercept(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{1, 2, 3}))
	require.NoError(t, data.AddNumeric("y", []float64{2, 4, 6}))

	fit, err := Fit("y ~ x - 1", data, nil)
	require.NoError(t, err)

	assert.False(t, fit.Intercept)
	assert.Equal(t, []string{"x"}, fit.Columns)
	assert.InDelta(t, 2.0, fit.Coef[0], 1e-10)
	// Uncorrected TSS for intercept-free models.
	assert.InDelta(t, 56.0, fit.TSS, 1e-10)
}

func TestFit_Errors(t *testing.T) {
	t.Run("no response", func(t *testing.T) {
		_, err := Fit("x", simpleData(t), nil)
		assert.ErrorIs(t, err, ErrNoResponse)
	})

	t.Run("factor response", func(t *testing.T) {
		data := frame.New()
		require.NoError(t, data.AddFactor("g", []string{"A", "B"}))
		require.NoError(t, data.AddNumeric("x", []float64{1, 2}))

		_, err := Fit("g ~ x", data, nil)
		assert.ErrorIs(t, err, frame.ErrColumnKind)
	})

	t.Run("too few observations", func(t *testing.T) {
		data := frame.New()
		require.NoError(t, data.AddNumeric("x", []float64{1, 2}))
		require.NoError(t, data.AddNumeric("y", []float64{3, 4}))

		_, err := Fit("y ~ x", data, nil)
		assert.ErrorIs(t, err, ErrTooFewObservations)
	})
}

func TestFitMatrix_Errors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		x := mat.NewDense(3, 1, []float64{1, 2, 3})
		_, err := FitMatrix(x, []string{"x"}, []float64{1, 2}, false)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("singular design", func(t *testing.T) {
		// Two identical columns.
		x := mat.NewDense(4, 2, []float64{
			1, 1,
			2, 2,
			3, 3,
			4, 4,
		})
		_, err := FitMatrix(x, []string{"a", "b"}, []float64{1, 2, 3, 4}, false)
		assert.ErrorIs(t, err, ErrSingularDesign)
	})
}

func TestFit_ConstantResponse(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{1, 2, 3, 4}))
	require.NoError(t, data.AddNumeric("y", []float64{5, 5, 5, 5}))

	fit, err := Fit("y ~ x", data, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, fit.TSS, 1e-10)
	assert.Equal(t, 0.0, fit.RSquared, "zero total variation reports R² of 0")
}

func BenchmarkFit(b *testing.B) {
	n := 1000
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2 + 3*float64(i)
	}
	data := frame.New()
	if err := data.AddNumeric("x", x); err != nil {
		b.Fatal(err)
	}
	if err := data.AddNumeric("y", y); err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		if _, err := Fit("y ~ x", data, nil); err != nil {
			b.Fatal(err)
		}
	}
}
