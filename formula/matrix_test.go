package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/reglin/frame"
)

func numericFrame(t *testing.T, name string, values []float64) *frame.Frame {
	t.Helper()
	f := frame.New()
	require.NoError(t, f.AddNumeric(name, values))

	return f
}

func assertMatrix(t *testing.T, want [][]float64, got *mat.Dense) {
	t.Helper()
	r, c := got.Dims()
	require.Equal(t, len(want), r, "row count")
	require.Equal(t, len(want[0]), c, "column count")
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got.At(i, j), 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

func TestModelMatrix_NumericWithIntercept(t *testing.T) {
	data := numericFrame(t, "x", []float64{0, 1, 2})

	f, err := Parse("x")
	require.NoError(t, err)

	d, err := f.ModelMatrix(data, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Intercept", "x"}, d.Columns)
	assertMatrix(t, [][]float64{{1, 0}, {1, 1}, {1, 2}}, d.Matrix)
}

func TestModelMatrix_TreatmentFactor(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{1, 2, 3, 4}))
	require.NoError(t, data.AddFactor("group", []string{"B", "A", "B", "A"}))

	f, err := Parse("x + group")
	require.NoError(t, err)

	d, err := f.ModelMatrix(data, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Intercept", "x", "group[T.B]"}, d.Columns)
	assertMatrix(t, [][]float64{
		{1, 1, 1},
		{1, 2, 0},
		{1, 3, 1},
		{1, 4, 0},
	}, d.Matrix)
}

func TestModelMatrix_DeclaredLevels(t *testing.T) {
	// A single observation can still be encoded against a wider level set.
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{5}))
	require.NoError(t, data.AddFactorWithLevels("group", []string{"B"}, []string{"A", "B"}))

	f, err := Parse("x + group")
	require.NoError(t, err)

	d, err := f.ModelMatrix(data, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Intercept", "x", "group[T.B]"}, d.Columns)
	assertMatrix(t, [][]float64{{1, 5, 1}}, d.Matrix)
}

func TestModelMatrix_ThreeLevelFactor(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddFactor("g", []string{"C", "A", "B"}))

	f, err := Parse("g")
	require.NoError(t, err)

	t.Run("treatment", func(t *testing.T) {
		d, err := f.ModelMatrix(data, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"Intercept", "g[T.B]", "g[T.C]"}, d.Columns)
		assertMatrix(t, [][]float64{
			{1, 0, 1},
			{1, 0, 0},
			{1, 1, 0},
		}, d.Matrix)
	})

	t.Run("sum", func(t *testing.T) {
		d, err := f.ModelMatrix(data, map[string]ContrastType{"g": Sum})
		require.NoError(t, err)

		assert.Equal(t, []string{"Intercept", "g[S.A]", "g[S.B]"}, d.Columns)
		assertMatrix(t, [][]float64{
			{1, -1, -1},
			{1, 1, 0},
			{1, 0, 1},
		}, d.Matrix)
	})

	t.Run("helmert", func(t *testing.T) {
		d, err := f.ModelMatrix(data, map[string]ContrastType{"g": Helmert})
		require.NoError(t, err)

		assert.Equal(t, []string{"Intercept", "g[H.B]", "g[H.C]"}, d.Columns)
		assertMatrix(t, [][]float64{
			{1, 0, 2},
			{1, -1, -1},
			{1, 1, -1},
		}, d.Matrix)
	})
}

func TestModelMatrix_NoInterceptFullDummy(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddFactor("g", []string{"A", "B", "A"}))

	f, err := Parse("g - 1")
	require.NoError(t, err)

	d, err := f.ModelMatrix(data, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"g[A]", "g[B]"}, d.Columns)
	assertMatrix(t, [][]float64{
		{1, 0},
		{0, 1},
		{1, 0},
	}, d.Matrix)
}

// Full-dummy promotion is a main-effect rule: a factor that only occurs
// inside an interaction keeps its contrast columns even without an
// intercept.
func TestModelMatrix_NoInterceptInteractionOnlyFactor(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{2, 3, 4}))
	require.NoError(t, data.AddFactor("g", []string{"A", "B", "A"}))

	f, err := Parse("0 + x:g")
	require.NoError(t, err)

	d, err := f.ModelMatrix(data, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"x:g[T.B]"}, d.Columns)
	assertMatrix(t, [][]float64{{0}, {3}, {0}}, d.Matrix)

	// Naming the main effect restores the full interaction span.
	f, err = Parse("0 + g + x:g")
	require.NoError(t, err)

	d, err = f.ModelMatrix(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"g[A]", "g[B]", "x:g[T.B]"}, d.Columns)
}

func TestModelMatrix_NumericFactorInteraction(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{2, 3, 4}))
	require.NoError(t, data.AddFactor("g", []string{"A", "B", "B"}))

	f, err := Parse("x*g")
	require.NoError(t, err)

	d, err := f.ModelMatrix(data, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Intercept", "x", "g[T.B]", "x:g[T.B]"}, d.Columns)
	assertMatrix(t, [][]float64{
		{1, 2, 0, 0},
		{1, 3, 1, 3},
		{1, 4, 1, 4},
	}, d.Matrix)
}

func TestModelMatrix_Errors(t *testing.T) {
	data := frame.New()
	require.NoError(t, data.AddNumeric("x", []float64{1, 2}))
	require.NoError(t, data.AddFactor("g", []string{"A", "B"}))

	parse := func(expr string) *Formula {
		f, err := Parse(expr)
		require.NoError(t, err)

		return f
	}

	t.Run("missing variable", func(t *testing.T) {
		_, err := parse("x + z").ModelMatrix(data, nil)
		assert.ErrorIs(t, err, ErrMissingVariable)
	})

	t.Run("contrast for numeric column", func(t *testing.T) {
		_, err := parse("x + g").ModelMatrix(data, map[string]ContrastType{"x": Sum})
		assert.ErrorIs(t, err, ErrNotFactor)
	})

	t.Run("contrast for variable not in formula", func(t *testing.T) {
		_, err := parse("x").ModelMatrix(data, map[string]ContrastType{"g": Sum})
		assert.ErrorIs(t, err, ErrMissingVariable)
	})

	t.Run("unknown contrast type", func(t *testing.T) {
		_, err := parse("g").ModelMatrix(data, map[string]ContrastType{"g": ContrastType(0x7f)})
		assert.ErrorIs(t, err, ErrUnknownContrast)
	})

	t.Run("nil data", func(t *testing.T) {
		_, err := parse("x").ModelMatrix(nil, nil)
		assert.ErrorIs(t, err, ErrNilData)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := parse("x").ModelMatrix(frame.New(), nil)
		assert.ErrorIs(t, err, ErrNoObservations)
	})
}

func BenchmarkModelMatrix(b *testing.B) {
	data := frame.New()
	n := 1000
	x := make([]float64, n)
	g := make([]string, n)
	for i := range x {
		x[i] = float64(i)
		g[i] = string(rune('A' + i%4))
	}
	if err := data.AddNumeric("x", x); err != nil {
		b.Fatal(err)
	}
	if err := data.AddFactor("g", g); err != nil {
		b.Fatal(err)
	}

	f, err := Parse("x*g")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := f.ModelMatrix(data, nil); err != nil {
			b.Fatal(err)
		}
	}
}
