package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termStrings(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}

	return out
}

func TestParse_MainEffects(t *testing.T) {
	f, err := Parse("x + group")
	require.NoError(t, err)

	assert.Empty(t, f.Response)
	assert.True(t, f.Intercept)
	assert.Equal(t, []string{"x", "group"}, termStrings(f.Terms))
}

func TestParse_Response(t *testing.T) {
	f, err := Parse("y ~ x + group")
	require.NoError(t, err)

	assert.Equal(t, "y", f.Response)
	assert.Equal(t, []string{"x", "group"}, termStrings(f.Terms))

	t.Run("bare tilde keeps empty response", func(t *testing.T) {
		f, err := Parse("~ x")
		require.NoError(t, err)
		assert.Empty(t, f.Response)
		assert.Equal(t, []string{"x"}, termStrings(f.Terms))
	})
}

func TestParse_Interaction(t *testing.T) {
	f, err := Parse("x + a:b")
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "a:b"}, termStrings(f.Terms))
	assert.Equal(t, 2, f.Terms[1].Degree())
}

func TestParse_Crossing(t *testing.T) {
	t.Run("two-way", func(t *testing.T) {
		f, err := Parse("a*b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a:b"}, termStrings(f.Terms))
	})

	t.Run("three-way", func(t *testing.T) {
		f, err := Parse("a*b*c")
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"a", "b", "c", "a:b", "a:c", "b:c", "a:b:c"},
			termStrings(f.Terms))
	})

	t.Run("crossing an interaction", func(t *testing.T) {
		f, err := Parse("a:b*c")
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a:b", "a:b:c"}, termStrings(f.Terms))
	})
}

func TestParse_TermOrdering(t *testing.T) {
	// Interactions sort after main effects regardless of position.
	f, err := Parse("a:b + x + z")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "z", "a:b"}, termStrings(f.Terms))
}

func TestParse_Deduplication(t *testing.T) {
	t.Run("repeated main effect", func(t *testing.T) {
		f, err := Parse("x + x")
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, termStrings(f.Terms))
	})

	t.Run("order-insensitive interactions", func(t *testing.T) {
		f, err := Parse("a:b + b:a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a:b"}, termStrings(f.Terms))
	})

	t.Run("crossing overlaps explicit terms", func(t *testing.T) {
		f, err := Parse("a + a*b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a:b"}, termStrings(f.Terms))
	})
}

func TestParse_Intercept(t *testing.T) {
	t.Run("minus one removes", func(t *testing.T) {
		f, err := Parse("x - 1")
		require.NoError(t, err)
		assert.False(t, f.Intercept)
	})

	t.Run("plus zero removes", func(t *testing.T) {
		f, err := Parse("x + 0")
		require.NoError(t, err)
		assert.False(t, f.Intercept)
	})

	t.Run("explicit one keeps", func(t *testing.T) {
		f, err := Parse("x + 1")
		require.NoError(t, err)
		assert.True(t, f.Intercept)
	})

	t.Run("intercept-only model", func(t *testing.T) {
		f, err := Parse("y ~ 1")
		require.NoError(t, err)
		assert.True(t, f.Intercept)
		assert.Empty(t, f.Terms)
	})
}

func TestParse_TermRemoval(t *testing.T) {
	f, err := Parse("a*b - a:b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, termStrings(f.Terms))
}

func TestParse_Malformed(t *testing.T) {
	exprs := []string{
		"",
		"   ",
		"~",
		"y ~",
		"x ++ y",
		"x +",
		"+ x", // leading operator leaves an empty term
		"y ~ x ~ z",
		"2x",
		"x()",
		"a::b",
		"a * ",
		"x - 0",
		"- 1", // no terms and no intercept
		"a b",
	}
	for _, expr := range exprs {
		_, err := Parse(expr)
		assert.ErrorIs(t, err, ErrMalformedFormula, "expr %q", expr)
	}
}

func TestContrastTypeStrings(t *testing.T) {
	assert.Equal(t, "Treatment", Treatment.String())
	assert.Equal(t, "Sum", Sum.String())
	assert.Equal(t, "Helmert", Helmert.String())
	assert.Equal(t, "Unknown", ContrastType(0xff).String())

	ct, ok := ContrastTypeFromString("helmert")
	require.True(t, ok)
	assert.Equal(t, Helmert, ct)

	_, ok = ContrastTypeFromString("polynomial")
	assert.False(t, ok)
}
