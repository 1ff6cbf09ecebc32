package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "x,group,dose\n1.5,A,10\n2.5,B,20\n3.5,A,30\n"

	f, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []string{"x", "group", "dose"}, f.Names())

	x, err := f.Numeric("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, x)

	assert.True(t, f.IsFactor("group"), "non-numeric column must become a factor")
	assert.False(t, f.IsFactor("dose"), "all-numeric column must stay numeric")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCSV)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("x,y\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, f.NumRows())
	assert.Equal(t, 2, f.NumCols())
}

func TestReadCSV_RaggedInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("x,y\n1\n"))
	assert.Error(t, err, "ragged rows must be rejected")
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	f := New()
	require.NoError(t, f.AddNumeric("x", []float64{0.5, 1, 2}))
	require.NoError(t, f.AddFactor("group", []string{"A", "B", "A"}))

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Equal(t, f.Names(), back.Names())
	assert.Equal(t, f.NumRows(), back.NumRows())

	x, err := back.Numeric("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 2}, x)

	g, err := back.Factor("group")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, g)
}
