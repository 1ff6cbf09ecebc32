package formula

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/reglin/frame"
)

// Design is a fully expanded design matrix with its column names.
//
// Column j of Matrix corresponds to Columns[j]; coefficient vectors are
// aligned with this ordering by position.
type Design struct {
	// Matrix holds one row per observation, one column per expanded term.
	Matrix *mat.Dense
	// Columns holds the design column names, e.g. [Intercept x group[T.B]].
	Columns []string
}

// NumRows returns the number of observations.
func (d *Design) NumRows() int {
	r, _ := d.Matrix.Dims()
	return r
}

// NumCols returns the number of design columns.
func (d *Design) NumCols() int {
	_, c := d.Matrix.Dims()
	return c
}

// ModelMatrix expands the formula against the data into a design matrix.
//
// The contrasts map optionally overrides the coding of individual factor
// variables; a nil map applies treatment coding throughout. Every key must
// name a factor column that appears in the formula.
//
// Errors: ErrMissingVariable when the formula or the contrasts reference a
// column absent from the data (or a contrast names a variable the formula
// does not use), ErrNotFactor when a contrast targets a numeric column,
// ErrUnknownContrast for an unsupported coding, ErrNoObservations for an
// empty table.
func (f *Formula) ModelMatrix(data *frame.Frame, contrasts map[string]ContrastType) (*Design, error) {
	if data == nil {
		return nil, ErrNilData
	}
	n := data.NumRows()
	if n == 0 {
		return nil, ErrNoObservations
	}

	if err := f.checkVariables(data); err != nil {
		return nil, err
	}
	if err := f.checkContrasts(data, contrasts); err != nil {
		return nil, err
	}

	var (
		cols  [][]float64
		names []string
	)
	if f.Intercept {
		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		cols = append(cols, ones)
		names = append(names, "Intercept")
	}

	// Without an intercept the first factor main effect is expanded into a
	// full set of indicator columns to keep the design full rank.
	firstFactorFull := !f.Intercept

	for _, term := range f.Terms {
		termCols, termNames, full, err := expandTerm(data, term, contrasts, firstFactorFull)
		if err != nil {
			return nil, err
		}
		firstFactorFull = firstFactorFull && !full
		cols = append(cols, termCols...)
		names = append(names, termNames...)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: formula produced no design columns", ErrMalformedFormula)
	}

	m := mat.NewDense(n, len(cols), nil)
	for j, col := range cols {
		m.SetCol(j, col)
	}

	return &Design{Matrix: m, Columns: names}, nil
}

func (f *Formula) checkVariables(data *frame.Frame) error {
	for _, term := range f.Terms {
		for _, v := range term.Vars {
			if !data.Has(v) {
				return fmt.Errorf("%w: %q", ErrMissingVariable, v)
			}
		}
	}

	return nil
}

func (f *Formula) checkContrasts(data *frame.Frame, contrasts map[string]ContrastType) error {
	if len(contrasts) == 0 {
		return nil
	}

	referenced := make(map[string]bool)
	for _, term := range f.Terms {
		for _, v := range term.Vars {
			referenced[v] = true
		}
	}

	// Sorted keys keep the reported error deterministic.
	keys := make([]string, 0, len(contrasts))
	for name := range contrasts {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	for _, name := range keys {
		if !referenced[name] {
			return fmt.Errorf("%w: contrast given for %q, which the formula does not use", ErrMissingVariable, name)
		}
		if !data.Has(name) {
			return fmt.Errorf("%w: %q", ErrMissingVariable, name)
		}
		if !data.IsFactor(name) {
			return fmt.Errorf("%w: %q", ErrNotFactor, name)
		}
		switch contrasts[name] {
		case Treatment, Sum, Helmert:
		default:
			return fmt.Errorf("%w: %d for variable %q", ErrUnknownContrast, contrasts[name], name)
		}
	}

	return nil
}

// expandTerm builds the design columns for one term. The returned bool
// reports whether a full-dummy factor expansion was used.
func expandTerm(data *frame.Frame, term Term, contrasts map[string]ContrastType, allowFullDummy bool) ([][]float64, []string, bool, error) {
	n := data.NumRows()

	// Start from a single implicit column of ones; each variable either
	// scales it (numeric) or crosses it with encoded factor columns.
	cols := make([][]float64, 1)
	cols[0] = make([]float64, n)
	for i := range cols[0] {
		cols[0][i] = 1
	}
	names := []string{""}

	usedFullDummy := false
	for _, v := range term.Vars {
		if !data.IsFactor(v) {
			x, err := data.Numeric(v)
			if err != nil {
				return nil, nil, false, err
			}
			for _, col := range cols {
				for i := range col {
					col[i] *= x[i]
				}
			}
			for j := range names {
				names[j] = joinName(names[j], v)
			}

			continue
		}

		full := allowFullDummy && term.Degree() == 1 && !usedFullDummy
		fcols, fnames, err := encodeFactor(data, v, contrasts[v], full)
		if err != nil {
			return nil, nil, false, err
		}
		usedFullDummy = usedFullDummy || full

		crossed := make([][]float64, 0, len(cols)*len(fcols))
		crossedNames := make([]string, 0, len(cols)*len(fcols))
		for a, col := range cols {
			for b, fcol := range fcols {
				prod := make([]float64, n)
				for i := range prod {
					prod[i] = col[i] * fcol[i]
				}
				crossed = append(crossed, prod)
				crossedNames = append(crossedNames, joinName(names[a], fnames[b]))
			}
		}
		cols, names = crossed, crossedNames
	}

	return cols, names, usedFullDummy, nil
}

// encodeFactor expands a factor column into its contrast (or full dummy)
// design columns.
func encodeFactor(data *frame.Frame, v string, ct ContrastType, full bool) ([][]float64, []string, error) {
	labels, err := data.Factor(v)
	if err != nil {
		return nil, nil, err
	}
	levels, err := data.Levels(v)
	if err != nil {
		return nil, nil, err
	}

	var (
		codes [][]float64
		names []string
	)
	if full {
		codes, names = dummyCodes(v, levels)
	} else {
		if ct == 0 {
			ct = Treatment
		}
		codes, names, err = contrastCodes(ct, v, levels)
		if err != nil {
			return nil, nil, err
		}
	}

	levelIndex := make(map[string]int, len(levels))
	for i, level := range levels {
		levelIndex[level] = i
	}

	width := len(names)
	cols := make([][]float64, width)
	for j := range cols {
		cols[j] = make([]float64, len(labels))
		for i, label := range labels {
			cols[j][i] = codes[levelIndex[label]][j]
		}
	}

	return cols, names, nil
}

func joinName(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}

	return a + ":" + b
}
