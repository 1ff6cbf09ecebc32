// Package formula translates model formulas into numeric design matrices.
//
// A formula describes the terms of a linear model over the columns of a
// frame.Frame, using a subset of the Wilkinson notation familiar from R and
// patsy:
//
//	y ~ x + group        response y, main effects x and group
//	x + group            same right-hand side, no response
//	a:b                  interaction of a and b
//	a*b                  crossing, expands to a + b + a:b
//	x - 1  (or  x + 0)   drop the intercept
//
// Parentheses and transformations are not supported; anything outside the
// grammar above fails with ErrMalformedFormula.
//
// # Design matrix construction
//
// The design matrix has one row per observation and one column per expanded
// model term:
//
//   - The intercept, when present, is the first column and is named
//     "Intercept".
//   - Remaining terms are ordered by interaction degree and then by first
//     appearance in the formula, so a given formula always produces the
//     same column ordering. Duplicate terms are dropped.
//   - A numeric variable contributes a single column carrying its values.
//   - A factor variable with k levels contributes k-1 contrast columns.
//     Levels are sorted lexicographically; the default coding is treatment
//     coding with the first level as reference. When the intercept has been
//     removed, the first factor main effect is expanded into k full
//     indicator columns instead, restoring full rank. The promotion covers
//     main effects only: a factor appearing only inside interactions keeps
//     its k-1 contrast columns, so "0 + x:g" spans fewer columns than
//     "0 + x:g + g" would. Name the main effect to widen the span.
//   - Interaction columns are element-wise products of their component
//     columns, named by joining the component names with ":".
//
// The exact coding scheme and column ordering are part of this package's
// contract: coefficient vectors are aligned with design matrix columns by
// position, so both must be reproducible across runs and platforms.
//
// # Contrast encodings
//
// Three codings are available for factor variables (see ContrastType):
//
//   - Treatment: indicator columns against a reference level, one column
//     per non-reference level, named v[T.level].
//   - Sum: deviation coding; the last level carries -1 in every column,
//     names v[S.level].
//   - Helmert: each level against the mean of the preceding levels, names
//     v[H.level].
//
// # Example
//
//	f, err := formula.Parse("x + group")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := f.ModelMatrix(data, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Columns) // [Intercept x group[T.B]]
package formula
