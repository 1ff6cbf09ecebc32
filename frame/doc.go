// Package frame provides a small column-ordered data table for regression
// work.
//
// A Frame maps column names to equal-length columns of observations. Two
// column kinds exist:
//
//   - numeric columns ([]float64) enter model formulas as-is
//   - factor columns ([]string) are categorical; their level set is the
//     sorted list of distinct values and is what contrast encodings expand
//
// Frames are built once and then treated as read-only: accessors return
// copies, so code downstream of a Frame never mutates the caller's data.
// Column order is insertion order and is stable, which keeps design-matrix
// construction deterministic.
//
// # Basic Usage
//
//	f := frame.New()
//	_ = f.AddNumeric("x", []float64{0, 1, 2})
//	_ = f.AddFactor("group", []string{"A", "B", "A"})
//
// # CSV
//
// ReadCSV infers column kinds from the data: a column in which every cell
// parses as a float64 becomes numeric, anything else becomes a factor.
// WriteCSV emits the table back with the same column order.
package frame
