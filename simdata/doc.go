// Package simdata generates synthetic response variables with a linear
// regression structure.
//
// Given a model formula, a coefficient vector, a noise scale and a data
// frame, Rlm computes
//
//	y = Xβ + ε,  ε ~ N(0, σ²)
//
// where X is the design matrix expanded from the formula (see the formula
// package for the expansion and contrast rules). The coefficient vector is
// aligned with the design matrix columns by position, so its length must
// match the design column count exactly.
//
// # Basic Usage
//
//	data := frame.New()
//	_ = data.AddNumeric("x", []float64{0, 1, 2, 3})
//
//	y, err := simdata.Rlm("x", []float64{1, 2}, 0.5, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Reproducibility
//
// Noise draws come from a gonum distuv.Normal. By default the shared
// process-wide source is used; pass WithSeed, WithSeedString or WithSource
// for reproducible streams:
//
//	y1, _ := simdata.Rlm("x", beta, 1, data, simdata.WithSeed(42))
//	y2, _ := simdata.Rlm("x", beta, 1, data, simdata.WithSeed(42))
//	// y1 and y2 are identical
//
// # Heteroscedastic noise
//
// WithSigmas replaces the scalar noise scale with a per-observation vector,
// for simulating non-constant error variance.
package simdata
