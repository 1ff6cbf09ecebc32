package simdata

import "errors"

var (
	// ErrDimensionMismatch is returned when the coefficient vector length
	// differs from the design matrix column count.
	ErrDimensionMismatch = errors.New("simdata: coefficient length does not match design matrix columns")

	// ErrInvalidSigma is returned for a negative noise scale.
	ErrInvalidSigma = errors.New("simdata: sigma must be non-negative")

	// ErrSigmaLength is returned when a per-observation sigma vector does
	// not have one entry per row.
	ErrSigmaLength = errors.New("simdata: sigma vector length does not match row count")

	// ErrEmptyData is returned when the data frame is nil or has no rows.
	ErrEmptyData = errors.New("simdata: data must contain at least one row")
)
