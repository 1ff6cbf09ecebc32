package formula

import "errors"

// Sentinel errors returned by this package. Callers match them with
// errors.Is; messages carry additional context via wrapping.
var (
	// ErrMalformedFormula is returned when a formula cannot be parsed.
	ErrMalformedFormula = errors.New("formula: malformed formula")

	// ErrMissingVariable is returned when a formula references a column
	// that is not present in the data.
	ErrMissingVariable = errors.New("formula: variable not found in data")

	// ErrUnknownContrast is returned for a ContrastType this package does
	// not implement.
	ErrUnknownContrast = errors.New("formula: unknown contrast type")

	// ErrNotFactor is returned when a contrast is requested for a column
	// that is not a factor.
	ErrNotFactor = errors.New("formula: contrast requested for non-factor variable")

	// ErrNilData is returned when no data frame is supplied.
	ErrNilData = errors.New("formula: data frame is nil")

	// ErrNoObservations is returned when the data frame has no rows.
	ErrNoObservations = errors.New("formula: data frame has no rows")
)
