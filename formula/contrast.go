package formula

import (
	"fmt"
	"strings"
)

// ContrastType selects how a factor's levels are encoded into numeric
// design matrix columns.
type ContrastType uint8

const (
	// Treatment encodes each non-reference level as an indicator column.
	// The reference is the lexicographically first level. This is the
	// default coding.
	Treatment ContrastType = 0x1
	// Sum encodes deviations from the grand mean; the last level carries
	// -1 in every column.
	Sum ContrastType = 0x2
	// Helmert contrasts each level against the mean of the preceding
	// levels.
	Helmert ContrastType = 0x3
)

// String returns the contrast name.
func (ct ContrastType) String() string {
	switch ct {
	case Treatment:
		return "Treatment"
	case Sum:
		return "Sum"
	case Helmert:
		return "Helmert"
	default:
		return "Unknown"
	}
}

// ContrastTypeFromString returns the ContrastType for a name
// (case-insensitive). The second result is false for unknown names.
func ContrastTypeFromString(name string) (ContrastType, bool) {
	switch strings.ToLower(name) {
	case "treatment":
		return Treatment, true
	case "sum":
		return Sum, true
	case "helmert":
		return Helmert, true
	default:
		return 0, false
	}
}

// contrastCodes returns the k x (k-1) coding matrix for the given levels,
// one row per level, plus a design-column name per coding column.
func contrastCodes(ct ContrastType, variable string, levels []string) ([][]float64, []string, error) {
	k := len(levels)
	codes := make([][]float64, k)
	for i := range codes {
		codes[i] = make([]float64, k-1)
	}
	names := make([]string, k-1)

	switch ct {
	case Treatment:
		// Column j is the indicator of level j+1; level 0 is the reference.
		for j := 0; j < k-1; j++ {
			codes[j+1][j] = 1
			names[j] = fmt.Sprintf("%s[T.%s]", variable, levels[j+1])
		}
	case Sum:
		// Column j: +1 for level j, -1 for the last level.
		for j := 0; j < k-1; j++ {
			codes[j][j] = 1
			codes[k-1][j] = -1
			names[j] = fmt.Sprintf("%s[S.%s]", variable, levels[j])
		}
	case Helmert:
		// Column j: levels 0..j get -1, level j+1 gets j+1 (contr.helmert).
		for j := 0; j < k-1; j++ {
			for i := 0; i <= j; i++ {
				codes[i][j] = -1
			}
			codes[j+1][j] = float64(j + 1)
			names[j] = fmt.Sprintf("%s[H.%s]", variable, levels[j+1])
		}
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownContrast, ct)
	}

	return codes, names, nil
}

// dummyCodes returns the k x k full indicator coding, used for the first
// factor main effect in intercept-free models.
func dummyCodes(variable string, levels []string) ([][]float64, []string) {
	k := len(levels)
	codes := make([][]float64, k)
	names := make([]string, k)
	for i := range levels {
		codes[i] = make([]float64, k)
		codes[i][i] = 1
		names[i] = fmt.Sprintf("%s[%s]", variable, levels[i])
	}

	return codes, names
}
