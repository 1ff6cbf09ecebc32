// Package hash derives stable 64-bit identifiers from strings.
//
// Simulation code uses these identifiers as reproducible random seeds: the
// same experiment label always maps to the same seed, on every platform.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
