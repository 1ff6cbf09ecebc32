package simdata

import (
	"math/rand/v2"
	"slices"

	"github.com/statkit/reglin/formula"
	"github.com/statkit/reglin/internal/hash"
	"github.com/statkit/reglin/internal/options"
)

type config struct {
	contrasts map[string]formula.ContrastType
	sigmas    []float64
	src       rand.Source
}

// Option is a functional option for Rlm.
type Option = options.Option[*config]

// WithContrasts overrides the contrast coding of individual factor
// variables. Keys must name factor columns used by the formula; variables
// not listed keep the default treatment coding.
func WithContrasts(contrasts map[string]formula.ContrastType) Option {
	return options.NoError(func(cfg *config) {
		cfg.contrasts = contrasts
	})
}

// WithSigmas supplies a per-observation noise scale, overriding the scalar
// sigma argument. The vector must have one non-negative entry per row.
func WithSigmas(sigmas []float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.sigmas = slices.Clone(sigmas)
	})
}

// WithSource draws noise from the given random source instead of the
// shared process-wide one.
func WithSource(src rand.Source) Option {
	return options.NoError(func(cfg *config) {
		cfg.src = src
	})
}

// WithSeed draws noise from a PCG source seeded with the given value.
// Identical inputs and seed always produce identical output.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *config) {
		cfg.src = rand.NewPCG(seed, seed)
	})
}

// WithSeedString derives the seed from a label via xxHash64. Useful for
// naming replication streams ("batch-3") instead of numbering them.
func WithSeedString(label string) Option {
	return options.NoError(func(cfg *config) {
		seed := hash.ID(label)
		cfg.src = rand.NewPCG(seed, seed)
	})
}
