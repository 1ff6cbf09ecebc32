// Package compress provides the codecs used for the on-disk dataset
// cache.
//
// Cached CSV payloads compress extremely well, so the dataset package
// stores them through one of the codecs here. Four algorithms are
// available:
//
//   - TypeNone: pass-through, no compression
//   - TypeZstd: best ratio, the cache default
//   - TypeS2: fastest, moderate ratio
//   - TypeLZ4: fast with a reasonable ratio
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding when cgo is enabled, and a pure-Go fallback otherwise (or when
// building with the purezstd tag).
//
// Codecs are stateless values and safe for concurrent use; internal
// encoder state is pooled.
package compress
