package compress

// NoopCodec passes payloads through untouched. It is used when caching
// is wanted without the CPU cost of compression, and as a baseline in
// benchmarks.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a pass-through codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns the input slice as-is. The result shares memory with
// the input.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is. The result shares memory
// with the input.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
