package compress

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned for compression types the package does not
// recognize, including ones parsed from unfamiliar cache file extensions.
var ErrUnknownType = errors.New("compress: unknown compression type")

// Type identifies a compression algorithm.
type Type uint8

const (
	// TypeNone stores payloads uncompressed.
	TypeNone Type = 0x0
	// TypeZstd is Zstandard, the dataset cache default.
	TypeZstd Type = 0x1
	// TypeS2 is the S2 extension of Snappy.
	TypeS2 Type = 0x2
	// TypeLZ4 is LZ4 block compression.
	TypeLZ4 Type = 0x3
)

// String returns the lowercase algorithm name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(0x%02X)", uint8(t))
	}
}

// Ext returns the file extension appended to cached payloads, empty for
// TypeNone.
func (t Type) Ext() string {
	switch t {
	case TypeZstd:
		return ".zst"
	case TypeS2:
		return ".s2"
	case TypeLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// TypeFromExt maps a cache file extension back to its compression type.
func TypeFromExt(ext string) (Type, error) {
	switch ext {
	case "":
		return TypeNone, nil
	case ".zst":
		return TypeZstd, nil
	case ".s2":
		return TypeS2, nil
	case ".lz4":
		return TypeLZ4, nil
	default:
		return TypeNone, fmt.Errorf("%w: extension %q", ErrUnknownType, ext)
	}
}

// Compressor compresses a payload into a newly allocated slice. The
// input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm, returning an
// error on corrupted or mismatched input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoopCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in codec for a compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
}
