// Package codec provides the reversible byte transforms that surround pad masking:
// a general purpose compressor, and a canonical encoding for text payloads.
package codec

import "errors"

var (
	ErrCompression   = errors.New("compression failed")
	ErrDecompression = errors.New("decompression failed")
	ErrEncode        = errors.New("text encoding failed")
	ErrDecode        = errors.New("text decoding failed")
)

// Codec is a lossless compressor.
// Decompress(Compress(x)) must equal x for every x, including an empty slice.
type Codec interface {
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress restores the original data, and returns an error wrapping ErrDecompression if data isn't a valid stream.
	Decompress(data []byte) ([]byte, error)

	// Close releases compressor resources.
	Close() error
}

// TextEncoder maps a string to a canonical byte form and back.
type TextEncoder interface {
	Encode(s string) ([]byte, error)
	Decode(data []byte) (string, error)
}
