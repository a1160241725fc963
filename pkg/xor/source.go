package xor

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

const (
	// SeedSize is the number of bytes needed to seed a ChaChaSource.
	SeedSize = chacha20.KeySize

	sourceBlockSize = 512
)

// ByteSource produces one uniformly distributed byte per call.
// Every call is independent of the ones before it.
type ByteSource interface {
	NextByte() byte
}

// SourceFunc allows a plain function to be used as a ByteSource.
type SourceFunc func() byte

func (f SourceFunc) NextByte() byte {
	return f()
}

var _ ByteSource = (*ChaChaSource)(nil)

// ChaChaSource is a ByteSource backed by a ChaCha20 keystream.
// It's not safe for concurrent use.
type ChaChaSource struct {
	stream *chacha20.Cipher
	block  []byte
	cur    int
}

// NewSource creates a ChaChaSource seeded from the OS entropy pool.
// Seeding is the only step that may fail, so every subsequent draw is infallible.
func NewSource() (*ChaChaSource, error) {
	var seed [SeedSize]byte
	n, err := io.ReadFull(rand.Reader, seed[:])
	if n < SeedSize {
		return nil, fmt.Errorf("failed to read seed from entropy pool: %v", err)
	}
	return NewSeededSource(seed), nil
}

// NewSeededSource creates a ChaChaSource with a caller-provided seed.
// The same seed always produces the same byte sequence.
func NewSeededSource(seed [SeedSize]byte) *ChaChaSource {
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// Key and nonce sizes are fixed by the types used here.
		panic(err)
	}
	return &ChaChaSource{
		stream: stream,
		block:  make([]byte, sourceBlockSize),
		cur:    sourceBlockSize,
	}
}

func (s *ChaChaSource) NextByte() byte {
	if s.cur == len(s.block) {
		s.refill()
	}
	b := s.block[s.cur]
	s.cur++
	return b
}

func (s *ChaChaSource) refill() {
	clear(s.block)
	s.stream.XORKeyStream(s.block, s.block)
	s.cur = 0
}
