package xor

import (
	"errors"
)

// GenKey will draw length bytes from src to be used as a pad key.
// A zero length yields an empty key.
func GenKey(src ByteSource, length int) ([]byte, error) {
	if src == nil {
		return nil, errors.New("asked to generate a key without a byte source")
	}
	if length < 0 {
		return nil, errors.New("asked to generate a negative length key")
	}
	key := make([]byte, length)
	for i := range key {
		key[i] = src.NextByte()
	}
	return key, nil
}
