package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenKey(t *testing.T) {
	var seed [SeedSize]byte
	key, err := GenKey(NewSeededSource(seed), 32)
	assert.NoError(t, err)
	assert.Len(t, key, 32)

	again, err := GenKey(NewSeededSource(seed), 32)
	assert.NoError(t, err)
	assert.Equal(t, key, again, "The same seed should yield the same key")
}

func TestGenKey_Empty(t *testing.T) {
	src, err := NewSource()
	assert.NoError(t, err)
	key, err := GenKey(src, 0)
	assert.NoError(t, err)
	assert.NotNil(t, key)
	assert.Len(t, key, 0)
}

func TestGenKey_Neg(t *testing.T) {
	_, err := GenKey(nil, 10)
	assert.Error(t, err)

	src, err := NewSource()
	assert.NoError(t, err)
	_, err = GenKey(src, -1)
	assert.Error(t, err)
}
