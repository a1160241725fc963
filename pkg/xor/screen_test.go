package xor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPadScreenNeg(t *testing.T) {
	conf := newMaskConf(nil)
	_, err := newPadScreen(nil, 1, conf)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	_, err = newPadScreen([]byte{0}, 0, conf)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	_, err = newPadScreen([]byte{0, 1}, 3, conf)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestPadScreen_Apply(t *testing.T) {
	var (
		in  = []byte{0x0, 0x1, 0xff}
		key = []byte{0x1, 0x1, 0x0f}
		out = make([]byte, 3)
	)
	scr, err := newPadScreen(key, len(in), newMaskConf(nil))
	assert.NoError(t, err)
	scr.apply(out, in)
	assert.Equal(t, []byte{0x1, 0x0, 0xf0}, out)
}
