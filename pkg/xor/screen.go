package xor

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("masked data and key lengths differ")
)

// padScreen applies a key byte-for-byte and reports progress as it goes.
// Unlike a repeating screen, it never wraps around the key.
type padScreen struct {
	key      []byte
	progress ProgressFunc
	interval int
	reported int
}

func newPadScreen(key []byte, dataLen int, conf *maskConf) (*padScreen, error) {
	if len(key) != dataLen {
		return nil, fmt.Errorf("%w: masked data is %d bytes, key is %d bytes", ErrLengthMismatch, dataLen, len(key))
	}
	return &padScreen{
		key:      key,
		progress: conf.progress,
		interval: conf.interval,
		reported: -1,
	}, nil
}

// apply writes src XOR key into dst, which must be at least len(src) long.
func (s *padScreen) apply(dst, src []byte) {
	for i := range src {
		dst[i] = src[i] ^ s.key[i]
		if done := i + 1; done%s.interval == 0 {
			s.report(done, len(src))
		}
	}
	s.report(len(src), len(src))
}

func (s *padScreen) report(done, total int) {
	if s.progress == nil || done == s.reported {
		return
	}
	s.reported = done
	s.progress(done, total)
}
