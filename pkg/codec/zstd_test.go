package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestZstd(t *testing.T, opts ZstdOptions) *Zstd {
	t.Helper()
	z, err := NewZstd(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, z.Close())
	})
	return z
}

func TestZstd_RoundTrip(t *testing.T) {
	tests := map[string][]byte{
		"Empty":      {},
		"Nil":        nil,
		"Short":      []byte("hi"),
		"Repetitive": bytes.Repeat([]byte("How wonderful life is while you're in the world. "), 200),
		"All bytes":  allBytes(),
	}

	for _, level := range []uint8{FastestLevel, DefaultLevel, BetterLevel, BestLevel} {
		z := newTestZstd(t, ZstdOptions{Level: level})
		assert.Equal(t, level, z.Level())
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				compressed, err := z.Compress(data)
				require.NoError(t, err)
				out, err := z.Decompress(compressed)
				require.NoError(t, err)
				assert.Len(t, out, len(data))
				if len(data) > 0 {
					assert.Equal(t, data, out)
				}
			})
		}
	}
}

func TestZstd_Empty(t *testing.T) {
	z := newTestZstd(t, ZstdOptions{})
	compressed, err := z.Compress(nil)
	require.NoError(t, err)
	assert.Len(t, compressed, 0, "An empty payload is an empty stream by default")
	out, err := z.Decompress(compressed)
	require.NoError(t, err)
	assert.Len(t, out, 0)

	framed := newTestZstd(t, ZstdOptions{ZeroFrames: true})
	compressed, err = framed.Compress(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, compressed, "ZeroFrames should emit a complete frame")
	out, err = framed.Decompress(compressed)
	require.NoError(t, err)
	assert.Len(t, out, 0)

	// Both empty forms are readable by either configuration.
	out, err = z.Decompress(compressed)
	require.NoError(t, err)
	assert.Len(t, out, 0)
}

func TestZstd_Small(t *testing.T) {
	z := newTestZstd(t, DefaultZstdOptions())
	data := []byte("abc")
	compressed, err := z.Compress(data)
	require.NoError(t, err)
	assert.NotEqual(t, data, compressed, "Small payloads must still be framed")
}

func TestZstd_Corruption(t *testing.T) {
	z := newTestZstd(t, DefaultZstdOptions())
	data := []byte(strings.Repeat("A test message that should be screened\n", 100))
	compressed, err := z.Compress(data)
	require.NoError(t, err)

	tests := map[string]func([]byte) []byte{
		"Flipped middle byte": func(b []byte) []byte {
			b[len(b)/2] ^= 0xff
			return b
		},
		"Flipped checksum": func(b []byte) []byte {
			b[len(b)-1] ^= 0x01
			return b
		},
		"Bad magic": func(b []byte) []byte {
			b[0] ^= 0xff
			return b
		},
		"Truncated": func(b []byte) []byte {
			return b[:len(b)-5]
		},
		"Trailing garbage": func(b []byte) []byte {
			return append(b, []byte("garbage!")...)
		},
		"Not a stream": func([]byte) []byte {
			return []byte("definitely not zstd")
		},
	}
	for name, corrupt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := corrupt(append([]byte(nil), compressed...))
			_, err := z.Decompress(buf)
			assert.True(t, errors.Is(err, ErrDecompression), "Expected decompression error, got %v", err)
		})
	}
}

func TestZstd_Closed(t *testing.T) {
	z, err := NewZstd(DefaultZstdOptions())
	require.NoError(t, err)
	require.NoError(t, z.Close())
	assert.NoError(t, z.Close(), "Closing twice is harmless")

	_, err = z.Compress([]byte("data"))
	assert.True(t, errors.Is(err, ErrCompression))
	_, err = z.Decompress([]byte("data"))
	assert.True(t, errors.Is(err, ErrDecompression))
}

func TestZstd_SizeLimit(t *testing.T) {
	z, err := NewZstd(ZstdOptions{MaxDecodedSize: 1024})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, z.Close())
	}()

	data := bytes.Repeat([]byte{'a'}, 1000)
	compressed, err := z.Compress(data)
	require.NoError(t, err)
	out, err := z.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = z.Compress(bytes.Repeat([]byte{'a'}, 4096))
	assert.True(t, errors.Is(err, ErrCompression), "Payloads that can't be decompressed must be refused up front")
}

func TestNewZstd_Neg(t *testing.T) {
	_, err := NewZstd(ZstdOptions{Level: BestLevel + 1})
	assert.Error(t, err)
}

func allBytes() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
