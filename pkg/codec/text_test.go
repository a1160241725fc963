package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Text_RoundTrip(t *testing.T) {
	tests := map[string]string{
		"Empty":      "",
		"ASCII":      "hello",
		"Whitespace": " \t\n ",
		"Multi-byte": "使用异或算法加密文件",
		"Emoji":      "🔒 locked",
	}
	var enc Base64Text
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			data, err := enc.Encode(text)
			require.NoError(t, err)
			got, err := enc.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, text, got)
		})
	}
}

func TestBase64Text_Encode(t *testing.T) {
	var enc Base64Text
	data, err := enc.Encode("hello")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", string(data))

	_, err = enc.Encode(string([]byte{0xff, 0xfe}))
	assert.True(t, errors.Is(err, ErrEncode))
}

func TestBase64Text_DecodeNeg(t *testing.T) {
	tests := map[string][]byte{
		"Not base64":    []byte("not base64!"),
		"Bad padding":   []byte("aGVsbG8"),
		"Invalid UTF-8": []byte("//4="),
		"Embedded LF":   []byte("aGVs\nbG8="),
		"Trailing CRLF": []byte("aGVsbG8=\r\n"),
	}
	var enc Base64Text
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := enc.Decode(data)
			assert.True(t, errors.Is(err, ErrDecode), "Expected decode error, got %v", err)
		})
	}
}
