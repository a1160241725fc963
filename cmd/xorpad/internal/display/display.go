// Package display renders xorpad artifacts for a terminal.
// This is only a presentation transcoding, it has nothing to do with how text payloads are encoded for the pipeline.
package display

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/xorpad/pkg/pad"
)

// EmptyToken stands in for an empty buffer in the inline pair form.
const EmptyToken = "-"

var (
	ErrPairFormat = errors.New("inline input must contain exactly two tokens, CIPHER and KEY")
)

// EncodeBytes renders data as standard base64, or EmptyToken if data is empty.
func EncodeBytes(data []byte) string {
	if len(data) == 0 {
		return EmptyToken
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBytes reverses EncodeBytes.
func DecodeBytes(s string) ([]byte, error) {
	if s == EmptyToken {
		return []byte{}, nil
	}
	return base64.StdEncoding.DecodeString(s)
}

// FormatPair renders a sealed pair on a single line as "CIPHER KEY".
func FormatPair(sealed pad.Sealed) string {
	return EncodeBytes(sealed.Cipher) + " " + EncodeBytes(sealed.Key)
}

// ParsePair reads the form written by FormatPair.
// Tokens may be separated by any amount of whitespace.
func ParsePair(s string) (pad.Sealed, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return pad.Sealed{}, fmt.Errorf("%w, got %d", ErrPairFormat, len(parts))
	}
	cipher, err := DecodeBytes(parts[0])
	if err != nil {
		return pad.Sealed{}, fmt.Errorf("failed to decode cipher: %w", err)
	}
	key, err := DecodeBytes(parts[1])
	if err != nil {
		return pad.Sealed{}, fmt.Errorf("failed to decode key: %w", err)
	}
	return pad.Sealed{Cipher: cipher, Key: key}, nil
}

// FormatOutput renders a decrypted payload for printing.
// Text is printed as-is, while binary payloads are rendered as base64 since they may not be printable.
func FormatOutput(out pad.Output) string {
	if out.Kind == pad.KindText {
		return out.Text
	}
	return EncodeBytes(out.Bytes)
}
