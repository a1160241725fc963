package pad

import (
	"fmt"

	"github.com/saylorsolutions/xorpad/pkg/codec"
)

// Kind tells decryption how the payload must be restored.
type Kind int

const (
	// KindBinary payloads are raw bytes, usually the contents of a file.
	KindBinary Kind = iota
	// KindText payloads are strings that went through a codec.TextEncoder.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "file"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind accepts "text", "file", or "binary".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "text":
		return KindText, nil
	case "file", "binary":
		return KindBinary, nil
	default:
		return 0, fmt.Errorf("unknown payload kind '%s', expected 'text' or 'file'", s)
	}
}

// Input is a payload to be encrypted, created with either Text or Binary.
type Input interface {
	Kind() Kind
	plaintext(enc codec.TextEncoder) ([]byte, error)
}

type textInput string

func (textInput) Kind() Kind {
	return KindText
}

func (in textInput) plaintext(enc codec.TextEncoder) ([]byte, error) {
	return enc.Encode(string(in))
}

type binaryInput []byte

func (binaryInput) Kind() Kind {
	return KindBinary
}

func (in binaryInput) plaintext(codec.TextEncoder) ([]byte, error) {
	return in, nil
}

// Text is a literal string payload. An empty string is a valid payload.
func Text(s string) Input {
	return textInput(s)
}

// Binary is a raw byte payload, used as-is. An empty payload is valid.
func Binary(data []byte) Input {
	return binaryInput(data)
}

// Sealed is a masked payload and the key needed to unmask it.
// For a valid pair, len(Cipher) == len(Key).
type Sealed struct {
	Cipher []byte
	Key    []byte
}

// Output is a decrypted payload.
// Bytes is always populated, Text only for KindText.
type Output struct {
	Kind  Kind
	Text  string
	Bytes []byte
}
