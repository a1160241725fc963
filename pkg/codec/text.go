package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

var _ TextEncoder = Base64Text{}

// Base64Text encodes text payloads as padded standard base64 before they're compressed.
// Only valid UTF-8 is accepted on the way in, and required on the way out.
type Base64Text struct{}

func (Base64Text) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrEncode)
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(s)))
	base64.StdEncoding.Encode(out, []byte(s))
	return out, nil
}

func (Base64Text) Decode(data []byte) (string, error) {
	// Line breaks are silently skipped by the decoder, so they're rejected here.
	if bytes.ContainsAny(data, "\r\n") {
		return "", fmt.Errorf("%w: line breaks are not allowed", ErrDecode)
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Strict().Decode(out, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	out = out[:n]
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: decoded text is not valid UTF-8", ErrDecode)
	}
	return string(out), nil
}
