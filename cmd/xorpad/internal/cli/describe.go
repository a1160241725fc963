package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/display"
	"github.com/saylorsolutions/xorpad/pkg/pad"
)

// Describe turns an error returned by a command into a message for the user.
// Each error kind gets its own message naming the failing stage, and the path involved if there is one.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	se := pad.AsStageError(err)
	if se == nil {
		switch {
		case errors.Is(err, display.ErrPairFormat):
			return fmt.Sprintf("Invalid inline input: %v", err)
		default:
			return fmt.Sprintf("Error: %v", err)
		}
	}

	var reason string
	switch {
	case errors.Is(err, pad.ErrIO):
		reason = "unable to access file"
	case errors.Is(err, pad.ErrLengthMismatch):
		reason = "cipher and key lengths differ, they don't belong together"
	case errors.Is(err, pad.ErrDecompression):
		reason = "cipher or key is corrupt, or they don't belong together"
	case errors.Is(err, pad.ErrCompression):
		reason = "unable to compress payload"
	case errors.Is(err, pad.ErrDecode):
		reason = "payload is not valid text, try --mode file"
	case errors.Is(err, pad.ErrEncode):
		reason = "input is not valid text"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		reason = "operation interrupted"
	default:
		reason = "unexpected failure"
	}

	if se.Path != "" {
		return fmt.Sprintf("Failed at %s stage (%s): %s: %v", se.Stage, se.Path, reason, se.Err)
	}
	return fmt.Sprintf("Failed at %s stage: %s: %v", se.Stage, reason, se.Err)
}
