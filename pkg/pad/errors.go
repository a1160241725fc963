package pad

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/xorpad/pkg/codec"
	"github.com/saylorsolutions/xorpad/pkg/xor"
)

var (
	ErrIO             = errors.New("i/o failure")
	ErrEncode         = codec.ErrEncode
	ErrCompression    = codec.ErrCompression
	ErrDecompression  = codec.ErrDecompression
	ErrDecode         = codec.ErrDecode
	ErrLengthMismatch = xor.ErrLengthMismatch
)

// Stage identifies a step of the pipeline, or of the I/O around it.
type Stage int

const (
	StageRead Stage = iota + 1
	StageEncode
	StageCompress
	StageMask
	StageUnmask
	StageDecompress
	StageDecode
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageEncode:
		return "encode"
	case StageCompress:
		return "compress"
	case StageMask:
		return "mask"
	case StageUnmask:
		return "unmask"
	case StageDecompress:
		return "decompress"
	case StageDecode:
		return "decode"
	case StageWrite:
		return "write"
	default:
		return "unknown"
	}
}

// StageError reports which stage failed, and the path involved if any.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%v] %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("[%v] %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IOError creates a StageError for a read or write failure on path.
// The result matches ErrIO as well as the underlying error.
func IOError(stage Stage, path string, err error) error {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   fmt.Errorf("%w: %w", ErrIO, err),
	}
}

// AsStageError attempts to extract a StageError from err.
func AsStageError(err error) *StageError {
	var se *StageError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
