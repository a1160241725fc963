package codec

import (
	"fmt"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
)

// Compression level constants define the trade-off between compression ratio and speed.
const (
	FastestLevel uint8 = uint8(zstd.SpeedFastest)
	DefaultLevel uint8 = uint8(zstd.SpeedDefault)
	BetterLevel  uint8 = uint8(zstd.SpeedBetterCompression)
	BestLevel    uint8 = uint8(zstd.SpeedBestCompression)

	DefaultMaxDecodedSize uint64 = 1 << 30
)

// ZstdOptions configures a Zstd codec.
type ZstdOptions struct {
	// Level is between FastestLevel and BestLevel, 0 selects DefaultLevel.
	Level uint8

	// EncoderConcurrency and DecoderConcurrency bound the number of goroutines used by the encoder and decoder.
	// 0 selects a single goroutine.
	EncoderConcurrency uint8
	DecoderConcurrency uint8

	// ZeroFrames makes an empty payload compress to a complete frame instead of zero bytes.
	// Either form decompresses to an empty payload.
	ZeroFrames bool

	// MaxDecodedSize limits how much memory a single Decompress call may allocate, 0 selects DefaultMaxDecodedSize.
	// Compress refuses payloads larger than this, since they couldn't be decompressed again.
	MaxDecodedSize uint64
}

// DefaultZstdOptions returns options that favor predictable single-threaded behavior.
func DefaultZstdOptions() ZstdOptions {
	return ZstdOptions{
		Level:              DefaultLevel,
		EncoderConcurrency: 1,
		DecoderConcurrency: 1,
		MaxDecodedSize:     DefaultMaxDecodedSize,
	}
}

// ValidateZstdOptions checks that options are within acceptable bounds.
func ValidateZstdOptions(opts ZstdOptions) error {
	if opts.Level != 0 && (opts.Level < FastestLevel || opts.Level > BestLevel) {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, opts.Level)
	}
	return nil
}

var _ Codec = (*Zstd)(nil)

// Zstd implements Codec using the zstd compression algorithm.
// Every payload is framed with a content checksum, which is the only integrity signal the pipeline has.
// It's safe for concurrent use until Close is called.
type Zstd struct {
	level   uint8
	maxSize uint64
	closed  atomic.Bool
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstd creates a zstd codec with the given options.
// Zero values are replaced with the values from DefaultZstdOptions.
func NewZstd(opts ZstdOptions) (*Zstd, error) {
	if err := ValidateZstdOptions(opts); err != nil {
		return nil, err
	}
	defaults := DefaultZstdOptions()
	if opts.Level == 0 {
		opts.Level = defaults.Level
	}
	if opts.EncoderConcurrency == 0 {
		opts.EncoderConcurrency = defaults.EncoderConcurrency
	}
	if opts.DecoderConcurrency == 0 {
		opts.DecoderConcurrency = defaults.DecoderConcurrency
	}
	if opts.MaxDecodedSize == 0 {
		opts.MaxDecodedSize = defaults.MaxDecodedSize
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(int(opts.EncoderConcurrency)),
		zstd.WithEncoderCRC(true),
		zstd.WithZeroFrames(opts.ZeroFrames),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency)),
		zstd.WithDecoderMaxMemory(opts.MaxDecodedSize),
	)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &Zstd{encoder: encoder, decoder: decoder, level: opts.Level, maxSize: opts.MaxDecodedSize}, nil
}

// Compress frames data as a single zstd stream, regardless of its size.
// Data larger than the configured MaxDecodedSize is rejected.
func (z *Zstd) Compress(data []byte) ([]byte, error) {
	if z.closed.Load() {
		return nil, fmt.Errorf("%w: codec is closed", ErrCompression)
	}
	if uint64(len(data)) > z.maxSize {
		return nil, fmt.Errorf("%w: payload is %d bytes, the limit is %d bytes", ErrCompression, len(data), z.maxSize)
	}
	return z.encoder.EncodeAll(data, nil), nil
}

// Decompress restores data from its compressed form.
// Anything other than a sequence of complete, valid frames is rejected, including trailing bytes.
func (z *Zstd) Decompress(data []byte) ([]byte, error) {
	if z.closed.Load() {
		return nil, fmt.Errorf("%w: codec is closed", ErrDecompression)
	}
	out, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	return out, nil
}

// Level returns the compression level in use.
func (z *Zstd) Level() uint8 {
	return z.level
}

// Close releases the encoder and decoder.
// After closing, Compress and Decompress return errors.
func (z *Zstd) Close() error {
	if !z.closed.CompareAndSwap(false, true) {
		return nil
	}
	z.decoder.Close()
	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder: %w", err)
	}
	return nil
}
