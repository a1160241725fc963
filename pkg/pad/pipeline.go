package pad

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/saylorsolutions/xorpad/pkg/codec"
	"github.com/saylorsolutions/xorpad/pkg/xor"
)

// Pipeline runs encryption and decryption with its configured codec, text encoder, and byte source.
// A Pipeline is not safe for concurrent use, since its byte source is a single stream.
type Pipeline struct {
	codec     codec.Codec
	ownsCodec bool
	text      codec.TextEncoder
	source    xor.ByteSource
	log       *zap.Logger
	progress  xor.ProgressFunc
	interval  int
}

// Opt configures a Pipeline. If any Opt returns an error, New returns it.
type Opt = func(*Pipeline) error

// WithCodec replaces the default zstd codec. The caller remains responsible for closing it.
func WithCodec(c codec.Codec) Opt {
	return func(p *Pipeline) error {
		if c == nil {
			return errors.New("nil codec")
		}
		if p.ownsCodec && p.codec != nil {
			_ = p.codec.Close()
		}
		p.codec = c
		p.ownsCodec = false
		return nil
	}
}

// WithZstdOptions creates the pipeline's own zstd codec with the given options.
func WithZstdOptions(opts codec.ZstdOptions) Opt {
	return func(p *Pipeline) error {
		z, err := codec.NewZstd(opts)
		if err != nil {
			return err
		}
		p.replaceOwnedCodec(z)
		return nil
	}
}

// WithTextEncoder replaces the default base64 text encoder.
func WithTextEncoder(enc codec.TextEncoder) Opt {
	return func(p *Pipeline) error {
		if enc == nil {
			return errors.New("nil text encoder")
		}
		p.text = enc
		return nil
	}
}

// WithSource replaces the default entropy source used to generate keys.
func WithSource(src xor.ByteSource) Opt {
	return func(p *Pipeline) error {
		if src == nil {
			return errors.New("nil byte source")
		}
		p.source = src
		return nil
	}
}

// WithLogger sets the logger used to trace stage transitions at debug level.
func WithLogger(log *zap.Logger) Opt {
	return func(p *Pipeline) error {
		if log != nil {
			p.log = log
		}
		return nil
	}
}

// WithProgress observes the mask and unmask stages, calling fn every interval bytes.
// An interval <= 0 uses xor.DefaultProgressInterval.
func WithProgress(fn xor.ProgressFunc, interval int) Opt {
	return func(p *Pipeline) error {
		p.progress = fn
		p.interval = interval
		return nil
	}
}

// New creates a Pipeline. Unless overridden, it uses a zstd codec with default options,
// codec.Base64Text for text payloads, and a byte source seeded from the OS entropy pool.
func New(opts ...Opt) (*Pipeline, error) {
	p := &Pipeline{
		text: codec.Base64Text{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			_ = p.Close()
			return nil, err
		}
	}
	if p.codec == nil {
		z, err := codec.NewZstd(codec.DefaultZstdOptions())
		if err != nil {
			return nil, err
		}
		p.replaceOwnedCodec(z)
	}
	if p.source == nil {
		src, err := xor.NewSource()
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		p.source = src
	}
	return p, nil
}

func (p *Pipeline) replaceOwnedCodec(c codec.Codec) {
	if p.ownsCodec && p.codec != nil {
		_ = p.codec.Close()
	}
	p.codec = c
	p.ownsCodec = true
}

// Close releases the codec if the Pipeline created it.
func (p *Pipeline) Close() error {
	if p.ownsCodec && p.codec != nil {
		p.ownsCodec = false
		return p.codec.Close()
	}
	return nil
}

func (p *Pipeline) maskOpts() []xor.Opt {
	if p.progress == nil {
		return nil
	}
	return []xor.Opt{xor.WithProgress(p.progress), xor.WithProgressInterval(p.interval)}
}

// enter checks for cancellation before a stage starts.
// Stages themselves run to completion once started.
func (p *Pipeline) enter(ctx context.Context, stage Stage, size int) error {
	if err := ctx.Err(); err != nil {
		return &StageError{Stage: stage, Err: err}
	}
	p.log.Debug("entering stage", zap.Stringer("stage", stage), zap.Int("bytes", size))
	return nil
}

// Encrypt encodes (text only), compresses, and masks the input with a freshly generated key.
func (p *Pipeline) Encrypt(ctx context.Context, in Input) (Sealed, error) {
	if in == nil {
		return Sealed{}, &StageError{Stage: StageEncode, Err: errors.New("no input given")}
	}

	if err := p.enter(ctx, StageEncode, 0); err != nil {
		return Sealed{}, err
	}
	plain, err := in.plaintext(p.text)
	if err != nil {
		return Sealed{}, &StageError{Stage: StageEncode, Err: err}
	}

	if err := p.enter(ctx, StageCompress, len(plain)); err != nil {
		return Sealed{}, err
	}
	compressed, err := p.codec.Compress(plain)
	if err != nil {
		return Sealed{}, &StageError{Stage: StageCompress, Err: err}
	}

	if err := p.enter(ctx, StageMask, len(compressed)); err != nil {
		return Sealed{}, err
	}
	cipher, key, err := xor.Mask(p.source, compressed, p.maskOpts()...)
	if err != nil {
		return Sealed{}, &StageError{Stage: StageMask, Err: err}
	}

	p.log.Debug("encrypted payload",
		zap.Stringer("kind", in.Kind()),
		zap.Int("plaintext", len(plain)),
		zap.Int("cipher", len(cipher)),
	)
	return Sealed{Cipher: cipher, Key: key}, nil
}

// Decrypt unmasks, decompresses, and decodes (KindText only) a sealed pair.
// Lengths are checked before anything else, and a mismatch is reported as ErrLengthMismatch.
func (p *Pipeline) Decrypt(ctx context.Context, kind Kind, sealed Sealed) (Output, error) {
	if kind != KindText && kind != KindBinary {
		return Output{}, &StageError{Stage: StageDecode, Err: fmt.Errorf("unknown payload kind %d", kind)}
	}

	if err := p.enter(ctx, StageUnmask, len(sealed.Cipher)); err != nil {
		return Output{}, err
	}
	compressed, err := xor.Unmask(sealed.Cipher, sealed.Key, p.maskOpts()...)
	if err != nil {
		return Output{}, &StageError{Stage: StageUnmask, Err: err}
	}

	if err := p.enter(ctx, StageDecompress, len(compressed)); err != nil {
		return Output{}, err
	}
	plain, err := p.codec.Decompress(compressed)
	if err != nil {
		return Output{}, &StageError{Stage: StageDecompress, Err: err}
	}

	if kind == KindBinary {
		return Output{Kind: kind, Bytes: plain}, nil
	}

	if err := p.enter(ctx, StageDecode, len(plain)); err != nil {
		return Output{}, err
	}
	text, err := p.text.Decode(plain)
	if err != nil {
		return Output{}, &StageError{Stage: StageDecode, Err: err}
	}
	return Output{Kind: kind, Text: text, Bytes: []byte(text)}, nil
}
