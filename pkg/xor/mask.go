package xor

const (
	DefaultProgressInterval = 64 * 1024
)

// ProgressFunc observes how many bytes of a payload have been processed so far.
type ProgressFunc = func(done, total int)

type maskConf struct {
	progress ProgressFunc
	interval int
}

// Opt tunes a Mask or Unmask call in a standard and predictable way.
type Opt = func(*maskConf)

// WithProgress calls fn every DefaultProgressInterval bytes, and once more when the payload is finished.
// An empty payload reports (0, 0) once.
func WithProgress(fn ProgressFunc) Opt {
	return func(conf *maskConf) {
		conf.progress = fn
	}
}

// WithProgressInterval changes how many bytes are processed between progress reports.
// Values <= 0 are ignored.
func WithProgressInterval(n int) Opt {
	return func(conf *maskConf) {
		if n > 0 {
			conf.interval = n
		}
	}
}

func newMaskConf(opts []Opt) *maskConf {
	conf := &maskConf{interval: DefaultProgressInterval}
	for _, opt := range opts {
		opt(conf)
	}
	return conf
}

// Mask generates a fresh key from src that is as long as plaintext, and returns plaintext XOR key along with the key.
// Exactly len(plaintext) bytes are drawn from src, and plaintext is left unchanged.
func Mask(src ByteSource, plaintext []byte, opts ...Opt) (masked, key []byte, err error) {
	key, err = GenKey(src, len(plaintext))
	if err != nil {
		return nil, nil, err
	}
	scr, err := newPadScreen(key, len(plaintext), newMaskConf(opts))
	if err != nil {
		return nil, nil, err
	}
	masked = make([]byte, len(plaintext))
	scr.apply(masked, plaintext)
	return masked, key, nil
}

// Unmask reverses Mask given the masked data and its key.
// ErrLengthMismatch is returned if the two are not the same length, before either is read.
func Unmask(masked, key []byte, opts ...Opt) ([]byte, error) {
	scr, err := newPadScreen(key, len(masked), newMaskConf(opts))
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, len(masked))
	scr.apply(plaintext, masked)
	return plaintext, nil
}
