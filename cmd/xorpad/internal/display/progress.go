package display

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress draws a progress bar for a single pipeline stage.
// The bar is created lazily once the total size is known.
type Progress struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
}

// NewProgress creates a Progress writing to w. A nil w disables the bar.
func NewProgress(w io.Writer, description string) *Progress {
	return &Progress{w: w, description: description}
}

// Observe matches xor.ProgressFunc.
func (p *Progress) Observe(done, total int) {
	if p == nil || p.w == nil || total == 0 {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription(p.description),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
	if done >= total {
		_ = p.bar.Finish()
		p.bar = nil
	}
}
