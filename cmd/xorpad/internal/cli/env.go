package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saylorsolutions/xorpad/cmd/internal"
	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/display"
	"github.com/saylorsolutions/xorpad/pkg/pad"
)

// env is the per-invocation state shared by the subcommands.
type env struct {
	cfg  Config
	log  *zap.SugaredLogger
	pipe *pad.Pipeline
}

func newEnv(cmd *cobra.Command, stage string) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := internal.NewLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet)

	var progressOut io.Writer
	if !cfg.Quiet {
		progressOut = cmd.ErrOrStderr()
	}
	progress := display.NewProgress(progressOut, stage)

	pipe, err := pad.New(
		pad.WithZstdOptions(cfg.ZstdOptions()),
		pad.WithLogger(logger.Named("pad")),
		pad.WithProgress(progress.Observe, 0),
	)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &env{cfg: cfg, log: logger.Sugar(), pipe: pipe}, nil
}

func (e *env) close() {
	_ = e.pipe.Close()
	_ = e.log.Sync()
}
