package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/display"
	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/store"
	"github.com/saylorsolutions/xorpad/pkg/pad"
)

// NewEncryptCommand creates the enc subcommand.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enc [flags] INPUT",
		Aliases: []string{"encrypt"},
		Short:   "Encrypt a file, or literal text with --text",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, "masking")
			if err != nil {
				return err
			}
			defer e.close()
			return e.encrypt(cmd, args)
		},
	}

	cmd.Flags().BoolP("text", "t", false, "Use INPUT as literal text instead of a file path")
	addOutputFlags(cmd.Flags())
	return cmd
}

func (e *env) encrypt(cmd *cobra.Command, args []string) error {
	src, err := resolveInput(e.cfg, args)
	if err != nil {
		return err
	}

	var in pad.Input
	switch src := src.(type) {
	case TextLiteral:
		in = pad.Text(string(src))
	case FilePath:
		e.log.Infow("Reading file", "path", string(src))
		data, err := store.ReadAll(string(src))
		if err != nil {
			return err
		}
		in = pad.Binary(data)
	}

	sealed, err := e.pipe.Encrypt(cmd.Context(), in)
	if err != nil {
		return err
	}

	switch out := resolveOutput(e.cfg).(type) {
	case PrintOut:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), display.FormatPair(sealed))
		return err
	case SaveTo:
		if err := store.WritePair(string(out), e.cfg.KeySuffix, sealed); err != nil {
			return err
		}
		e.log.Infow("Encryption complete",
			"kind", in.Kind().String(),
			"cipher", string(out),
			"key", store.KeyPath(string(out), e.cfg.KeySuffix),
			"size", humanize.IBytes(uint64(len(sealed.Cipher))),
		)
	}
	return nil
}
