package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/display"
	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/store"
	"github.com/saylorsolutions/xorpad/pkg/pad"
)

// NewDecryptCommand creates the dec subcommand.
func NewDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dec [flags] INPUT",
		Aliases: []string{"decrypt"},
		Short:   "Decrypt a cipher file and its key, or an inline pair with --text",
		Long: `Decrypt a cipher file and the key stored next to it.
With --text, INPUT is the "CIPHER KEY" line printed by "enc --print" instead.

The cipher doesn't record what it was made from, so --mode selects how the payload is restored.
It defaults to "text" for inline input and "file" otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, "unmasking")
			if err != nil {
				return err
			}
			defer e.close()
			return e.decrypt(cmd, args)
		},
	}

	cmd.Flags().BoolP("text", "t", false, `Use INPUT as an inline "CIPHER KEY" pair instead of a file path`)
	cmd.Flags().StringP("mode", "m", "", `Payload kind, "text" or "file"`)
	addOutputFlags(cmd.Flags())
	return cmd
}

func (e *env) decrypt(cmd *cobra.Command, args []string) error {
	src, err := resolveInput(e.cfg, args)
	if err != nil {
		return err
	}
	kind, err := e.cfg.Kind()
	if err != nil {
		return err
	}

	var sealed pad.Sealed
	switch src := src.(type) {
	case TextLiteral:
		sealed, err = display.ParsePair(string(src))
		if err != nil {
			return err
		}
	case FilePath:
		e.log.Infow("Reading cipher and key", "cipher", string(src), "key", store.KeyPath(string(src), e.cfg.KeySuffix))
		sealed, err = store.ReadPair(string(src), e.cfg.KeySuffix)
		if err != nil {
			return err
		}
	}

	out, err := e.pipe.Decrypt(cmd.Context(), kind, sealed)
	if err != nil {
		return err
	}

	switch dest := resolveOutput(e.cfg).(type) {
	case PrintOut:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), display.FormatOutput(out))
		return err
	case SaveTo:
		if err := store.WriteAll(string(dest), out.Bytes); err != nil {
			return err
		}
		e.log.Infow("Decryption complete",
			"kind", kind.String(),
			"output", string(dest),
			"size", humanize.IBytes(uint64(len(out.Bytes))),
		)
	}
	return nil
}
