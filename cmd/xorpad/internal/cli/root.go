// Package cli implements the xorpad command line interface.
//
// It provides commands for:
//   - encryption of a file or literal text into a cipher and key pair
//   - decryption of a pair back into the original payload
//
// Flags may also be given as XORPAD_* environment variables, such as XORPAD_KEY_SUFFIX.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/store"
	"github.com/saylorsolutions/xorpad/pkg/codec"
)

const defaultOutput = "out"

// NewRootCommand creates the root command with the common flags shared by all subcommands.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "xorpad [flags] command [flags]",
		Short: "Obfuscate files with a one-time XOR pad",
		Long: `xorpad compresses a file or a piece of text and masks it with a freshly generated random key of the same length.
The masked data and the key are saved side by side, and both are needed to recover the original.

SECURITY:
    This is obfuscation, not encryption!
The key is stored unencrypted right next to the masked data, and nothing detects tampering with either of them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Log every pipeline stage")
	flags.Uint8P("level", "l", codec.DefaultLevel, "Compression level, from 1 (fastest) to 4 (best)")
	flags.String("key-suffix", store.DefaultKeySuffix, "Suffix appended to the cipher path to name the key file")
	flags.Bool("zero-frames", false, "Compress an empty payload to a complete frame instead of zero bytes")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand())
	return root
}

func addOutputFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", defaultOutput, "Output path")
	flags.BoolP("print", "p", false, "Print the result instead of saving it")
}
