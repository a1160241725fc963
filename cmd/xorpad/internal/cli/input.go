package cli

import (
	"errors"
	"strings"
)

// InputSource is where a command's payload comes from, either a TextLiteral or a FilePath.
type InputSource interface {
	isInputSource()
}

// TextLiteral is input given directly on the command line.
type TextLiteral string

// FilePath is input read from a file.
type FilePath string

func (TextLiteral) isInputSource() {}
func (FilePath) isInputSource()    {}

// OutputMode is where a command's result goes, either SaveTo or PrintOut.
type OutputMode interface {
	isOutputMode()
}

// SaveTo writes results to a path.
type SaveTo string

// PrintOut writes results to stdout instead of saving them.
type PrintOut struct{}

func (SaveTo) isOutputMode()   {}
func (PrintOut) isOutputMode() {}

// resolveInput turns positional args into an InputSource.
// Inline text may be split over several args, which are joined with a space.
func resolveInput(cfg Config, args []string) (InputSource, error) {
	if len(args) == 0 {
		return nil, errors.New("missing required INPUT argument")
	}
	if cfg.Text {
		return TextLiteral(strings.Join(args, " ")), nil
	}
	if len(args) > 1 {
		return nil, errors.New("only one INPUT file may be given")
	}
	if len(strings.TrimSpace(args[0])) == 0 {
		return nil, errors.New("INPUT file path must not be empty")
	}
	return FilePath(args[0]), nil
}

func resolveOutput(cfg Config) OutputMode {
	if cfg.Print {
		return PrintOut{}
	}
	return SaveTo(cfg.Output)
}
