package cli

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/saylorsolutions/xorpad/pkg/codec"
	"github.com/saylorsolutions/xorpad/pkg/pad"
)

const envPrefix = "XORPAD"

// Config holds everything a command needs after flags and environment variables are merged.
type Config struct {
	// Common flags
	Quiet      bool   `mapstructure:"quiet" validate:"excluded_with=Verbose"`
	Verbose    bool   `mapstructure:"verbose"`
	Level      uint8  `mapstructure:"level" validate:"min=1,max=4"`
	KeySuffix  string `mapstructure:"key-suffix" validate:"required,excludesall=/\\"`
	ZeroFrames bool   `mapstructure:"zero-frames"`

	// Command-specific flags
	Text   bool   `mapstructure:"text"`
	Output string `mapstructure:"output" validate:"required"`
	Print  bool   `mapstructure:"print"`
	Mode   string `mapstructure:"mode" validate:"omitempty,oneof=text file"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}

// Kind resolves the payload kind for decryption.
// Without an explicit mode, inline input is assumed to be text and files are assumed to be binary.
func (c Config) Kind() (pad.Kind, error) {
	if c.Mode == "" {
		if c.Text {
			return pad.KindText, nil
		}
		return pad.KindBinary, nil
	}
	return pad.ParseKind(c.Mode)
}

// ZstdOptions maps the configuration onto codec options.
func (c Config) ZstdOptions() codec.ZstdOptions {
	opts := codec.DefaultZstdOptions()
	opts.Level = c.Level
	opts.ZeroFrames = c.ZeroFrames
	return opts
}

// loadConfig merges the flags of cmd with XORPAD_* environment variables.
// Flags that were set explicitly win over the environment, which wins over flag defaults.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
