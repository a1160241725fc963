package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/xorpad/pkg/codec"
	"github.com/saylorsolutions/xorpad/pkg/pad"
)

func validConfig() Config {
	return Config{
		Level:     codec.DefaultLevel,
		KeySuffix: ".key",
		Output:    "out",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate    func(*Config)
		expectErr bool
	}{
		"Defaults":          {mutate: func(*Config) {}},
		"Text mode":         {mutate: func(c *Config) { c.Mode = "text" }},
		"Bad mode":          {mutate: func(c *Config) { c.Mode = "image" }, expectErr: true},
		"Level":             {mutate: func(c *Config) { c.Level = 5 }, expectErr: true},
		"No suffix":         {mutate: func(c *Config) { c.KeySuffix = "" }, expectErr: true},
		"Suffix with slash": {mutate: func(c *Config) { c.KeySuffix = "/key" }, expectErr: true},
		"No output":         {mutate: func(c *Config) { c.Output = "" }, expectErr: true},
		"Quiet and verbose": {mutate: func(c *Config) { c.Quiet, c.Verbose = true, true }, expectErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_Kind(t *testing.T) {
	cfg := validConfig()
	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, pad.KindBinary, kind)

	cfg.Text = true
	kind, err = cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, pad.KindText, kind)

	cfg.Mode = "file"
	kind, err = cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, pad.KindBinary, kind, "An explicit mode wins")
}

func TestResolveInput(t *testing.T) {
	cfg := validConfig()
	src, err := resolveInput(cfg, []string{"some/file"})
	require.NoError(t, err)
	assert.Equal(t, FilePath("some/file"), src)

	_, err = resolveInput(cfg, []string{"a", "b"})
	assert.Error(t, err)
	_, err = resolveInput(cfg, []string{" "})
	assert.Error(t, err)
	_, err = resolveInput(cfg, nil)
	assert.Error(t, err)

	cfg.Text = true
	src, err = resolveInput(cfg, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, TextLiteral("a b"), src)

	src, err = resolveInput(cfg, []string{""})
	require.NoError(t, err)
	assert.Equal(t, TextLiteral(""), src, "Empty text is valid input")
}

func TestResolveOutput(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, SaveTo("out"), resolveOutput(cfg))
	cfg.Print = true
	assert.Equal(t, PrintOut{}, resolveOutput(cfg))
}
