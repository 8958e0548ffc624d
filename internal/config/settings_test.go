package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so a developer's own
// ~/.wordgrid.yaml cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	return dir
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", DefaultLogLevel, "")
	fs.String("log-format", DefaultLogFormat, "")
	fs.String("lexicon", "", "")
	fs.Int("min-length", DefaultMinLength, "")
	fs.String("output", DefaultOutput, "")
	fs.String("puzzle", "", "")
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoadSettings_Defaults(t *testing.T) {
	isolate(t)
	s, err := LoadSettings("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
	assert.Equal(t, DefaultLogFormat, s.LogFormat)
	assert.Equal(t, DefaultMinLength, s.MinLength)
	assert.Equal(t, DefaultOutput, s.Output)
	assert.Empty(t, s.Lexicon)
	assert.Empty(t, s.ConfigFile)
}

func TestLoadSettings_Precedence(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "wordgrid.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("lexicon: from-file.txt\nmin-length: 5\noutput: plain\n"), 0o644))

	// file only
	s, err := LoadSettings(cfg, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "from-file.txt", s.Lexicon)
	assert.Equal(t, 5, s.MinLength)
	assert.Equal(t, "plain", s.Output)
	assert.Equal(t, cfg, s.ConfigFile)

	// env beats file
	t.Setenv("WORDGRID_MIN_LENGTH", "4")
	s, err = LoadSettings(cfg, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 4, s.MinLength)

	// flag beats env
	s, err = LoadSettings(cfg, testFlags(t, "--min-length=2", "--lexicon=flag.txt"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.MinLength)
	assert.Equal(t, "flag.txt", s.Lexicon)
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := LoadSettings(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoadSettings_Invalid(t *testing.T) {
	isolate(t)

	_, err := LoadSettings("", testFlags(t, "--min-length=0"))
	assert.ErrorIs(t, err, ErrInvalidMinLength)

	_, err = LoadSettings("", testFlags(t, "--output=xml"))
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = LoadSettings("", testFlags(t, "--output=xml", "--min-length=-1"))
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorIs(t, err, ErrInvalidMinLength)
}

func TestSettings_ValidateNormalizesOutput(t *testing.T) {
	s := Settings{MinLength: 1, Output: "JSON"}
	require.NoError(t, s.Validate())
	assert.Equal(t, "json", s.Output)
}
