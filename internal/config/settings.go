package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default setting values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultMinLength = 3
	DefaultOutput    = "table"
	EnvPrefix        = "WORDGRID"
)

// Output formats accepted by Settings.Output.
var outputFormats = []string{"table", "plain", "json"}

// Settings holds the CLI options shared by every command.
type Settings struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Lexicon   string `mapstructure:"lexicon"`
	MinLength int    `mapstructure:"min-length"`
	Output    string `mapstructure:"output"`
	Puzzle    string `mapstructure:"puzzle"`

	// ConfigFile is the settings file that was read, if any.
	ConfigFile string `mapstructure:"-"`
}

// LoadSettings resolves Settings from flags, WORDGRID_* environment
// variables, a config file and defaults, in that order of precedence.
// cfgFile, if set, must exist; otherwise .wordgrid.yaml / .wordgrid.yml are
// looked up in the working directory and then in $HOME.
func LoadSettings(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	// Fresh instance: no global viper state between commands or tests.
	v := viper.New()

	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("log-format", DefaultLogFormat)
	v.SetDefault("lexicon", "")
	v.SetDefault("min-length", DefaultMinLength)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("puzzle", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if cfgFile == "" {
		cfgFile = findSettingsFile()
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: decode settings: %w", err)
	}
	s.ConfigFile = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// findSettingsFile returns the first existing default settings file.
func findSettingsFile() string {
	candidates := []string{".wordgrid.yaml", ".wordgrid.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".wordgrid.yaml"),
			filepath.Join(home, ".wordgrid.yml"),
		)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	var errs []error
	if s.MinLength < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidMinLength, s.MinLength))
	}
	s.Output = strings.ToLower(s.Output)
	valid := false
	for _, f := range outputFormats {
		if s.Output == f {
			valid = true

			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidOutput, s.Output))
	}

	return errors.Join(errs...)
}
