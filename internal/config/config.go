// Package config resolves shopmate settings from defaults, an optional YAML
// file, SHOPMATE_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/shopmate/internal/validation"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

const (
	// DefaultAPIURL is where the product and auth service listens by default.
	DefaultAPIURL = "http://localhost:5000"
	// DirName is the data directory under the user's home.
	DirName = ".shopmate"
	// FileName is the config file inside the data directory.
	FileName = "config.yaml"

	storeFileName = "store.json"
	logFileName   = "shopmate.log"

	envDataDir = "SHOPMATE_DATA_DIR"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Config is the resolved configuration.
type Config struct {
	APIURL    string `yaml:"api_url" env:"SHOPMATE_API_URL" validate:"required,http_url"`
	DataDir   string `yaml:"data_dir" env:"SHOPMATE_DATA_DIR" validate:"required"`
	LogLevel  string `yaml:"log_level" env:"SHOPMATE_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" env:"SHOPMATE_LOG_FORMAT" validate:"oneof=json console"`

	// Source is the config file that was read, empty when none was.
	Source string `yaml:"-"`
}

// Overrides are flag values. Empty fields leave the resolved value alone.
type Overrides struct {
	APIURL   string
	DataDir  string
	LogLevel string
}

// LoadOptions control where configuration comes from.
type LoadOptions struct {
	// Path names an explicit config file, which must then exist.
	Path string
	// HomeDir replaces the user's home directory.
	HomeDir string
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
	Overrides   Overrides
}

// Defaults returns the configuration used when nothing else is set.
func Defaults(home string) Config {
	return Config{
		APIURL:    DefaultAPIURL,
		DataDir:   filepath.Join(home, DirName),
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	home := opts.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	environment := opts.Environment
	if environment == nil {
		environment = env.ToMap(os.Environ())
	}

	cfg := Defaults(home)

	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = filepath.Join(expandHome(lookupDataDir(opts, environment, cfg.DataDir), home), FileName)
	}
	if err := cfg.readFile(path, explicit); err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return nil, shoperrors.NewValidationError("env", err.Error(), err)
	}

	cfg.apply(opts.Overrides)
	cfg.normalize(home)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

// StorePath is the key/value store file inside the data directory.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, storeFileName)
}

// LogPath is the log file the interactive UI writes to.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, logFileName)
}

// EnsureDataDir creates the data directory with owner-only permissions.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return shoperrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return shoperrors.NewParseError(path, extractLine(err), err)
	}
	c.Source = path
	return nil
}

func (c *Config) apply(o Overrides) {
	if v := strings.TrimSpace(o.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(o.DataDir); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) normalize(home string) {
	c.APIURL = strings.TrimSuffix(strings.TrimSpace(c.APIURL), "/")
	c.DataDir = filepath.Clean(expandHome(strings.TrimSpace(c.DataDir), home))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// lookupDataDir finds the directory holding the config file, before the
// file itself has been read.
func lookupDataDir(opts LoadOptions, environment map[string]string, fallback string) string {
	if v := strings.TrimSpace(opts.Overrides.DataDir); v != "" {
		return v
	}
	if v := strings.TrimSpace(environment[envDataDir]); v != "" {
		return v
	}
	return fallback
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
