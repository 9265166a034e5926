// Package config holds the runtime settings of the postman command.
//
// Settings are resolved in layers, later layers winning:
//
//	defaults → YAML file → dotenv file → process environment → flags
//
// The last layer belongs to the command line and is applied by the caller.
// Recognised environment variables: POSTMAN_MATCHER, POSTMAN_LOG_LEVEL,
// POSTMAN_LOG_FORMAT, POSTMAN_OUTPUT, POSTMAN_START.
//
// There is no default matcher: some layer has to choose greedy or
// vertex-scan, otherwise Validate fails with ErrNoMatcher.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/postman/matching"
)

var (
	// ErrInvalid indicates a setting with an unsupported value.
	ErrInvalid = errors.New("config: invalid setting")

	// ErrNoMatcher indicates that no layer selected a matcher.
	ErrNoMatcher = errors.New("config: no matcher selected (greedy or vertex-scan)")
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

const envPrefix = "POSTMAN_"

// Config is the resolved runtime configuration.
type Config struct {
	// Matcher names the parity-fix heuristic: greedy or vertex-scan.
	// Empty until a layer sets it.
	Matcher string `yaml:"matcher"`
	// LogLevel is any logrus level name.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// Output is text or yaml.
	Output string `yaml:"output"`
	// Start is the 1-based first vertex of the walk; 0 means automatic.
	Start int `yaml:"start"`
}

// Default returns the built-in settings. Matcher is left empty.
func Default() *Config {
	return &Config{
		LogLevel:  logrus.InfoLevel.String(),
		LogFormat: LogText,
		Output:    OutputText,
	}
}

// Load resolves the configuration. Either path may be empty to skip that
// layer; a named file that cannot be read is an error.
//
// Every value that is set must be valid, but an unset matcher is accepted
// here since command-line flags still apply on top; call Validate once the
// last layer is in.
func Load(path, envFile string) (*Config, error) {
	c := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(ErrInvalid, "%s: %v", path, err)
		}
	}

	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, errors.Wrap(err, "read env file")
		}
		lookup := func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
		if err = c.apply(lookup); err != nil {
			return nil, err
		}
	}

	if err := c.apply(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := c.validate(false); err != nil {
		return nil, err
	}

	return c, nil
}

// apply overlays POSTMAN_* variables found by lookup.
func (c *Config) apply(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"MATCHER":    &c.Matcher,
		"LOG_LEVEL":  &c.LogLevel,
		"LOG_FORMAT": &c.LogFormat,
		"OUTPUT":     &c.Output,
	}
	for name, dst := range str {
		if v, ok := lookup(envPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(envPrefix + "START"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sSTART=%q", envPrefix, v)
		}
		c.Start = n
	}

	return nil
}

// Validate checks every field. An unset matcher fails with ErrNoMatcher.
func (c *Config) Validate() error {
	return c.validate(true)
}

func (c *Config) validate(needMatcher bool) error {
	switch {
	case strings.TrimSpace(c.Matcher) == "":
		if needMatcher {
			return errors.WithStack(ErrNoMatcher)
		}
	default:
		if _, err := c.Strategy(); err != nil {
			return errors.Wrapf(ErrInvalid, "matcher %q", c.Matcher)
		}
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogText, LogJSON:
	default:
		return errors.Wrapf(ErrInvalid, "log_format %q", c.LogFormat)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return errors.Wrapf(ErrInvalid, "output %q", c.Output)
	}
	if c.Start < 0 {
		return errors.Wrapf(ErrInvalid, "start %d", c.Start)
	}

	return nil
}

// Strategy parses Matcher.
func (c *Config) Strategy() (matching.Strategy, error) {
	return matching.ParseStrategy(c.Matcher)
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
