package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/config"
	"github.com/katalvlaran/postman/matching"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// clearEnv blanks every POSTMAN_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	for _, k := range []string{"MATCHER", "LOG_LEVEL", "LOG_FORMAT", "OUTPUT", "START"} {
		t.Setenv("POSTMAN_"+k, "")
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Empty(t, c.Matcher)
	assert.ErrorIs(t, c.Validate(), config.ErrNoMatcher)
	_, err := c.Strategy()
	assert.ErrorIs(t, err, matching.ErrUnknownStrategy)

	c.Matcher = "greedy"
	require.NoError(t, c.Validate())
	s, err := c.Strategy()
	require.NoError(t, err)
	assert.Equal(t, matching.Greedy, s)
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)
	assert.Equal(t, config.OutputText, c.Output)
	assert.Zero(t, c.Start)
}

func TestLoad_Layers(t *testing.T) {
	clearEnv(t)
	yml := writeFile(t, "postman.yaml", "matcher: vertex-scan\nlog_level: debug\noutput: yaml\nstart: 3\n")
	env := writeFile(t, ".env", "POSTMAN_LOG_FORMAT=json\nPOSTMAN_OUTPUT=text\n")
	t.Setenv("POSTMAN_LOG_LEVEL", "warn")

	c, err := config.Load(yml, env)
	require.NoError(t, err)
	assert.Equal(t, "vertex-scan", c.Matcher, "from yaml")
	assert.Equal(t, config.LogJSON, c.LogFormat, "from dotenv")
	assert.Equal(t, config.OutputText, c.Output, "dotenv overrides yaml")
	assert.Equal(t, "warn", c.LogLevel, "environment overrides everything")
	assert.Equal(t, 3, c.Start)
}

func TestLoad_NoFiles(t *testing.T) {
	clearEnv(t)
	c, err := config.Load("", "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

// TestLoad_MatcherUnset checks that Load leaves the matcher open for the
// flag layer while Validate insists on one.
func TestLoad_MatcherUnset(t *testing.T) {
	clearEnv(t)
	c, err := config.Load(writeFile(t, "postman.yaml", "output: yaml\n"), "")
	require.NoError(t, err)
	assert.Empty(t, c.Matcher)
	assert.ErrorIs(t, c.Validate(), config.ErrNoMatcher)

	c, err = config.Load(writeFile(t, "blank.yaml", "matcher: \"\"\n"), "")
	require.NoError(t, err)
	assert.ErrorIs(t, c.Validate(), config.ErrNoMatcher)

	t.Setenv("POSTMAN_MATCHER", "scan")
	c, err = config.Load("", "")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "scan", c.Matcher)
}

func TestLoad_EmptyYAML(t *testing.T) {
	clearEnv(t)
	c, err := config.Load(writeFile(t, "empty.yaml", ""), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(writeFile(t, "bad.yaml", "matcher: blossom\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "unknown.yaml", "colour: blue\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "fmt.yaml", "log_format: xml\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "out.yaml", "output: csv\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "lvl.yaml", "log_level: loud\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "start.yaml", "start: -2\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("POSTMAN_START", "first")
	_, err = config.Load("", "")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
