package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/jeopardy/jeopardy"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func testConfig(t *testing.T) *Config {
	t.Helper()

	return &Config{
		bind:      "127.0.0.1",
		port:      8080,
		questions: writeFile(t, "questions.txt", "NUM_CATEGORIES=2\nNUM_QUESTIONS_PER_CATEGORY=2\n"),
		teams:     2,
		layout:    jeopardy.DefaultLayout(),
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"cert without key", func(c *Config) { c.tlsCert = "cert.pem" }, "--tls-cert and --tls-key"},
		{"port too high", func(c *Config) { c.port = 70000 }, "invalid port"},
		{"too few teams", func(c *Config) { c.teams = 1 }, "invalid team count"},
		{"too many teams", func(c *Config) { c.teams = 6 }, "invalid team count"},
		{"no question file", func(c *Config) { c.questions = "" }, "--questions"},
		{"missing question file", func(c *Config) { c.questions = filepath.Join(t.TempDir(), "gone.txt") }, "unable to read question file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigValidateParsesQuestionFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.questions = writeFile(t, "bad.txt", "NUM_QUESTIONS_PER_CATEGORY=5\n")

	err := cfg.validate()
	require.Error(t, err)

	var invalid *jeopardy.InvalidQuestionFileError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, jeopardy.DirectiveNumCategories, invalid.Directive)
	assert.ErrorIs(t, err, jeopardy.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestConfigScheme(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, "http", cfg.scheme())

	cfg.tlsCert, cfg.tlsKey = "cert.pem", "key.pem"
	assert.Equal(t, "https", cfg.scheme())
}

func TestNewCmdReadsEnvironment(t *testing.T) {
	t.Setenv("JEOPARDY_PORT", "9090")
	t.Setenv("JEOPARDY_TEAMS", "4")
	t.Setenv("JEOPARDY_SESSION_TIMEOUT", "5m")

	cfg := &Config{}
	newCmd(cfg)

	assert.Equal(t, 9090, cfg.port)
	assert.Equal(t, 4, cfg.teams)
	assert.Equal(t, "5m0s", cfg.sessionTimeout.String())
	assert.Equal(t, "questions.txt", cfg.questions)
	assert.Equal(t, jeopardy.DefaultLayout(), cfg.layout)
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	t.Setenv("JEOPARDY_BIND", "")
	os.Unsetenv("JEOPARDY_BIND")

	path := writeFile(t, ".env", "JEOPARDY_BIND=10.0.0.1\n")
	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "10.0.0.1", os.Getenv("JEOPARDY_BIND"))

	cfg := &Config{}
	newCmd(cfg)
	assert.Equal(t, "10.0.0.1", cfg.bind)
}

func TestGameOptions(t *testing.T) {
	cfg := testConfig(t)
	cfg.terminal = true

	opts := cfg.gameOptions()
	assert.Equal(t, cfg.questions, opts.QuestionFile)
	assert.Equal(t, 2, opts.Teams)
	assert.True(t, opts.AllowQuit)
}
