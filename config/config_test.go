package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4-turbo", cfg.OpenAI.Model)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_VERSION", "gpt-4o")
	t.Setenv("FREEPIK_API_KEY", "fp-test")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "fp-test", cfg.Freepik.APIKey)
	assert.Equal(t, ":9000", cfg.ListenAddr())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openai:
  api_key: sk-file
  model: gpt-4-turbo
server:
  addr: ":7000"
log:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-file", cfg.OpenAI.APIKey)
	assert.Equal(t, ":7000", cfg.ListenAddr())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestListenAddr_ExplicitAddrWinsOverPort(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Addr = ":7070"
	cfg.Server.Port = "9000"
	assert.Equal(t, ":7070", cfg.ListenAddr())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.OpenAI.APIKey = "sk-test"
	cfg.OpenAI.Model = "gpt-4-turbo"
	assert.NoError(t, cfg.Validate())

	cfg.OpenAI.Model = ""
	assert.Error(t, cfg.Validate())
}
