package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	testString := `
[Params]
    Personalization = "toy"
    M = 256
    N = 16
    Capacity = 16
    Field = "smallq"

[Demo]
    Elements = 4
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testString), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toy", cfg.Params.Personalization)
	assert.Equal(t, uint32(256), cfg.Params.M)
	assert.Equal(t, "smallq", cfg.Params.Field)
	assert.Equal(t, "keccak256", cfg.Params.Hash, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Demo.Elements)
	assert.Equal(t, 10, cfg.Demo.Outsiders)
	assert.Equal(t, "*:INFO", cfg.Log.Level)
}

func TestLoad_ExplicitZeroKept(t *testing.T) {
	t.Parallel()

	testString := `
[Params]
    Personalization = ""

[Demo]
    Elements = 0
    Outsiders = 0
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testString), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Params.Personalization)
	assert.Equal(t, 0, cfg.Demo.Elements)
	assert.Equal(t, 0, cfg.Demo.Outsiders)
	assert.Equal(t, "sisacc-demo", cfg.Demo.Seed)
	assert.Equal(t, uint32(32512), cfg.Params.M)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Params]\nM = 0\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestDefault_MatchesShippedConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("..", "cmd", "sisacc", "config", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
