package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load("", false)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingOptionalFile", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, DefaultStoreFile, cfg.StoreFile)
	})

	t.Run("MissingRequiredFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("Values", func(t *testing.T) {
		t.Setenv("MDP_TEST_DIR", "/srv/secrets")
		path := writeConfig(t, `
store_file: ${MDP_TEST_DIR}/perso.bin
length: 20
mask: "#"
lang: fr
log_level: debug
`)
		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, "/srv/secrets/perso.bin", cfg.StoreFile)
		assert.Equal(t, 20, cfg.Length)
		assert.Equal(t, "#", cfg.Mask)
		assert.Equal(t, "fr", cfg.Lang)
		assert.Equal(t, "openssl", cfg.OpenSSL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, content := range []string{
			"length: 4\n",
			"length: 33\n",
			"mask: \"**\"\n",
			"log_level: loud\n",
			"length: [\n",
		} {
			_, err := Load(writeConfig(t, content), true)
			assert.Error(t, err, "content %q", content)
		}
	})
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/etc/mdp.yaml", Path("/etc/mdp.yaml"))

	t.Setenv(EnvConfig, "/tmp/mdp.yaml")
	assert.Equal(t, "/tmp/mdp.yaml", Path(""))

	t.Setenv(EnvConfig, "")
	if dir, err := os.UserConfigDir(); err == nil {
		assert.Equal(t, filepath.Join(dir, "mdp", "config.yaml"), Path(""))
	}
}
