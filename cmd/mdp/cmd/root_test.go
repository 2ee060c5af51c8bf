package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Tourelou/mdp/clipboard"
)

func TestSetup(t *testing.T) {
	withFlags := func(t *testing.T, config, lang string) {
		t.Helper()
		configFile, langCode = config, lang
		t.Cleanup(func() { configFile, langCode = "", "" })
	}
	writeConfig := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	t.Run("config file language and length", func(t *testing.T) {
		withFlags(t, writeConfig(t, "lang: fr\nlength: 20\n"), "")
		a, err := setup()
		require.NoError(t, err)
		assert.Equal(t, language.French, a.msg.Tag)
		assert.Equal(t, 20, a.cfg.Length)
	})

	t.Run("flag wins over config", func(t *testing.T) {
		withFlags(t, writeConfig(t, "lang: fr\n"), "es")
		a, err := setup()
		require.NoError(t, err)
		assert.Equal(t, language.Spanish, a.msg.Tag)
	})

	t.Run("environment locale", func(t *testing.T) {
		withFlags(t, writeConfig(t, "store_file: vault.bin\n"), "")
		t.Setenv("LC_ALL", "")
		t.Setenv("LANG", "fr_CA.UTF-8")
		a, err := setup()
		require.NoError(t, err)
		assert.Equal(t, language.French, a.msg.Tag)
		assert.Equal(t, "vault.bin", a.cfg.StoreFile)
	})

	t.Run("no-clipboard disables copying", func(t *testing.T) {
		withFlags(t, writeConfig(t, "lang: en\n"), "")
		noClipboard = true
		t.Cleanup(func() { noClipboard = false })
		a, err := setup()
		require.NoError(t, err)
		assert.Equal(t, clipboard.Disabled{}, a.clip)
		assert.False(t, a.clip.Available())
	})

	t.Run("missing explicit config", func(t *testing.T) {
		withFlags(t, filepath.Join(t.TempDir(), "absent.yaml"), "")
		_, err := setup()
		requireExit(t, err, exitFailure)
	})

	t.Run("invalid config", func(t *testing.T) {
		withFlags(t, writeConfig(t, "length: 4\n"), "")
		_, err := setup()
		requireExit(t, err, exitFailure)
	})
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"find", "delete", "add", "new"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("long"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("no-clipboard"))
	assert.NotNil(t, findCmd.Flags().Lookup("reveal"))
}
