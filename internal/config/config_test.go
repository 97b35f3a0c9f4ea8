package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) (dataHome, configHome string) {
	t.Helper()
	dir := t.TempDir()
	dataHome = filepath.Join(dir, "data")
	configHome = filepath.Join(dir, "config")
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	return dataHome, configHome
}

func TestPaths(t *testing.T) {
	dataHome, configHome := setHome(t)

	assert.Equal(t, filepath.Join(dataHome, "twentyone"), GetDataDir())
	assert.Equal(t, filepath.Join(dataHome, "twentyone", "records.json"), GetRecordsPath())
	assert.Equal(t, filepath.Join(configHome, "twentyone", "config.toml"), GetConfigFilePath())
}

func TestDefaultHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Equal(t, filepath.Join(home, ".local", "share"), GetXDGDataHome())
	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHome())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.FileExists(t, GetConfigFilePath())

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigFromFile(t *testing.T) {
	setHome(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	content := `records_path = "/tmp/scores.json"
dealer_delay_ms = 250
color = false
`
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/scores.json", cfg.ResolveRecordsPath())
	assert.Equal(t, 250*time.Millisecond, cfg.DealerDelay())
	// Unset keys keep their defaults.
	assert.Equal(t, time.Second, cfg.NoticeDuration())
	assert.False(t, cfg.Color)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid toml", content: "dealer_delay_ms = ="},
		{name: "wrong type", content: `dealer_delay_ms = "slow"`},
		{name: "negative delay", content: "dealer_delay_ms = -1"},
		{name: "negative notice", content: "notice_ms = -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setHome(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
			require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte(tt.content), 0644))

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestResolveRecordsPathDefault(t *testing.T) {
	setHome(t)
	assert.Equal(t, GetRecordsPath(), Default().ResolveRecordsPath())
}
