package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"api_key": "test-key",
		"primary_model": "gemini-2.5-flash",
		"use_browser": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.PrimaryModel)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'port'")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{ShutdownSeconds: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'shutdown_seconds'")
}

func TestValidate_TemperatureRange(t *testing.T) {
	cfg := &Config{Temperature: 2.5}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'temperature'")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-file", Port: 3000}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "from-file", merged.APIKey)
	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, DefaultShutdownSeconds, merged.ShutdownSeconds)
	assert.Equal(t, DefaultScrapeSeconds, merged.ScrapeSeconds)
	assert.Equal(t, DefaultTemperature, merged.Temperature)
}

func TestMergeWithDefaults_EmptyConfig(t *testing.T) {
	var cfg Config

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultTemperature, merged.Temperature)
	assert.Empty(t, merged.APIKey)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "4000")
	t.Setenv("USE_BROWSER", "true")

	cfg := FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 4000, cfg.Port)
	assert.True(t, cfg.UseBrowser)
}

func TestFromEnv_Unset(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("USE_BROWSER", "")

	cfg := FromEnv()

	assert.Empty(t, cfg.APIKey)
	assert.Zero(t, cfg.Port)
	assert.False(t, cfg.UseBrowser)
}

func TestTimeoutHelpers(t *testing.T) {
	cfg := Config{ShutdownSeconds: 5, ScrapeSeconds: 30}

	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, 30*time.Second, cfg.ScrapeTimeout())
}
