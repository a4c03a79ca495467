package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TASKR_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL())
	assert.Equal(t, DefaultTimeout, cfg.Timeout())
	assert.Equal(t, "taskr", cfg.UserAgent())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TASKR_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKR_API_URL", "https://tasks.example.com/api")
	t.Setenv("TASKR_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com/api", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKR_CONFIG_PATH", dir)
	t.Setenv("HOME", t.TempDir())
	body := "api_url: http://10.0.0.5:8080/api\ntimeout: 2m\nuser_agent: ci\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".taskr.yaml"), []byte(body), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8080/api", cfg.BaseURL())
	assert.Equal(t, 2*time.Minute, cfg.Timeout())
	assert.Equal(t, "ci", cfg.UserAgent())
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKR_CONFIG_PATH", dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKR_API_URL", "http://override/api")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".taskr.yaml"), []byte("api_url: http://file/api\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://override/api", cfg.BaseURL())
}
