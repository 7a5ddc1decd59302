package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url":"https://admin.example.org","request_timeout":"15s"}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://admin.example.org", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url":"https://admin.example.org"}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://admin.example.org", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseJson_NoFileIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
}

func TestParseJson_FlagsStillWin(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url":"https://from-json.example.org","request_timeout":"15s"}`)
	withArgs(t, "-c", path, "-a", "https://from-flag.example.org")

	cfg := LoadConfig()

	require.Equal(t, "https://from-flag.example.org", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
