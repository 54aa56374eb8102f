package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()

	original := os.Args
	os.Args = []string{original[0]}

	t.Cleanup(func() { os.Args = original })
}

func TestLoadEnvDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	var cfg Config
	require.NoError(t, LoadEnv(&cfg))

	require.Equal(t, "error", cfg.Application.LogLevel)
	require.Empty(t, cfg.Application.TGBotToken)
	require.Empty(t, cfg.Application.ProxyURL)
	require.Equal(t, ":8080", cfg.Application.Listen)
	require.Equal(t, "https://example.com/download", cfg.Application.DownloadBaseURL)
	require.Equal(t, 10*time.Second, cfg.Application.SendTimeout.Duration())
	require.False(t, cfg.Application.LiveMetadata)
}

func TestLoadEnvTokenWithoutPrefix(t *testing.T) {
	resetArgs(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("APP_LOGLEVEL", "debug")
	t.Setenv("APP_SEND_TIMEOUT", "2s")
	t.Setenv("APP_LIVE_METADATA", "true")

	var cfg Config
	require.NoError(t, LoadEnv(&cfg))

	require.Equal(t, "token", cfg.Application.TGBotToken)
	require.Equal(t, "debug", cfg.Application.LogLevel)
	require.Equal(t, 2*time.Second, cfg.Application.SendTimeout.Duration())
	require.True(t, cfg.Application.LiveMetadata)
}

func TestParseConfigFromYAML(t *testing.T) {
	resetArgs(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`Application:
  LogLevel: info
  SendTimeout: 1m30s
  Listen: ":9090"
  DownloadBaseURL: https://dl.local
  LiveMetadata: false
`), 0o600))

	var cfg Config
	require.NoError(t, parseConfig(&cfg, path, CommonParseOptions))

	require.Equal(t, "info", cfg.Application.LogLevel)
	require.Equal(t, 90*time.Second, cfg.Application.SendTimeout.Duration())
	require.Equal(t, ":9090", cfg.Application.Listen)
	require.Equal(t, "https://dl.local", cfg.Application.DownloadBaseURL)
}

func TestParseConfigMissingFile(t *testing.T) {
	var cfg Config
	require.Error(t, parseConfig(&cfg, filepath.Join(t.TempDir(), "none.yaml"), CommonParseOptions))
}

func TestDurationUnmarshalYAML(t *testing.T) {
	cases := map[string]time.Duration{
		`"5m"`: 5 * time.Minute,
		`30`:   30 * time.Second,
		`1.5`:  1500 * time.Millisecond,
	}

	for raw, want := range cases {
		var out struct {
			D duration `yaml:"d"`
		}

		path := filepath.Join(t.TempDir(), "d.yaml")
		require.NoError(t, os.WriteFile(path, []byte("d: "+raw+"\n"), 0o600))
		require.NoError(t, readFile(&out, path), raw)
		require.Equal(t, want, out.D.Duration(), raw)
	}
}

func TestDurationMarshalYAML(t *testing.T) {
	out, err := duration(90 * time.Second).MarshalYAML()
	require.NoError(t, err)
	require.Equal(t, "1m30s", out)
}
