package config_test

import (
	"os"
	"path/filepath"
	"phishguard/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: test\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.InDelta(t, 1.0, cfg.Policy.HeuristicWeight, 1e-9)
	require.InDelta(t, 0.7, cfg.Policy.CertWeight, 1e-9)
	require.InDelta(t, 0.8, cfg.Policy.MLWeight, 1e-9)
	require.InDelta(t, 65.0, cfg.Policy.PhishingThreshold, 1e-9)
	require.InDelta(t, 20.0, cfg.Policy.CookieMergeMin, 1e-9)
	require.Equal(t, 2*time.Second, cfg.Detector.CookieSettleDelay)
	require.Equal(t, time.Hour, cfg.Blacklist.RefreshInterval)
	require.Equal(t, "https://openphish.com/feed.txt", cfg.Blacklist.FeedURL)
	require.Equal(t, []string{"Let's Encrypt", "ZeroSSL", "SSL.com", "cPanel", "Cloudflare"}, cfg.Certificate.FreeCAs)
	require.Equal(t, "heuristic", cfg.ML.Provider)
	require.InDelta(t, 0.7, cfg.ML.PrimaryShare, 1e-9)
	require.Equal(t, time.Minute, cfg.Cache.DegradedTTL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
policy:
  phishingThreshold: 80
cache:
  size: 42
  ttl: 5m
blacklist:
  allowlist: ["*.corp.example", "intranet.example"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.InDelta(t, 80.0, cfg.Policy.PhishingThreshold, 1e-9)
	require.Equal(t, 42, cfg.Cache.Size)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, []string{"*.corp.example", "intranet.example"}, cfg.Blacklist.Allowlist)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("policy:\n  phishingThreshold: 80\n"), 0o600))
	t.Setenv("POLICY_PHISHING_THRESHOLD", "70")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.InDelta(t, 70.0, cfg.Policy.PhishingThreshold, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Defaults()
	require.NoError(t, err)
	require.Equal(t, 10000, cfg.Cache.Size)
}
