package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://ecommerce.routemisr.com/api/v1", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "shopfront.db", c.DatabaseDSN)
	assert.Equal(t, "shopfront.key", c.KeyPath)
	assert.Equal(t, "http://localhost:3000", c.HomeURL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://ecommerce.routemisr.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SHOPFRONT_API_URL", "http://localhost:8080/api/v1")
	t.Setenv("SHOPFRONT_REQUEST_TIMEOUT", "5s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "shopfront.db", cfg.DatabaseDSN)
}

func TestParseEnv_IgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("SHOPFRONT_REQUEST_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
