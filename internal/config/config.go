package config

import "time"

// Config holds runtime settings for the shopfront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the storefront REST backend, including the
//     version prefix.
//   - RequestTimeout: per-request deadline for backend calls.
//   - DatabaseDSN: path of the local SQLite file holding session tokens.
//   - KeyPath: path of the local key file sealing stored tokens.
//   - HomeURL: address the browser flows return to (payment redirect and
//     the post-reset redirect).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
	KeyPath        string
	HomeURL        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://ecommerce.routemisr.com/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "shopfront.db"
	c.KeyPath = "shopfront.key"
	c.HomeURL = "http://localhost:3000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, from JSON (if present) and from command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
