package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerURL: base URL of the crmdash backend.
//   - Timeout: per-request timeout for backend calls.
//   - SessionFile: where the remembered login is stored. Empty means the
//     per-user default location.
type Config struct {
	ServerURL   string
	Timeout     time.Duration
	SessionFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.Timeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if named in args) and the environment.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	return cfg
}
