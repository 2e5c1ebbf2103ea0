// Package config handles configuration for the CRM dashboard server:
// defaults, an optional JSON file, environment variables and command-line
// flags, applied in that order.
package config

// DefaultAirtableURL is the public Airtable REST endpoint.
const DefaultAirtableURL = "https://api.airtable.com/v0"

// Config holds runtime settings for the server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP server.
//   - AirtableToken / AirtableBaseID: credentials of the remote table store.
//     When either is empty every remote call fails with a configuration error.
//   - AirtableBaseURL: REST root, overridable for tests and proxies.
//   - UsersTable / DetailsTable: remote table names.
//   - MaxBodyBytes: inbound request bodies above this size drop the connection.
//   - StaticDir: serve browser assets from this directory instead of the
//     embedded copy.
//   - InMemory: serve users and details from process memory and skip
//     Airtable entirely (development only).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr      string
	AirtableToken   string
	AirtableBaseID  string
	AirtableBaseURL string
	UsersTable      string
	DetailsTable    string
	MaxBodyBytes    int64
	StaticDir       string
	InMemory        bool
	LogLevel        string
}

// LoadDefaults populates Config with development defaults. Credentials are
// deliberately left empty.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.AirtableBaseURL = DefaultAirtableURL
	c.UsersTable = "Users"
	c.DetailsTable = "Details"
	c.MaxBodyBytes = 1_000_000
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
