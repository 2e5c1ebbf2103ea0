package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/crmdash/internal/flagx"
)

// JsonConfig is the on-disk shape of the configuration file.
type JsonConfig struct {
	ListenAddr      string `json:"listen_addr"`
	AirtableToken   string `json:"airtable_token"`
	AirtableBaseID  string `json:"airtable_base_id"`
	AirtableBaseURL string `json:"airtable_base_url"`
	UsersTable      string `json:"users_table"`
	DetailsTable    string `json:"details_table"`
	MaxBodyBytes    int64  `json:"max_body_bytes"`
	StaticDir       string `json:"static_dir"`
	InMemory        bool   `json:"in_memory"`
	LogLevel        string `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. Keys absent
// from the file keep their current value. An unreadable or malformed file
// panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := JsonConfig{
		ListenAddr:      config.ListenAddr,
		AirtableToken:   config.AirtableToken,
		AirtableBaseID:  config.AirtableBaseID,
		AirtableBaseURL: config.AirtableBaseURL,
		UsersTable:      config.UsersTable,
		DetailsTable:    config.DetailsTable,
		MaxBodyBytes:    config.MaxBodyBytes,
		StaticDir:       config.StaticDir,
		InMemory:        config.InMemory,
		LogLevel:        config.LogLevel,
	}
	if err := json.Unmarshal(file, &c); err != nil {
		panic(err)
	}

	config.ListenAddr = c.ListenAddr
	config.AirtableToken = c.AirtableToken
	config.AirtableBaseID = c.AirtableBaseID
	config.AirtableBaseURL = c.AirtableBaseURL
	config.UsersTable = c.UsersTable
	config.DetailsTable = c.DetailsTable
	config.MaxBodyBytes = c.MaxBodyBytes
	config.StaticDir = c.StaticDir
	config.InMemory = c.InMemory
	config.LogLevel = c.LogLevel
}
