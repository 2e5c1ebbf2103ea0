package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/crmdash/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is a
// duration string such as "3s".
type JsonConfig struct {
	ServerURL   string `json:"server_url"`
	Timeout     string `json:"timeout"`
	SessionFile string `json:"session_file"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Keys
// absent from the file keep their current values. Read, unmarshal and
// duration errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.Timeout != "" {
		d, err := time.ParseDuration(jc.Timeout)
		if err != nil {
			panic(err)
		}
		cfg.Timeout = d
	}
}
