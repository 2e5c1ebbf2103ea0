package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// parseEnv overlays non-empty environment variables:
//
//	PORT                    listen port, or a full host:port
//	AIRTABLE_TOKEN          API token
//	AIRTABLE_BASE_ID        base identifier
//	AIRTABLE_API_URL        REST root
//	AIRTABLE_USERS_TABLE    users table name
//	AIRTABLE_DETAILS_TABLE  details table name
//	MAX_BODY_BYTES          request body limit
//	STATIC_DIR              asset directory override
//	LOG_LEVEL               log level
//
// A non-numeric MAX_BODY_BYTES panics.
func parseEnv(config *Config) {
	if v := lookup("PORT"); v != "" {
		config.ListenAddr = listenAddr(v)
	}

	stringVars := map[string]*string{
		"AIRTABLE_TOKEN":         &config.AirtableToken,
		"AIRTABLE_BASE_ID":       &config.AirtableBaseID,
		"AIRTABLE_API_URL":       &config.AirtableBaseURL,
		"AIRTABLE_USERS_TABLE":   &config.UsersTable,
		"AIRTABLE_DETAILS_TABLE": &config.DetailsTable,
		"STATIC_DIR":             &config.StaticDir,
		"LOG_LEVEL":              &config.LogLevel,
	}
	for name, dst := range stringVars {
		if v := lookup(name); v != "" {
			*dst = v
		}
	}

	if v := lookup("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			panic(fmt.Errorf("invalid MAX_BODY_BYTES %q", v))
		}
		config.MaxBodyBytes = n
	}
}

func lookup(name string) string {
	v, _ := os.LookupEnv(name)
	return strings.TrimSpace(v)
}

// listenAddr turns a bare port into ":port" and leaves host:port untouched.
func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
