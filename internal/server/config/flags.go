package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/crmdash/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   listen address (e.g. ":3000")
//	-t string   Airtable token
//	-b string   Airtable base id
//	-u string   Airtable REST root
//	-U string   users table
//	-D string   details table
//	-m int      max request body bytes
//	-s string   static asset directory
//	-l string   log level
//	-memory     keep details in memory
//
// Unrecognised arguments are filtered out first with flagx.FilterArgs; a
// malformed value for a recognised flag panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-t", "-b", "-u", "-U", "-D", "-m", "-s", "-l"},
		"-memory")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.AirtableToken, "t", config.AirtableToken, "Airtable API token")
	fs.StringVar(&config.AirtableBaseID, "b", config.AirtableBaseID, "Airtable base id")
	fs.StringVar(&config.AirtableBaseURL, "u", config.AirtableBaseURL, "Airtable REST root")
	fs.StringVar(&config.UsersTable, "U", config.UsersTable, "users table name")
	fs.StringVar(&config.DetailsTable, "D", config.DetailsTable, "details table name")
	fs.Int64Var(&config.MaxBodyBytes, "m", config.MaxBodyBytes, "max request body size in bytes")
	fs.StringVar(&config.StaticDir, "s", config.StaticDir, "serve assets from this directory")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.InMemory, "memory", config.InMemory, "use in-memory storage")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
