// Package cli implements the crmdash command-line client.
//
// Commands
//
//	login [email]              prompt for a password and remember the user
//	logout                     forget the remembered user
//	whoami                     show the remembered user
//	details show               print the user's company details
//	details save [flags]       create or update the company details
//
// details save only changes the fields whose flags are given; the others
// keep their stored values.
//
// Global flags: --server/-a (backend URL), --timeout, --session (session
// file) and --config/-c (JSON config, see package config).
package cli
