package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/crmdash/internal/client/session"
	"github.com/dmitrijs2005/crmdash/internal/common"
	"github.com/spf13/cobra"
)

// RootCommand builds the command tree. Flag defaults come from a.config and
// parsed flags are written back into it.
func (a *App) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "crmdash",
		Short:         "Manage your company details from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.config.ServerURL, "server", "a", a.config.ServerURL, "backend base URL")
	pf.DurationVar(&a.config.Timeout, "timeout", a.config.Timeout, "request timeout")
	pf.StringVar(&a.config.SessionFile, "session", a.config.SessionFile, "session file (default <config dir>/crmdash/session.json)")
	// Consumed by config.LoadConfig before the tree is built.
	pf.StringVarP(&configPath, "config", "c", "", "JSON config file")

	root.AddCommand(a.loginCommand(), a.logoutCommand(), a.whoamiCommand(), a.detailsCommand())
	return root
}

// currentSession loads the remembered user or explains how to get one.
func (a *App) currentSession() (*session.Session, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	s, err := store.Load()
	if errors.Is(err, common.ErrNotLoggedIn) {
		return nil, fmt.Errorf("%w: run \"crmdash login\" first", err)
	}
	return s, err
}
