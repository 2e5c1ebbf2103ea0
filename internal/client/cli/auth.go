package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Log in and remember the user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var email string
			if len(args) == 1 {
				email = args[0]
			} else {
				var err error
				if email, err = getSimpleText(a.reader, "Email", out); err != nil {
					return err
				}
			}

			password, err := getPassword(out)
			if err != nil {
				return err
			}
			defer wipe(password)

			s, err := a.client().Login(cmd.Context(), email, string(password))
			if err != nil {
				return err
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			if err := store.Save(s); err != nil {
				return err
			}

			fmt.Fprintf(out, "Login successful. Welcome, %s.\n", s.DisplayName())
			return nil
		},
	}
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the remembered user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the remembered user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.currentSession()
			if err != nil {
				return err
			}
			if s.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", s.Email, s.Name)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), s.Email)
			}
			return nil
		},
	}
}
