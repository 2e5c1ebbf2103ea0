package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/crmdash/internal/client/api"
	"github.com/spf13/cobra"
)

func (a *App) detailsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Show or save company details",
	}
	cmd.AddCommand(a.detailsShowCommand(), a.detailsSaveCommand())
	return cmd
}

func (a *App) detailsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored company details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.currentSession()
			if err != nil {
				return err
			}

			rec, err := a.client().GetDetails(cmd.Context(), s)
			if err != nil {
				return err
			}
			if rec == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No details saved yet.")
				return nil
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func (a *App) detailsSaveCommand() *cobra.Command {
	var d api.Details

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update the company details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.currentSession()
			if err != nil {
				return err
			}

			// The backend overwrites every field, so unset flags keep the stored values.
			flags := cmd.Flags()
			if !flags.Changed("company") || !flags.Changed("phone") || !flags.Changed("notes") {
				current, err := a.client().GetDetails(cmd.Context(), s)
				if err != nil {
					return err
				}
				if current != nil {
					if !flags.Changed("company") {
						d.Company = current.Fields.Company
					}
					if !flags.Changed("phone") {
						d.Phone = current.Fields.Phone
					}
					if !flags.Changed("notes") {
						d.Notes = current.Fields.Notes
					}
				}
			}

			rec, msg, err := a.client().SaveDetails(cmd.Context(), s, d)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			if rec != nil {
				printRecord(cmd.OutOrStdout(), rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Company, "company", "", "company name")
	cmd.Flags().StringVar(&d.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&d.Notes, "notes", "", "free-form notes")
	return cmd
}

func printRecord(w io.Writer, rec *api.Record) {
	fmt.Fprintf(w, "Email:   %s\n", rec.Fields.Email)
	fmt.Fprintf(w, "Company: %s\n", rec.Fields.Company)
	fmt.Fprintf(w, "Phone:   %s\n", rec.Fields.Phone)
	fmt.Fprintf(w, "Notes:   %s\n", rec.Fields.Notes)
}
