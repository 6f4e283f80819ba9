package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newReportCommand constructs the `report` subcommand.
func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report <url>",
		Short: "Report content at a location to the reconciliation ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			party, _ := cmd.Flags().GetString("party")
			expected, _ := cmd.Flags().GetInt("expected")
			if party == "" {
				return fmt.Errorf("--party is required")
			}
			srv, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer srv.Close()
			group, complete, err := srv.ReportURL(cmd.Context(), party, args[0], expected)
			if err != nil {
				return err
			}
			status := "pending"
			if complete {
				status = "complete"
			} else if group.Done() {
				status = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d\n", group.ID.String(), status, len(group.Parties), group.Expected)
			return nil
		},
	}
	reportCmd.Flags().String("party", "", "Reporting party name")
	reportCmd.Flags().Int("expected", 2, "Number of parties expected to report the same content")
	return reportCmd
}
