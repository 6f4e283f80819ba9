package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newNameCommand constructs the `name` subcommand.
func newNameCommand() *cobra.Command {
	nameCmd := &cobra.Command{
		Use:   "name <text>",
		Short: "Generate a name based UUID from text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, _ := cmd.Flags().GetString("namespace")
			srv, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer srv.Close()
			generator := srv.Generator()
			id := generator.FromString(args[0])
			if namespace != "" {
				ns, err := uuid.Parse(namespace)
				if err != nil {
					return fmt.Errorf("invalid --namespace: %w", err)
				}
				id = generator.FromName(ns, []byte(args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
	nameCmd.Flags().String("namespace", "", "Namespace UUID prefixed to the name")
	return nameCmd
}

// newDigestCommand constructs the `digest` subcommand.
func newDigestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <url>...",
		Short: "Generate content addressed UUIDs for locations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer srv.Close()
			failed := 0
			for _, result := range srv.DigestURLs(cmd.Context(), args...) {
				if result.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", result.URL, result.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", result.ID.String(), result.URL)
			}
			if failed > 0 {
				return fmt.Errorf("failed to digest %d of %d locations", failed, len(args))
			}
			return nil
		},
	}
}

// newCombineCommand constructs the `combine` subcommand.
func newCombineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <uuid>...",
		Short: "Derive one UUID from an ordered list of UUIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, 0, len(args))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid uuid %q: %w", arg, err)
				}
				ids = append(ids, id)
			}
			srv, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer srv.Close()
			fmt.Fprintln(cmd.OutOrStdout(), srv.Generator().FromUUIDs(ids...).String())
			return nil
		},
	}
}
