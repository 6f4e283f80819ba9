package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newEncodeCommand constructs the `encode` subcommand.
func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <literal>",
		Short: "Pack a typed literal such as ints(1, 2) into a UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer srv.Close()
			id, err := srv.Encode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
}

// newDecodeCommand constructs the `decode` subcommand.
func newDecodeCommand() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <uuid>",
		Short: "Unpack a UUID into a typed literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetString("width")
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid uuid %q: %w", args[0], err)
			}
			srv, err := newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer srv.Close()
			text, err := srv.Decode(width, &id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	decodeCmd.Flags().String("width", "bytes", "Element width: bytes|shorts|chars|ints|longs|floats|doubles")
	return decodeCmd
}
