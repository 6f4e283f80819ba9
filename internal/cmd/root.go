package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/viant/uuidkit"
)

// NewRoot constructs the root command with all subcommands registered.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "uuidkit",
		Short:         "UUID codec and deterministic identifier toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Service configuration URL (YAML)")
	root.AddCommand(
		newEncodeCommand(),
		newDecodeCommand(),
		newNameCommand(),
		newDigestCommand(),
		newCombineCommand(),
		newReportCommand(),
	)
	return root
}

// newService builds a service honouring the --config flag.
func newService(ctx context.Context, cmd *cobra.Command) (*uuidkit.Service, error) {
	URL, _ := cmd.Flags().GetString("config")
	if URL == "" {
		return uuidkit.New()
	}
	config, err := uuidkit.LoadConfig(ctx, nil, URL)
	if err != nil {
		return nil, err
	}
	return uuidkit.New(uuidkit.WithConfig(config))
}
