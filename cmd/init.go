package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/0glabs/0g-da-light/nodebuilder"
)

// Init constructs a CLI command to initialize the node store with the given flags.
func Init(fsets ...*flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "init",
		Short:             "Initialization for the DA light node. Passed flags have persisted effect.",
		Args:              cobra.NoArgs,
		PersistentPreRunE: PersistentPreRunEnv,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return nodebuilder.Init(NodeConfig(ctx), StorePath(ctx))
		},
	}
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}
