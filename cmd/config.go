package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/0glabs/0g-da-light/nodebuilder"
)

// UpdateConfig constructs a CLI command adding fields introduced by newer
// releases to the stored config while keeping the values already set.
func UpdateConfig(fsets ...*flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "config-update",
		Short:             "Updates the node config with default values for newly introduced fields.",
		Args:              cobra.NoArgs,
		PersistentPreRunE: PersistentPreRunEnv,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return nodebuilder.UpdateConfig(StorePath(cmd.Context()))
		},
	}
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}

// Reset constructs a CLI command removing the sampling history of the node store.
// Keys and config are kept.
func Reset(fsets ...*flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reset-store",
		Short:             "Removes the stored sampling history. Keys and config are kept.",
		Args:              cobra.NoArgs,
		PersistentPreRunE: PersistentPreRunEnv,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return nodebuilder.Reset(StorePath(cmd.Context()))
		},
	}
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}
