package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/0glabs/0g-da-light/cmd"
	das "github.com/0glabs/0g-da-light/nodebuilder/das/cmd"
	node "github.com/0glabs/0g-da-light/nodebuilder/node/cmd"
)

func init() {
	das.Cmd.PersistentFlags().AddFlagSet(cmd.RPCFlags())
	node.Cmd.PersistentFlags().AddFlagSet(cmd.RPCFlags())

	rootCmd.AddCommand(
		cmd.Init(cmd.NodeFlagSets()...),
		cmd.Start(cmd.NodeFlagSets()...),
		cmd.UpdateConfig(cmd.NodeFlagSets()...),
		cmd.Reset(cmd.NodeFlagSets()...),
		cmd.AuthCmd(cmd.NodeFlagSets()...),
		das.Cmd,
		node.Cmd,
		versionCmd,
	)
	rootCmd.SetHelpCommand(&cobra.Command{})
}

func main() {
	err := run()
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	return rootCmd.ExecuteContext(context.Background())
}

var rootCmd = &cobra.Command{
	Use:   "da-light [subcommand]",
	Short: "Light client sampling data availability of batches stored on storage nodes",
	Args:  cobra.NoArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}
