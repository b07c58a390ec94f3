package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/0glabs/0g-da-light/api/rpc/perms"
	"github.com/0glabs/0g-da-light/libs/authtoken"
	nodemod "github.com/0glabs/0g-da-light/nodebuilder/node"
)

const ttlFlag = "ttl"

// AuthCmd constructs a CLI command signing tokens with the secret of the local node store.
// The secret is generated when the store has none yet.
func AuthCmd(fsets ...*flag.FlagSet) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "auth [permission-level (e.g. read || write || admin)]",
		Short: "Signs and outputs a JWT token with the given permissions.",
		Long: "Signs and outputs a JWT token with the given permissions. The token is signed " +
			"with the secret kept in the node store, so the node does not need to be running.",
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: PersistentPreRunEnv,
		RunE:              newToken,
	}

	cmd.Flags().Duration(ttlFlag, 0, "Set a Time-to-live (TTL) for the token")
	for _, set := range fsets {
		cmd.Flags().AddFlagSet(set)
	}
	return cmd
}

func newToken(cmd *cobra.Command, args []string) error {
	permissions, err := perms.With(args[0])
	if err != nil {
		return err
	}
	ttl, err := cmd.Flags().GetDuration(ttlFlag)
	if err != nil {
		return err
	}

	ks, err := openKeystore(StorePath(cmd.Context()))
	if err != nil {
		return err
	}
	secret, err := nodemod.Secret(ks)
	if err != nil {
		return err
	}
	signer, err := authtoken.NewHS256(secret)
	if err != nil {
		return err
	}

	token, err := perms.NewTokenWithPerms(signer, permissions, ttl)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(token))
	return nil
}
