package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	rpc "github.com/0glabs/0g-da-light/api/rpc/client"
	"github.com/0glabs/0g-da-light/api/rpc/perms"
	"github.com/0glabs/0g-da-light/libs/authtoken"
	"github.com/0glabs/0g-da-light/libs/keystore"
	"github.com/0glabs/0g-da-light/nodebuilder"
	nodemod "github.com/0glabs/0g-da-light/nodebuilder/node"
)

const (
	// defaultRPCAddress is a default address to dial to
	defaultRPCAddress = "http://localhost:26658"
)

var (
	requestURL    string
	authTokenFlag string
)

func RPCFlags() *flag.FlagSet {
	fset := &flag.FlagSet{}

	fset.StringVar(
		&requestURL,
		"url",
		defaultRPCAddress,
		"Request URL",
	)

	fset.StringVar(
		&authTokenFlag,
		"token",
		"",
		"Authorization token",
	)

	storeFlag := NodeFlags().Lookup(nodeStoreFlag)
	fset.AddFlag(storeFlag)
	return fset
}

func InitClient(cmd *cobra.Command, _ []string) error {
	if authTokenFlag == "" {
		token, err := getToken(getStorePath(cmd))
		if err != nil {
			return fmt.Errorf("cant get the access to the auth token: %w", err)
		}
		authTokenFlag = token
	}

	client, err := rpc.NewClient(cmd.Context(), requestURL, authTokenFlag)
	if err != nil {
		return err
	}

	ctx := context.WithValue(cmd.Context(), rpcClientKey{}, client)
	cmd.SetContext(ctx)
	return nil
}

func getStorePath(cmd *cobra.Command) string {
	if flg := cmd.Flag(nodeStoreFlag); flg != nil {
		return flg.Value.String()
	}
	return nodebuilder.DefaultStorePath
}

// getToken signs an admin token with the secret of the local node store.
func getToken(path string) (string, error) {
	if path == "" {
		return "", errors.New("root directory was not specified")
	}

	ks, err := openKeystore(path)
	if err != nil {
		return "", err
	}

	key, err := ks.Get(nodemod.SecretName)
	if err != nil {
		return "", fmt.Errorf("getting the JWT secret: %w", err)
	}
	signer, err := authtoken.NewHS256(key.Body)
	if err != nil {
		return "", err
	}
	token, err := perms.NewTokenWithPerms(signer, perms.AllPerms, 0)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func openKeystore(path string) (keystore.Keystore, error) {
	expanded, err := homedir.Expand(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return keystore.NewFSKeystore(filepath.Join(expanded, "keys"))
}

type rpcClientKey struct{}

func ParseClientFromCtx(ctx context.Context) (*rpc.Client, error) {
	client, ok := ctx.Value(rpcClientKey{}).(*rpc.Client)
	if !ok {
		return nil, errors.New("rpc client was not set")
	}
	return client, nil
}
