package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/gateway"
	"github.com/0glabs/0g-da-light/nodebuilder/grpc"
	"github.com/0glabs/0g-da-light/nodebuilder/kv"
	"github.com/0glabs/0g-da-light/nodebuilder/kzg"
	rpc_cfg "github.com/0glabs/0g-da-light/nodebuilder/rpc"
	"github.com/0glabs/0g-da-light/nodebuilder/storage"
)

func PrintOutput(data interface{}, err error, formatData func(interface{}) interface{}) error {
	switch {
	case err != nil:
		data = err.Error()
	case formatData != nil:
		data = formatData(data)
	}

	resp := struct {
		Result interface{} `json:"result"`
	}{
		Result: data,
	}

	bytes, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(bytes))
	return nil
}

// DecodeToBytes decodes a Base64 or hex input string into a byte slice.
func DecodeToBytes(param string) ([]byte, error) {
	if strings.HasPrefix(param, "0x") {
		decoded, err := hex.DecodeString(param[2:])
		if err != nil {
			return nil, fmt.Errorf("error decoding hex: %w", err)
		}
		return decoded, nil
	}
	// otherwise, it's just a base64 string
	decoded, err := base64.StdEncoding.DecodeString(param)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64: %w", err)
	}
	return decoded, nil
}

// PersistentPreRunEnv loads the stored config into the Env and applies
// every flag passed to the command on top of it.
func PersistentPreRunEnv(cmd *cobra.Command, _ []string) error {
	var (
		ctx = cmd.Context()
		err error
	)

	ctx, err = ParseNodeFlags(ctx, cmd)
	if err != nil {
		return err
	}

	cfg := NodeConfig(ctx)

	ctx, err = ParseMiscFlags(ctx, cmd)
	if err != nil {
		return err
	}

	err = das.ParseFlags(cmd, &cfg.DASer)
	if err != nil {
		return err
	}
	err = storage.ParseFlags(cmd, &cfg.Storage)
	if err != nil {
		return err
	}
	err = rpc_cfg.ParseFlags(cmd, &cfg.RPC)
	if err != nil {
		return err
	}
	kv.ParseFlags(cmd, &cfg.KV)
	kzg.ParseFlags(cmd, &cfg.KZG)
	grpc.ParseFlags(cmd, &cfg.GRPC)
	gateway.ParseFlags(cmd, &cfg.Gateway)

	ctx = WithNodeConfig(ctx, &cfg)
	cmd.SetContext(ctx)
	return nil
}

// NodeFlagSets lists the flag sets every node command understands.
func NodeFlagSets() []*flag.FlagSet {
	return []*flag.FlagSet{
		NodeFlags(),
		MiscFlags(),
		das.Flags(),
		storage.Flags(),
		kv.Flags(),
		kzg.Flags(),
		rpc_cfg.Flags(),
		grpc.Flags(),
		gateway.Flags(),
	}
}

// WithFlagSet adds the given flagset to the command.
func WithFlagSet(fset []*flag.FlagSet) func(*cobra.Command) {
	return func(c *cobra.Command) {
		for _, set := range fset {
			c.Flags().AddFlagSet(set)
		}
	}
}
