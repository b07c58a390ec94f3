package grpc

import (
	"fmt"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var (
	disabledFlag = "grpc.disabled"
	addrFlag     = "grpc.addr"
	portFlag     = "grpc.port"
)

// Flags gives a set of hardcoded node/grpc package flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.Bool(
		disabledFlag,
		false,
		"Disables the gRPC Light service",
	)
	flags.String(
		addrFlag,
		"",
		fmt.Sprintf("Set a custom gRPC listen address (default: %s)", defaultBindAddress),
	)
	flags.String(
		portFlag,
		"",
		fmt.Sprintf("Set a custom gRPC port (default: %s)", defaultPort),
	)

	return flags
}

// ParseFlags parses gRPC flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) {
	disabled, err := cmd.Flags().GetBool(disabledFlag)
	if err == nil && disabled {
		cfg.Enabled = false
	}
	if addr := cmd.Flag(addrFlag); addr != nil && addr.Value.String() != "" {
		cfg.Address = addr.Value.String()
	}
	if port := cmd.Flag(portFlag); port != nil && port.Value.String() != "" {
		cfg.Port = port.Value.String()
	}
}
