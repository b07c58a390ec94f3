package rpc

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var (
	addrFlag               = "rpc.addr"
	portFlag               = "rpc.port"
	authFlag               = "rpc.skip-auth"
	corsEnabledFlag        = "rpc.cors-enabled"
	corsAllowedOriginsFlag = "rpc.cors-allowed-origins"
	corsAllowedMethodsFlag = "rpc.cors-allowed-methods"
	corsAllowedHeadersFlag = "rpc.cors-allowed-headers"
)

// Flags gives a set of hardcoded node/rpc package flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		addrFlag,
		"",
		fmt.Sprintf("Set a custom RPC listen address (default: %s)", defaultBindAddress),
	)
	flags.String(
		portFlag,
		"",
		fmt.Sprintf("Set a custom RPC port (default: %s)", defaultPort),
	)
	flags.Bool(
		authFlag,
		false,
		"Skips authentication for RPC requests",
	)
	flags.Bool(
		corsEnabledFlag,
		false,
		"Enable CORS for RPC server",
	)
	flags.StringSlice(
		corsAllowedOriginsFlag,
		[]string{},
		"Comma-separated list of origins allowed to access the RPC server via CORS (cors enabled default: empty)",
	)
	flags.StringSlice(
		corsAllowedMethodsFlag,
		[]string{},
		fmt.Sprintf("Comma-separated list of HTTP methods allowed for CORS (cors enabled default: %s)",
			defaultAllowedMethods),
	)
	flags.StringSlice(
		corsAllowedHeadersFlag,
		[]string{},
		fmt.Sprintf("Comma-separated list of HTTP headers allowed for CORS (cors enabled default: %s)",
			defaultAllowedHeaders),
	)

	return flags
}

// ParseFlags parses RPC flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) error {
	if cmd.Flag(addrFlag) == nil || cmd.Flag(portFlag) == nil {
		return errors.New("rpc flags are not registered on the command")
	}

	addr := cmd.Flag(addrFlag).Value.String()
	if addr != "" {
		cfg.Address = addr
	}
	port := cmd.Flag(portFlag).Value.String()
	if port != "" {
		cfg.Port = port
	}

	skipAuth, err := cmd.Flags().GetBool(authFlag)
	if err != nil {
		return err
	}
	if skipAuth {
		cfg.SkipAuth = true
	}

	corsEnabled, err := cmd.Flags().GetBool(corsEnabledFlag)
	if err != nil {
		return err
	}
	origins, err := cmd.Flags().GetStringSlice(corsAllowedOriginsFlag)
	if err != nil {
		return err
	}
	methods, err := cmd.Flags().GetStringSlice(corsAllowedMethodsFlag)
	if err != nil {
		return err
	}
	headers, err := cmd.Flags().GetStringSlice(corsAllowedHeadersFlag)
	if err != nil {
		return err
	}

	if !corsEnabled {
		if len(origins) > 0 || len(methods) > 0 || len(headers) > 0 {
			return fmt.Errorf("rpc: CORS options are set, but %s is not", corsEnabledFlag)
		}
		return nil
	}

	if len(methods) == 0 {
		methods = defaultAllowedMethods
	}
	if len(headers) == 0 {
		headers = defaultAllowedHeaders
	}
	cfg.CORS = CORSConfig{
		Enabled:        true,
		AllowedOrigins: origins,
		AllowedMethods: methods,
		AllowedHeaders: headers,
	}
	return nil
}
