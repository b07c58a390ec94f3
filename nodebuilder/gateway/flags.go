package gateway

import (
	"fmt"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/0glabs/0g-da-light/das"
)

var (
	enabledFlag        = "gateway"
	addrFlag           = "gateway.addr"
	portFlag           = "gateway.port"
	allowedOriginsFlag = "gateway.cors-allowed-origins"
	sampleAmountFlag   = "gateway.sample-amount"
)

// Flags gives a set of hardcoded node/gateway package flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.Bool(
		enabledFlag,
		false,
		"Enables the REST gateway",
	)
	flags.String(
		addrFlag,
		"",
		fmt.Sprintf("Set a custom gateway listen address (default: %s)", defaultBindAddress),
	)
	flags.String(
		portFlag,
		"",
		fmt.Sprintf("Set a custom gateway port (default: %s)", defaultPort),
	)
	flags.StringSlice(
		allowedOriginsFlag,
		[]string{},
		"Comma-separated list of origins allowed to access the gateway via CORS (default: none)",
	)
	flags.Uint32(
		sampleAmountFlag,
		0,
		fmt.Sprintf("Amount of cells sampled when a request omits times (default: %d)", das.DefaultSampleAmount),
	)

	return flags
}

// ParseFlags parses gateway flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) {
	enabled, err := cmd.Flags().GetBool(enabledFlag)
	if cmd.Flags().Changed(enabledFlag) && err == nil {
		cfg.Enabled = enabled
	}
	addr, port := cmd.Flag(addrFlag), cmd.Flag(portFlag)
	if !cfg.Enabled && (addr.Changed || port.Changed) {
		log.Warn("custom address or port provided without enabling gateway, setting config values")
	}
	addrVal := addr.Value.String()
	if addrVal != "" {
		cfg.Address = addrVal
	}
	portVal := port.Value.String()
	if portVal != "" {
		cfg.Port = portVal
	}
	if cmd.Flags().Changed(allowedOriginsFlag) {
		origins, err := cmd.Flags().GetStringSlice(allowedOriginsFlag)
		if err == nil {
			cfg.AllowedOrigins = origins
		}
	}
	if cmd.Flags().Changed(sampleAmountFlag) {
		amount, err := cmd.Flags().GetUint32(sampleAmountFlag)
		if err == nil {
			cfg.SampleAmount = amount
		}
	}
}
