package kv

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var urlFlag = "kv.url"

// Flags gives a set of hardcoded KV flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		urlFlag,
		"",
		"JSON-RPC URL of the KV node batch metadata is read from",
	)

	return flags
}

// ParseFlags parses KV flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed(urlFlag) {
		cfg.URL = cmd.Flag(urlFlag).Value.String()
	}
}
