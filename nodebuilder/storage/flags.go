package storage

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var urlsFlag = "storage.urls"

// Flags gives a set of hardcoded storage flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.StringSlice(
		urlsFlag,
		nil,
		"Comma separated JSON-RPC URLs of storage nodes segments are downloaded from, in order of preference",
	)

	return flags
}

// ParseFlags parses storage flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) error {
	if !cmd.Flags().Changed(urlsFlag) {
		return nil
	}
	urls, err := cmd.Flags().GetStringSlice(urlsFlag)
	if err != nil {
		return err
	}
	cfg.URLs = urls
	return nil
}
