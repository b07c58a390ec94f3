package das

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var (
	streamIDFlag        = "das.stream-id"
	maxSampleAmountFlag = "das.max-sample-amount"
)

// Flags gives a set of hardcoded DAS flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		streamIDFlag,
		"",
		"Hex encoded KV stream id batch metadata is published to",
	)
	flags.Uint32(
		maxSampleAmountFlag,
		0,
		"Maximum amount of cells sampled per request. Larger requests are capped",
	)

	return flags
}

// ParseFlags parses DAS flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) error {
	if cmd.Flags().Changed(streamIDFlag) {
		cfg.StreamID = cmd.Flag(streamIDFlag).Value.String()
	}
	if cmd.Flags().Changed(maxSampleAmountFlag) {
		amount, err := cmd.Flags().GetUint32(maxSampleAmountFlag)
		if err != nil {
			return err
		}
		cfg.MaxSampleAmount = amount
	}
	return nil
}
