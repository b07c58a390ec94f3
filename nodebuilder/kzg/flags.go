package kzg

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var (
	srsPathFlag      = "kzg.srs-path"
	insecureSeedFlag = "kzg.insecure-seed"
)

// Flags gives a set of hardcoded KZG flags.
func Flags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		srsPathFlag,
		"",
		"Path to the public params of a trusted setup cells are verified against",
	)
	flags.String(
		insecureSeedFlag,
		"",
		"Derives public params from the given seed instead. Anyone knowing the seed can forge "+
			"commitments, never use it outside of local networks",
	)

	return flags
}

// ParseFlags parses KZG flags from the given cmd and saves them to the passed config.
func ParseFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed(srsPathFlag) {
		cfg.SRSPath = cmd.Flag(srsPathFlag).Value.String()
	}
	if cmd.Flags().Changed(insecureSeedFlag) {
		cfg.InsecureSeed = cmd.Flag(insecureSeedFlag).Value.String()
	}
}
