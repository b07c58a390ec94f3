package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cmdnode "github.com/0glabs/0g-da-light/cmd"
	"github.com/0glabs/0g-da-light/das"
)

func init() {
	Cmd.AddCommand(sampleCmd, lastSampleCmd, batchSamplesCmd, retrieveCmd)
}

var Cmd = &cobra.Command{
	Use:               "das [command]",
	Short:             "Allows to sample blobs via JSON-RPC",
	Args:              cobra.NoArgs,
	PersistentPreRunE: cmdnode.InitClient,
}

var sampleCmd = &cobra.Command{
	Use:   "sample [batch key] [blob index] [times]",
	Short: "Samples random cells of a blob and reports whether all of them verified.",
	Long: "Samples random cells of a blob and reports whether all of them verified.\n" +
		"The batch key is accepted in hex (0x prefixed) or base64. Omitting times samples\n" +
		fmt.Sprintf("%d cells.", das.DefaultSampleAmount),
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdnode.ParseClientFromCtx(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		key, blob, err := parseBlob(args)
		if err != nil {
			return err
		}
		times, err := parseTimes(args)
		if err != nil {
			return err
		}

		available, err := client.DAS.Sample(cmd.Context(), key, blob, times)
		return cmdnode.PrintOutput(available, err, nil)
	},
}

var lastSampleCmd = &cobra.Command{
	Use:   "last-sample [batch key] [blob index]",
	Short: "Returns the last completed sample of a blob.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdnode.ParseClientFromCtx(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		key, blob, err := parseBlob(args)
		if err != nil {
			return err
		}
		rec, err := client.DAS.LastSample(cmd.Context(), key, blob)
		return cmdnode.PrintOutput(rec, err, nil)
	},
}

var batchSamplesCmd = &cobra.Command{
	Use:   "batch-samples [batch key]",
	Short: "Returns the last completed samples of all sampled blobs of a batch.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdnode.ParseClientFromCtx(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		key, err := cmdnode.DecodeToBytes(args[0])
		if err != nil {
			return err
		}
		recs, err := client.DAS.BatchSamples(cmd.Context(), key)
		return cmdnode.PrintOutput(recs, err, nil)
	},
}

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [batch key] [blob index]",
	Short: "Retrieves the data of a blob.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdnode.ParseClientFromCtx(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		key, blob, err := parseBlob(args)
		if err != nil {
			return err
		}
		data, err := client.DAS.Retrieve(cmd.Context(), key, blob)
		return cmdnode.PrintOutput(data, err, nil)
	},
}

func parseBlob(args []string) ([]byte, uint32, error) {
	key, err := cmdnode.DecodeToBytes(args[0])
	if err != nil {
		return nil, 0, err
	}
	blob, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return nil, 0, fmt.Errorf("error parsing blob index: %w", err)
	}
	return key, uint32(blob), nil
}

// parseTimes reads the optional third argument of sample.
func parseTimes(args []string) (uint32, error) {
	if len(args) < 3 {
		return das.DefaultSampleAmount, nil
	}
	times, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("error parsing times: %w", err)
	}
	return uint32(times), nil
}
