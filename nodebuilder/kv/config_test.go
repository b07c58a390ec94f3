package kv

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.CacheSize = 0
	require.NoError(t, cfg.Validate())

	cfg.MaxQuerySize = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.URL = ""
	require.Error(t, cfg.Validate())
}

func TestParseFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(Flags())

	cfg := DefaultConfig()
	ParseFlags(cmd, &cfg)
	require.Equal(t, DefaultConfig().URL, cfg.URL)

	require.NoError(t, cmd.Flags().Set(urlFlag, "https://kv.example.org"))
	ParseFlags(cmd, &cfg)
	require.Equal(t, "https://kv.example.org", cfg.URL)
}
