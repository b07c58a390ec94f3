package gateway

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(Flags())
	for name, val := range set {
		require.NoError(t, cmd.Flags().Set(name, val))
	}
	return cmd
}

func TestParseFlags(t *testing.T) {
	t.Run("no flags keep config", func(t *testing.T) {
		cfg := DefaultConfig()
		ParseFlags(newCmd(t, nil), &cfg)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("enable with custom listen address", func(t *testing.T) {
		cfg := DefaultConfig()
		ParseFlags(newCmd(t, map[string]string{
			enabledFlag: "true",
			addrFlag:    "0.0.0.0",
			portFlag:    "9000",
		}), &cfg)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, "0.0.0.0", cfg.Address)
		assert.Equal(t, "9000", cfg.Port)
	})

	t.Run("address is applied while disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		ParseFlags(newCmd(t, map[string]string{portFlag: "9001"}), &cfg)
		assert.False(t, cfg.Enabled)
		assert.Equal(t, "9001", cfg.Port)
		assert.Equal(t, defaultBindAddress, cfg.Address)
	})

	t.Run("allowed origins", func(t *testing.T) {
		cfg := DefaultConfig()
		ParseFlags(newCmd(t, map[string]string{allowedOriginsFlag: "http://a.org,http://b.org"}), &cfg)
		assert.Equal(t, []string{"http://a.org", "http://b.org"}, cfg.AllowedOrigins)
	})

	t.Run("sample amount", func(t *testing.T) {
		cfg := DefaultConfig()
		ParseFlags(newCmd(t, map[string]string{sampleAmountFlag: "0"}), &cfg)
		assert.Zero(t, cfg.SampleAmount)
	})
}
