package rpc

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, set map[string]string) (Config, error) {
	t.Helper()

	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(Flags())
	for name, val := range set {
		require.NoError(t, cmd.Flags().Set(name, val))
	}
	cfg := DefaultConfig()
	err := ParseFlags(cmd, &cfg)
	return cfg, err
}

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := parse(t, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("listen address and auth", func(t *testing.T) {
		cfg, err := parse(t, map[string]string{
			addrFlag: "0.0.0.0",
			portFlag: "9090",
			authFlag: "true",
		})
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Address)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.SkipAuth)
		assert.False(t, cfg.CORS.Enabled)
	})

	t.Run("cors with custom options", func(t *testing.T) {
		cfg, err := parse(t, map[string]string{
			corsEnabledFlag:        "true",
			corsAllowedOriginsFlag: "http://localhost:3000,https://example.com",
			corsAllowedMethodsFlag: "GET,POST",
			corsAllowedHeadersFlag: "X-Requested-With",
		})
		require.NoError(t, err)
		assert.True(t, cfg.CORS.Enabled)
		assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, []string{"GET", "POST"}, cfg.CORS.AllowedMethods)
		assert.Equal(t, []string{"X-Requested-With"}, cfg.CORS.AllowedHeaders)
	})

	t.Run("cors without options falls back to defaults", func(t *testing.T) {
		cfg, err := parse(t, map[string]string{corsEnabledFlag: "true"})
		require.NoError(t, err)
		assert.Empty(t, cfg.CORS.AllowedOrigins)
		assert.Equal(t, defaultAllowedMethods, cfg.CORS.AllowedMethods)
		assert.Equal(t, defaultAllowedHeaders, cfg.CORS.AllowedHeaders)
	})

	t.Run("cors options require cors", func(t *testing.T) {
		_, err := parse(t, map[string]string{corsAllowedOriginsFlag: "http://localhost:3000"})
		assert.Error(t, err)
	})
}

func TestParseFlags_Unregistered(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, ParseFlags(&cobra.Command{}, &cfg))
}
