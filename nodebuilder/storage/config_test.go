package storage

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "no urls", mutate: func(c *Config) { c.URLs = nil }, wantErr: true},
		{name: "bad url", mutate: func(c *Config) { c.URLs = []string{"127.0.0.1:5678"} }, wantErr: true},
		{name: "negative retry", mutate: func(c *Config) { c.MaxRetry = -1 }, wantErr: true},
		{name: "small pool", mutate: func(c *Config) { c.PoolSize = c.MaxDownloadTasks - 1 }, wantErr: true},
		{name: "no wait", mutate: func(c *Config) { c.RetryWait = 0 }},
		{name: "negative wait", mutate: func(c *Config) { c.RetryWait = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(Flags())
	require.NoError(t, cmd.Flags().Set(urlsFlag, "http://a:1,http://b:2"))

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(cmd, &cfg))
	require.Equal(t, []string{"http://a:1", "http://b:2"}, cfg.URLs)
}
