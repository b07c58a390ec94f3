package das

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.StreamID = "0x1234"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.StreamID = "not hex"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxSampleAmount = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.StreamID = "0x" + "ab" + "00000000000000000000000000000000000000000000000000000000000000"
	require.NoError(t, cfg.Validate())
	opts, err := cfg.options()
	require.NoError(t, err)
	require.Len(t, opts, 2)
}
