package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	// localhost is resolved to an IP
	assert.Equal(t, "127.0.0.1", cfg.Address)

	cfg.Port = "port"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Address = ""
	assert.Error(t, cfg.Validate())
}
