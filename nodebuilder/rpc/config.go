package rpc

import (
	"fmt"
	"strconv"

	"github.com/0glabs/0g-da-light/api/rpc"
	"github.com/0glabs/0g-da-light/libs/utils"
)

type Config struct {
	Address  string
	Port     string
	SkipAuth bool
	CORS     CORSConfig
}

// CORSConfig configures cross-origin requests to the RPC server.
type CORSConfig struct {
	Enabled        bool
	AllowedOrigins []string
	AllowedHeaders []string
	AllowedMethods []string
}

func DefaultConfig() Config {
	return Config{
		Address: defaultBindAddress,
		// do NOT expose the same port as the storage and KV nodes by default so that all can run on the same machine
		Port:     defaultPort,
		SkipAuth: false,
		CORS: CORSConfig{
			Enabled:        false,
			AllowedOrigins: []string{},
			AllowedHeaders: defaultAllowedHeaders,
			AllowedMethods: defaultAllowedMethods,
		},
	}
}

// RequestURL returns the URL clients reach the server at.
func (cfg *Config) RequestURL() string {
	return fmt.Sprintf("http://%s:%s", cfg.Address, cfg.Port)
}

func (cfg *Config) Validate() error {
	sanitizedAddress, err := utils.ValidateAddr(cfg.Address)
	if err != nil {
		return fmt.Errorf("service/rpc: invalid address: %w", err)
	}
	cfg.Address = sanitizedAddress

	_, err = strconv.Atoi(cfg.Port)
	if err != nil {
		return fmt.Errorf("service/rpc: invalid port: %s", err.Error())
	}
	return nil
}

func (c CORSConfig) toServer() rpc.CORSConfig {
	return rpc.CORSConfig{
		Enabled:        c.Enabled,
		AllowedOrigins: c.AllowedOrigins,
		AllowedHeaders: c.AllowedHeaders,
		AllowedMethods: c.AllowedMethods,
	}
}
