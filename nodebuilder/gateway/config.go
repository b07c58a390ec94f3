package gateway

import (
	"fmt"
	"strconv"

	"github.com/0glabs/0g-da-light/das"
	"github.com/0glabs/0g-da-light/libs/utils"
)

type Config struct {
	Address string
	Port    string
	Enabled bool
	// AllowedOrigins lists the origins allowed to make cross-origin requests.
	AllowedOrigins []string
	// SampleAmount is the amount of cells sampled when a request omits times.
	SampleAmount uint32
}

func DefaultConfig() Config {
	return Config{
		Address:        defaultBindAddress,
		Port:           defaultPort,
		Enabled:        false,
		AllowedOrigins: []string{},
		SampleAmount:   das.DefaultSampleAmount,
	}
}

func (cfg *Config) Validate() error {
	sanitizedAddress, err := utils.ValidateAddr(cfg.Address)
	if err != nil {
		return fmt.Errorf("service/gateway: invalid address: %w", err)
	}
	cfg.Address = sanitizedAddress

	_, err = strconv.Atoi(cfg.Port)
	if err != nil {
		return fmt.Errorf("service/gateway: invalid port: %s", err.Error())
	}
	return nil
}
