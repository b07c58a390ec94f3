package grpc

import (
	"fmt"
	"net"
	"strconv"
)

const (
	defaultBindAddress = "0.0.0.0"
	defaultPort        = "50051"
)

// Config configures the gRPC Light service.
type Config struct {
	Enabled bool
	Address string
	Port    string
}

func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Address: defaultBindAddress,
		Port:    defaultPort,
	}
}

func (cfg *Config) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if ip := net.ParseIP(cfg.Address); ip == nil {
		return fmt.Errorf("service/grpc: invalid listen address format: %s", cfg.Address)
	}
	_, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return fmt.Errorf("service/grpc: invalid port: %s", err.Error())
	}
	return nil
}

func (cfg *Config) listenAddr() string {
	return net.JoinHostPort(cfg.Address, cfg.Port)
}
