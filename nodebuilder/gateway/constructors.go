package gateway

import (
	"github.com/0glabs/0g-da-light/api/gateway"
	"github.com/0glabs/0g-da-light/nodebuilder/das"
)

// Handler constructs a new gateway Handler from the given services.
func Handler(cfg *Config, das das.Module, serv *gateway.Server) {
	handler := gateway.NewHandler(das, cfg.SampleAmount)
	handler.RegisterEndpoints(serv)
	handler.RegisterMiddleware(serv)
}

func server(cfg *Config) *gateway.Server {
	return gateway.NewServer(cfg.Address, cfg.Port, cfg.AllowedOrigins)
}
