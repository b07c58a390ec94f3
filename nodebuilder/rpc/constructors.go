package rpc

import (
	"github.com/cristalhq/jwt/v5"

	"github.com/0glabs/0g-da-light/api/rpc"
	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
)

// registerEndpoints registers the given services on the rpc.
func registerEndpoints(
	dasMod das.Module,
	nodeMod node.Module,
	serv *rpc.Server,
) {
	serv.RegisterService("das", dasMod, &das.API{})
	serv.RegisterService("node", nodeMod, &node.API{})
}

func server(cfg *Config, verifier jwt.Verifier) *rpc.Server {
	return rpc.NewServer(cfg.Address, cfg.Port, cfg.SkipAuth, cfg.CORS.toServer(), verifier)
}
