package node

import (
	"github.com/cristalhq/jwt/v5"
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"
)

var log = logging.Logger("module/node")

func ConstructModule() fx.Option {
	return fx.Module(
		"node",
		fx.Provide(signer),
		fx.Provide(func(alg *jwt.HSAlg) (jwt.Signer, jwt.Verifier) {
			return alg, alg
		}),
		fx.Provide(newModule),
	)
}
