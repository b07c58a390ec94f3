package node

import (
	"context"
	"time"

	"github.com/cristalhq/jwt/v5"
	"github.com/filecoin-project/go-jsonrpc/auth"
	logging "github.com/ipfs/go-log/v2"

	"github.com/0glabs/0g-da-light/api/rpc/perms"
	"github.com/0glabs/0g-da-light/libs/authtoken"
)

const APIVersion = "v0.1.0"

type module struct {
	signer   jwt.Signer
	verifier jwt.Verifier
	started  time.Time
}

func newModule(signer jwt.Signer, verifier jwt.Verifier) Module {
	return &module{
		signer:   signer,
		verifier: verifier,
		started:  time.Now(),
	}
}

// Info contains information related to the administrative
// node.
type Info struct {
	APIVersion string        `json:"api_version"`
	Build      BuildInfo     `json:"build"`
	Uptime     time.Duration `json:"uptime"`
}

func (m *module) Info(context.Context) (Info, error) {
	return Info{
		APIVersion: APIVersion,
		Build:      *GetBuildInfo(),
		Uptime:     time.Since(m.started),
	}, nil
}

func (m *module) LogLevelSet(_ context.Context, name, level string) error {
	return logging.SetLogLevel(name, level)
}

func (m *module) AuthVerify(_ context.Context, token string) ([]auth.Permission, error) {
	return authtoken.ExtractSignedPermissions(m.verifier, token)
}

func (m *module) AuthNew(_ context.Context, permissions []auth.Permission) ([]byte, error) {
	return perms.NewTokenWithPerms(m.signer, permissions, 0)
}

func (m *module) AuthNewWithExpiry(
	_ context.Context,
	permissions []auth.Permission,
	ttl time.Duration,
) ([]byte, error) {
	return perms.NewTokenWithPerms(m.signer, permissions, ttl)
}
