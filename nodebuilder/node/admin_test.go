package node

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/api/rpc/perms"
	"github.com/0glabs/0g-da-light/libs/keystore"
)

func TestModule_Auth(t *testing.T) {
	ctx := context.Background()
	ks := keystore.NewMapKeystore()

	alg, err := signer(ks)
	require.NoError(t, err)
	mod := newModule(alg, alg)

	token, err := mod.AuthNew(ctx, perms.ReadPerms)
	require.NoError(t, err)
	got, err := mod.AuthVerify(ctx, string(token))
	require.NoError(t, err)
	require.Equal(t, perms.ReadPerms, got)

	token, err = mod.AuthNewWithExpiry(ctx, perms.AllPerms, time.Hour)
	require.NoError(t, err)
	got, err = mod.AuthVerify(ctx, string(token))
	require.NoError(t, err)
	require.Equal(t, perms.AllPerms, got)

	// the secret survives restarts
	again, err := signer(ks)
	require.NoError(t, err)
	got, err = newModule(again, again).AuthVerify(ctx, string(token))
	require.NoError(t, err)
	require.Equal(t, perms.AllPerms, got)

	_, err = mod.AuthVerify(ctx, "not a token")
	require.Error(t, err)
}

func TestModule_Info(t *testing.T) {
	alg, err := signer(keystore.NewMapKeystore())
	require.NoError(t, err)

	info, err := newModule(alg, alg).Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, APIVersion, info.APIVersion)
	require.NotEmpty(t, info.Build.GolangVersion)

	require.NoError(t, newModule(alg, alg).LogLevelSet(context.Background(), "module/node", "debug"))
}
