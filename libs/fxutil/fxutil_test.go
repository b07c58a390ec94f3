package fxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestWithLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	ctx := WithLifecycle(context.Background(), lc)

	lc.RequireStart()
	require.NoError(t, ctx.Err())
	lc.RequireStop()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestInvokeIf(t *testing.T) {
	var called bool
	fxtest.New(t, InvokeIf(false, func() { called = true })).RequireStart().RequireStop()
	require.False(t, called)

	fxtest.New(t, InvokeIf(true, func() { called = true }), fx.NopLogger).RequireStart().RequireStop()
	require.True(t, called)
}
