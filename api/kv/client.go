// Package kv implements kv.Client over the JSON-RPC API of a KV node.
package kv

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/0glabs/0g-da-light/kv"
)

const getValueMethod = "kv_getValue"

var _ kv.Client = (*Client)(nil)

type value struct {
	Version uint64 `json:"version"`
	Data    []byte `json:"data"`
	Size    uint64 `json:"size"`
}

// Client talks to a KV node.
type Client struct {
	url string
	rpc *rpc.Client
}

// Dial connects to the KV node served at url.
func Dial(ctx context.Context, url string) (*Client, error) {
	cl, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("kv: dialing %s: %w", url, err)
	}
	return &Client{url: url, rpc: cl}, nil
}

// GetValue reads length bytes of the latest version of the value starting
// at start.
func (c *Client) GetValue(
	ctx context.Context,
	streamID common.Hash,
	key []byte,
	start, length uint64,
) (*kv.Value, error) {
	var v *value
	// the trailing null selects the latest version
	err := c.rpc.CallContext(ctx, &v, getValueMethod, streamID, key, start, length, nil)
	if err != nil {
		return nil, fmt.Errorf("kv: %s: %w", c.url, err)
	}
	if v == nil {
		return nil, nil
	}
	return &kv.Value{Version: v.Version, Data: v.Data, Size: v.Size}, nil
}

func (c *Client) Close() {
	c.rpc.Close()
}
