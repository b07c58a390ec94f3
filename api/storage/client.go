// Package storage implements segment.Getter over the JSON-RPC API of a
// storage node.
package storage

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	logging "github.com/ipfs/go-log/v2"

	"github.com/0glabs/0g-da-light/segment"
)

var log = logging.Logger("storage")

const downloadSegmentMethod = "zgs_downloadSegmentWithProof"

var _ segment.Getter = (*Client)(nil)

// Client talks to a single storage node.
type Client struct {
	url string
	rpc *rpc.Client
}

// Dial connects to the storage node served at url.
func Dial(ctx context.Context, url string) (*Client, error) {
	cl, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("storage: dialing %s: %w", url, err)
	}
	log.Debugw("connected to storage node", "url", url)
	return &Client{url: url, rpc: cl}, nil
}

// GetSegment downloads the segment at index together with its proof. A nil
// segment with a nil error means the node does not store it.
func (c *Client) GetSegment(ctx context.Context, root common.Hash, index uint64) (*segment.WithProof, error) {
	var seg *segment.WithProof
	err := c.rpc.CallContext(ctx, &seg, downloadSegmentMethod, root, index)
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", c.url, err)
	}
	return seg, nil
}

// URL reports the endpoint of the node.
func (c *Client) URL() string {
	return c.url
}

func (c *Client) Close() {
	c.rpc.Close()
}
