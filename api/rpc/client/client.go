package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
)

const authHeader = "Authorization"

type API interface {
	das.Module
	node.Module
}

type Client struct {
	DAS  das.API
	Node node.API

	closer multiClientCloser
}

// multiClientCloser is a wrapper struct to close clients across multiple namespaces.
type multiClientCloser struct {
	closers []jsonrpc.ClientCloser
}

// register adds a new closer to the multiClientCloser
func (m *multiClientCloser) register(closer jsonrpc.ClientCloser) {
	m.closers = append(m.closers, closer)
}

// closeAll closes all saved clients.
func (m *multiClientCloser) closeAll() {
	for _, closer := range m.closers {
		closer()
	}
}

// Close closes the connections to all namespaces registered on the client.
func (c *Client) Close() {
	c.closer.closeAll()
}

// NewClient creates a new Client with one connection per namespace.
// An empty token sends requests without the Authorization header.
func NewClient(ctx context.Context, addr, token string) (*Client, error) {
	var authHeaders http.Header
	if token != "" {
		authHeaders = http.Header{authHeader: []string{fmt.Sprintf("Bearer %s", token)}}
	}

	var client Client
	modules := map[string]interface{}{
		"das":  &client.DAS.Internal,
		"node": &client.Node.Internal,
	}
	for name, module := range modules {
		closer, err := jsonrpc.NewClient(ctx, addr, name, module, authHeaders)
		if err != nil {
			client.closer.closeAll()
			return nil, err
		}
		client.closer.register(closer)
	}

	return &client, nil
}
