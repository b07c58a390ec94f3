package storage

import (
	"context"

	logging "github.com/ipfs/go-log/v2"

	"github.com/0glabs/0g-da-light/api/storage"
	"github.com/0glabs/0g-da-light/segment"
)

var log = logging.Logger("module/storage")

// dialNodes connects to every configured storage node. Dialing HTTP endpoints
// does not reach the node, so an unreachable node only fails its requests.
func dialNodes(ctx context.Context, cfg Config) ([]segment.Getter, error) {
	nodes := make([]segment.Getter, 0, len(cfg.URLs))
	for _, url := range cfg.URLs {
		cl, err := storage.Dial(ctx, url)
		if err != nil {
			closeNodes(nodes)
			return nil, err
		}
		nodes = append(nodes, cl)
	}
	log.Infow("storage nodes configured", "amount", len(nodes))
	return nodes, nil
}

func closeNodes(nodes []segment.Getter) {
	for _, n := range nodes {
		if cl, ok := n.(*storage.Client); ok {
			cl.Close()
		}
	}
}
