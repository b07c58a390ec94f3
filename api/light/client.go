package light

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/0glabs/0g-da-light/libs/utils"
)

// Client calls the Light service of a remote node.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient creates a Client for the node listening on addr. Calls are
// retried while the node is unavailable.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(codec{})),
		grpc.WithUnaryInterceptor(utils.GRPCRetryInterceptor()),
	}, opts...)

	conn, err := grpc.NewClient(utils.NormalizeGRPCAddress(addr), opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Sample(ctx context.Context, key []byte, blobIndex, times uint32) (bool, error) {
	req := &SampleRequest{BatchHeaderHash: key, BlobIndex: blobIndex, Times: times}
	reply := new(SampleReply)
	if err := c.conn.Invoke(ctx, sampleMethod, req, reply); err != nil {
		return false, err
	}
	return reply.Success, nil
}

func (c *Client) Retrieve(ctx context.Context, key []byte, blobIndex uint32) ([]byte, error) {
	req := &RetrieveRequest{BatchHeaderHash: key, BlobIndex: blobIndex}
	reply := new(RetrieveReply)
	if err := c.conn.Invoke(ctx, retrieveMethod, req, reply); err != nil {
		return nil, err
	}
	return reply.Data, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
