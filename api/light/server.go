package light

import (
	"context"
	"errors"
	"net"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/hexutil"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	logging "github.com/ipfs/go-log/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/0glabs/0g-da-light/das"
)

var log = logging.Logger("light")

// Sampler is the part of the node the Light service exposes.
type Sampler interface {
	Sample(ctx context.Context, key []byte, blobIndex, times uint32) (bool, error)
	Retrieve(ctx context.Context, key []byte, blobIndex uint32) ([]byte, error)
}

// Server serves the Light service over gRPC.
type Server struct {
	srv      *grpc.Server
	addr     string
	listener net.Listener

	started atomic.Bool
}

// NewServer returns a new Server answering with the given Sampler on addr.
func NewServer(addr string, sampler Sampler) *Server {
	srv := grpc.NewServer(
		ServerCodec(),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_recovery.UnaryServerInterceptor(),
			logInterceptor,
		)),
	)
	RegisterLightServer(srv, &service{sampler: sampler})
	return &Server{srv: srv, addr: addr}
}

// Start starts listening on the configured address.
func (s *Server) Start(context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.serve(listener)
}

func (s *Server) serve(listener net.Listener) error {
	couldStart := s.started.CompareAndSwap(false, true)
	if !couldStart {
		log.Warn("cannot start server: already started")
		return listener.Close()
	}
	s.listener = listener
	log.Infow("server started", "listening on", listener.Addr().String())
	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Errorw("serving gRPC", "err", err)
		}
	}()
	return nil
}

// Stop drains in-flight calls, or cuts them off once ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	couldStop := s.started.CompareAndSwap(true, false)
	if !couldStop {
		log.Warn("cannot stop server: already stopped")
		return nil
	}

	stopped := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.srv.Stop()
	}
	s.listener = nil
	log.Info("server stopped")
	return nil
}

// ListenAddr returns the listen address of the server.
func (s *Server) ListenAddr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

type service struct {
	sampler Sampler
}

func (s *service) Sample(ctx context.Context, req *SampleRequest) (*SampleReply, error) {
	ok, err := s.sampler.Sample(ctx, req.BatchHeaderHash, req.BlobIndex, req.Times)
	if err != nil {
		return nil, toStatus(err)
	}
	return &SampleReply{Success: ok}, nil
}

func (s *service) Retrieve(ctx context.Context, req *RetrieveRequest) (*RetrieveReply, error) {
	data, err := s.sampler.Retrieve(ctx, req.BatchHeaderHash, req.BlobIndex)
	if err != nil {
		return nil, toStatus(err)
	}
	return &RetrieveReply{Data: data}, nil
}

func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, das.ErrBatchNotFound):
		code = codes.NotFound
	case errors.Is(err, das.ErrInvalidBlobIndex):
		code = codes.InvalidArgument
	case errors.Is(err, das.ErrNotImplemented):
		code = codes.Unimplemented
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func logInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	var remote string
	if p, ok := peer.FromContext(ctx); ok {
		remote = p.Addr.String()
	}
	if r, ok := req.(*SampleRequest); ok {
		log.Infow("sample request",
			"remote", remote,
			"batch", hexutil.Encode(r.BatchHeaderHash),
			"blob", r.BlobIndex,
			"times", r.Times,
		)
	} else {
		log.Debugw("request", "method", info.FullMethod, "remote", remote)
	}

	resp, err := handler(ctx, req)
	if err != nil {
		log.Warnw("request failed", "method", info.FullMethod, "remote", remote, "err", err)
	}
	return resp, err
}
