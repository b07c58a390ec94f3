// Package light serves the light.Light gRPC service, the boundary through
// which clients ask the node to sample blobs.
package light

import (
	"context"

	"google.golang.org/grpc"
)

const (
	serviceName    = "light.Light"
	sampleMethod   = "/light.Light/Sample"
	retrieveMethod = "/light.Light/Retrieve"
)

// LightServer is the server API of the light.Light service.
type LightServer interface {
	Sample(context.Context, *SampleRequest) (*SampleReply, error)
	Retrieve(context.Context, *RetrieveRequest) (*RetrieveReply, error)
}

// RegisterLightServer registers srv on s. The server must be created with
// ServerCodec.
func RegisterLightServer(s grpc.ServiceRegistrar, srv LightServer) {
	s.RegisterService(&serviceDesc, srv)
}

// ServerCodec is the server option encoding the service messages.
func ServerCodec() grpc.ServerOption {
	return grpc.ForceServerCodec(codec{})
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LightServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Sample",
			Handler:    sampleHandler,
		},
		{
			MethodName: "Retrieve",
			Handler:    retrieveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "light.proto",
}

func sampleHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SampleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LightServer).Sample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: sampleMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LightServer).Sample(ctx, req.(*SampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func retrieveHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RetrieveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LightServer).Retrieve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: retrieveMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LightServer).Retrieve(ctx, req.(*RetrieveRequest))
	}
	return interceptor(ctx, in, info, handler)
}
