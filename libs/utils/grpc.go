package utils

import (
	"strings"
	"time"

	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

// GRPCRetryInterceptor retries calls failing with codes.Unavailable with
// exponential backoff.
func GRPCRetryInterceptor() grpc.UnaryClientInterceptor {
	return grpc_retry.UnaryClientInterceptor(
		grpc_retry.WithMax(5),
		grpc_retry.WithCodes(codes.Unavailable),
		grpc_retry.WithBackoff(
			grpc_retry.BackoffExponentialWithJitter(time.Second, 2.0)),
	)
}

// NormalizeGRPCAddress strips HTTP and TCP schemes gRPC targets do not accept.
func NormalizeGRPCAddress(addr string) string {
	for _, scheme := range []string{"http://", "https://", "tcp://"} {
		addr = strings.TrimPrefix(addr, scheme)
	}
	return strings.TrimSuffix(addr, "/")
}
