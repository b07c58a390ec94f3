package rpc

import (
	"context"
	"net"
	"net/http"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/cristalhq/jwt/v5"
	"github.com/filecoin-project/go-jsonrpc"
	"github.com/filecoin-project/go-jsonrpc/auth"
	logging "github.com/ipfs/go-log/v2"
	"github.com/rs/cors"

	"github.com/0glabs/0g-da-light/api/rpc/perms"
	"github.com/0glabs/0g-da-light/libs/authtoken"
)

var log = logging.Logger("rpc")

// CORSConfig configures cross-origin requests to the server.
type CORSConfig struct {
	Enabled        bool
	AllowedOrigins []string
	AllowedHeaders []string
	AllowedMethods []string
}

type Server struct {
	srv          *http.Server
	rpc          *jsonrpc.RPCServer
	listener     net.Listener
	authDisabled bool

	started atomic.Bool

	verifier jwt.Verifier
}

func NewServer(
	address, port string,
	authDisabled bool,
	corsCfg CORSConfig,
	verifier jwt.Verifier,
) *Server {
	rpc := jsonrpc.NewServer()
	srv := &Server{
		rpc:          rpc,
		verifier:     verifier,
		authDisabled: authDisabled,
	}
	srv.srv = &http.Server{
		Addr:    net.JoinHostPort(address, port),
		Handler: srv.newHandlerStack(rpc, corsCfg),
		// the amount of time allowed to read request headers. set to the default 2 seconds
		ReadHeaderTimeout: 2 * time.Second,
	}
	return srv
}

func (s *Server) verifyAuth(_ context.Context, token string) ([]auth.Permission, error) {
	return authtoken.ExtractSignedPermissions(s.verifier, token)
}

// newHandlerStack wraps the JSON-RPC handler with authentication and CORS.
func (s *Server) newHandlerStack(core http.Handler, corsCfg CORSConfig) http.Handler {
	var h http.Handler
	if s.authDisabled {
		log.Warn("auth disabled, allowing all access to API")
		h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			core.ServeHTTP(w, r.WithContext(auth.WithPerm(r.Context(), perms.AllPerms)))
		})
	} else {
		h = &auth.Handler{
			Verify: s.verifyAuth,
			Next:   core.ServeHTTP,
		}
	}

	if !corsCfg.Enabled {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedHeaders: corsCfg.AllowedHeaders,
		AllowedMethods: corsCfg.AllowedMethods,
	}).Handler(h)
}

// RegisterService registers a service onto the RPC server. All methods on the service will then be
// exposed over the RPC.
func (s *Server) RegisterService(namespace string, service, out interface{}) {
	auth.PermissionedProxy(perms.AllPerms, perms.DefaultPerms, service, getInternalStruct(out))
	s.rpc.Register(namespace, out)
}

func getInternalStruct(api interface{}) interface{} {
	return reflect.ValueOf(api).Elem().FieldByName("Internal").Addr().Interface()
}

// Start starts the RPC Server.
func (s *Server) Start(context.Context) error {
	couldStart := s.started.CompareAndSwap(false, true)
	if !couldStart {
		log.Warn("cannot start server: already started")
		return nil
	}
	listener, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.started.Store(false)
		return err
	}
	s.listener = listener
	log.Infow("server started", "listening on", listener.Addr().String())
	//nolint:errcheck
	go s.srv.Serve(listener)
	return nil
}

// Stop stops the RPC Server.
func (s *Server) Stop(ctx context.Context) error {
	couldStop := s.started.CompareAndSwap(true, false)
	if !couldStop {
		log.Warn("cannot stop server: already stopped")
		return nil
	}
	err := s.srv.Shutdown(ctx)
	if err != nil {
		return err
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
