package gateway

import (
	"fmt"
	"net/http"

	logging "github.com/ipfs/go-log/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/0glabs/0g-da-light/nodebuilder/das"
)

var log = logging.Logger("gateway")

type Handler struct {
	das das.Module
	// sampleAmount is sampled when a request omits times.
	sampleAmount uint32
}

func NewHandler(das das.Module, sampleAmount uint32) *Handler {
	return &Handler{das: das, sampleAmount: sampleAmount}
}

func (h *Handler) RegisterEndpoints(srv *Server) {
	// DAS endpoints
	srv.RegisterHandlerFunc(fmt.Sprintf("%s/{%s}/{%s}", sampleEndpoint, keyKey, blobKey),
		h.handleSampleRequest, http.MethodGet)
	srv.RegisterHandlerFunc(fmt.Sprintf("%s/{%s}/{%s}", lastSampleEndpoint, keyKey, blobKey),
		h.handleLastSampleRequest, http.MethodGet)
	srv.RegisterHandlerFunc(fmt.Sprintf("%s/{%s}", batchSamplesEndpoint, keyKey),
		h.handleBatchSamplesRequest, http.MethodGet)

	// status endpoints
	srv.RegisterHandlerFunc(healthEndpoint, h.handleHealthRequest, http.MethodGet)
	srv.RegisterHandler(metricsEndpoint, promhttp.Handler(), http.MethodGet)
}
