package gateway

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/0glabs/0g-da-light/das"
)

const (
	sampleEndpoint       = "/sample"
	lastSampleEndpoint   = "/last_sample"
	batchSamplesEndpoint = "/batch_samples"
)

var (
	keyKey   = "key"
	blobKey  = "blob"
	timesKey = "times"
)

// SampleResponse represents the response to a sample request.
type SampleResponse struct {
	Key     string `json:"key"`
	Blob    uint32 `json:"blob"`
	Times   uint32 `json:"times"`
	Success bool   `json:"success"`
}

func (h *Handler) handleSampleRequest(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, sampleEndpoint, err)
		return
	}
	blob, err := parseBlob(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, sampleEndpoint, err)
		return
	}
	times, err := parseTimes(r, h.sampleAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, sampleEndpoint, err)
		return
	}

	available, err := h.das.Sample(r.Context(), key, blob, times)
	if err != nil {
		writeError(w, statusCode(err), sampleEndpoint, err)
		return
	}
	h.writeJSON(w, sampleEndpoint, &SampleResponse{
		Key:     hex.EncodeToString(key),
		Blob:    blob,
		Times:   times,
		Success: available,
	})
}

func (h *Handler) handleLastSampleRequest(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, lastSampleEndpoint, err)
		return
	}
	blob, err := parseBlob(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, lastSampleEndpoint, err)
		return
	}

	rec, err := h.das.LastSample(r.Context(), key, blob)
	if err != nil {
		writeError(w, statusCode(err), lastSampleEndpoint, err)
		return
	}
	h.writeJSON(w, lastSampleEndpoint, rec)
}

func (h *Handler) handleBatchSamplesRequest(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, batchSamplesEndpoint, err)
		return
	}

	recs, err := h.das.BatchSamples(r.Context(), key)
	if err != nil {
		writeError(w, statusCode(err), batchSamplesEndpoint, err)
		return
	}
	if recs == nil {
		recs = []das.SampleRecord{}
	}
	h.writeJSON(w, batchSamplesEndpoint, recs)
}

func (h *Handler) writeJSON(w http.ResponseWriter, endpoint string, v any) {
	resp, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, endpoint, err)
		return
	}
	_, err = w.Write(resp)
	if err != nil {
		log.Errorw("serving request", "endpoint", endpoint, "err", err)
	}
}
