package gateway

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/0glabs/0g-da-light/das"
)

func writeError(w http.ResponseWriter, statusCode int, endpoint string, err error) {
	log.Debugw("serving request", "endpoint", endpoint, "err", err)

	w.WriteHeader(statusCode)

	errorMessage := err.Error() // Get the error message as a string
	errorBytes := []byte(errorMessage)

	_, err = w.Write(errorBytes)
	if err != nil {
		log.Errorw("writing error response", "endpoint", endpoint, "err", err)
	}
}

// statusCode maps sampler errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, das.ErrBatchNotFound), errors.Is(err, das.ErrNoSamples):
		return http.StatusNotFound
	case errors.Is(err, das.ErrInvalidBlobIndex):
		return http.StatusBadRequest
	case errors.Is(err, das.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// parseKey decodes the hex encoded, optionally 0x prefixed, batch key.
func parseKey(r *http.Request) ([]byte, error) {
	raw := strings.TrimPrefix(mux.Vars(r)[keyKey], "0x")
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid batch key: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("empty batch key")
	}
	return key, nil
}

func parseBlob(r *http.Request) (uint32, error) {
	blob, err := strconv.ParseUint(mux.Vars(r)[blobKey], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid blob index: %w", err)
	}
	return uint32(blob), nil
}

// parseTimes reads the optional times query parameter, falling back to def
// when it is absent.
func parseTimes(r *http.Request, def uint32) (uint32, error) {
	if !r.URL.Query().Has(timesKey) {
		return def, nil
	}
	raw := r.URL.Query().Get(timesKey)
	times, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid times: %w", err)
	}
	return uint32(times), nil
}
