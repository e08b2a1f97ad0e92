// Package api serves the JSON endpoints behind the profitability chart.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/apriority/miniapp/internal/model"
)

// maxAddressLength bounds the collection address path parameter.
const maxAddressLength = 128

// CollectionSource is the backend data the API exposes.
type CollectionSource interface {
	ListCollections(ctx context.Context) ([]model.CollectionData, error)
	GetCollection(ctx context.Context, address string) (*model.CollectionData, error)
	GetPaymentHistory(ctx context.Context, address string) ([]model.Payment, error)
}

// Handler holds dependencies for API handlers.
type Handler struct {
	source     CollectionSource
	bufferPool *sync.Pool
}

// New creates a new API Handler.
func New(source CollectionSource) (*Handler, error) {
	if source == nil {
		return nil, errors.New("collection source is required")
	}
	return &Handler{
		source: source,
		bufferPool: &sync.Pool{
			New: func() any {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/collections", h.ListCollections)
	mux.HandleFunc("GET /api/v1/collections/{address}/profitability", h.Profitability)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

// validateAddress reads the address path parameter and writes an error
// response when it is unusable.
func (h *Handler) validateAddress(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := strings.TrimSpace(r.PathValue("address"))
	if address == "" {
		h.writeError(w, http.StatusBadRequest, "collection address is required")
		return "", false
	}
	if len(address) > maxAddressLength {
		h.writeError(w, http.StatusBadRequest, "collection address is too long")
		return "", false
	}
	return address, true
}
