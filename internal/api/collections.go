package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/apriority/miniapp/internal/backend"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/payments"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ListCollections handles GET /api/v1/collections.
//
//	@Summary		List collections
//	@Description	Returns the listed NFT collections with their current APR
//	@Tags			collections
//	@Produce		json
//	@Success		200	{array}		CollectionListItem
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/v1/collections [get]
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.source.ListCollections(r.Context())
	if err != nil {
		slog.Error("api: failed to fetch collections", "error", err)
		h.writeError(w, http.StatusBadGateway, "failed to fetch collections")
		return
	}

	h.writeJSON(w, http.StatusOK, lo.Map(collections, func(c model.CollectionData, _ int) CollectionListItem {
		return CollectionListItem{
			Address:    c.Collection.Address,
			Name:       c.Collection.Name,
			ImageURL:   c.Collection.ImageURL(),
			IsVerified: c.Collection.IsVerified,
			APR:        c.APR,
		}
	}))
}

// Profitability handles GET /api/v1/collections/{address}/profitability.
//
//	@Summary		Get collection profitability
//	@Description	Returns reward payments of a collection summed per week, month or year
//	@Tags			collections
//	@Produce		json
//	@Param			address	path		string	true	"Collection contract address"
//	@Param			period	query		string	false	"Bucket width"	Enums(weekly, monthly, yearly)	default(weekly)
//	@Success		200		{object}	ProfitabilityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/v1/collections/{address}/profitability [get]
func (h *Handler) Profitability(w http.ResponseWriter, r *http.Request) {
	address, ok := h.validateAddress(w, r)
	if !ok {
		return
	}

	period := payments.Weekly
	if v := r.URL.Query().Get("period"); v != "" {
		period = payments.ParsePeriod(v)
		if string(period) != v {
			h.writeError(w, http.StatusBadRequest, "period must be one of weekly, monthly, yearly")
			return
		}
	}

	data, history, err := h.fetch(r.Context(), address)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "collection not found")
			return
		}
		slog.Error("api: failed to fetch collection", "address", address, "error", err)
		h.writeError(w, http.StatusBadGateway, "failed to fetch collection")
		return
	}

	buckets := payments.Bucketize(history, period)
	h.writeJSON(w, http.StatusOK, ProfitabilityResponse{
		Address:    address,
		Name:       data.Collection.Name,
		APR:        data.APR,
		AverageAPR: data.AverageAPR,
		Period:     string(period),
		Total:      payments.BucketTotal(buckets).String(),
		Buckets: lo.Map(buckets, func(b payments.Bucket, _ int) BucketResponse {
			resp := BucketResponse{Label: b.Label, Total: b.Total.String(), Count: b.Count}
			if !b.Start.IsZero() {
				resp.Start = b.Start.Format("2006-01-02")
			}
			return resp
		}),
	})
}

// fetch loads the collection and its payment history concurrently, falling
// back to the history embedded in the collection.
func (h *Handler) fetch(ctx context.Context, address string) (*model.CollectionData, []model.Payment, error) {
	var (
		data    *model.CollectionData
		history []model.Payment
		histErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = h.source.GetCollection(gctx, address)
		return err
	})
	g.Go(func() error {
		history, histErr = h.source.GetPaymentHistory(gctx, address)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if data == nil {
		return nil, nil, errors.New("empty collection response")
	}

	if histErr != nil {
		if !backend.IsNotFound(histErr) {
			slog.Warn("api: failed to fetch payment history", "address", address, "error", histErr)
		}
		history = data.PaymentHistory
	}
	return data, history, nil
}
