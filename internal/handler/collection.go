package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/apriority/miniapp/internal/backend"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/payments"
	"github.com/apriority/miniapp/internal/screen"
	"golang.org/x/sync/errgroup"
)

// CollectionData holds data for the collection detail template.
type CollectionData struct {
	Page
	Address  string
	Status   screen.Status
	NotFound bool
	Data     *model.CollectionData
	Period   payments.Period
	Periods  []payments.Period
	Buckets  []payments.Bucket
	Chart    string
}

// PeriodURL links to this collection with another aggregation period.
func (d CollectionData) PeriodURL(p payments.Period) string {
	return navigation.URL(navigation.Collection, navigation.State{Address: d.Address}) +
		"&" + url.Values{"period": {string(p)}}.Encode()
}

type collectionDetail struct {
	data    *model.CollectionData
	history []model.Payment
}

// Collection shows one collection with its yield figures and payment history.
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	st := state(r)
	if st.Address == "" {
		http.Redirect(w, r, navigation.Home.Path(), http.StatusSeeOther)
		return
	}

	period := payments.ParsePeriod(r.URL.Query().Get("period"))
	detail := screen.Load(r.Context(), func(ctx context.Context) (collectionDetail, error) {
		return h.fetchCollection(ctx, st.Address)
	})

	data := CollectionData{
		Page:    h.page(s, navigation.Collection, st, "collection.profitability"),
		Address: st.Address,
		Status:  detail.Status,
		Period:  period,
		Periods: payments.Periods,
	}

	switch detail.Status {
	case screen.Idle:
		slog.Debug("client went away before collection loaded", "address", st.Address)
		return
	case screen.Failed:
		if backend.IsNotFound(detail.Err) {
			data.NotFound = true
			h.render(w, http.StatusNotFound, "collection.html", data)
			return
		}
		slog.Error("failed to fetch collection", "address", st.Address, "error", detail.Err)
		h.render(w, http.StatusBadGateway, "collection.html", data)
		return
	}

	data.Data = detail.Data.data
	data.Title = detail.Data.data.Collection.Name
	data.Buckets = payments.Bucketize(detail.Data.history, period)
	data.Chart = payments.Chart(data.Buckets, "TON")

	h.render(w, http.StatusOK, "collection.html", data)
}

// fetchCollection loads the collection and its payment history concurrently.
// A history failure is not fatal; the embedded history is used instead.
func (h *Handler) fetchCollection(ctx context.Context, address string) (collectionDetail, error) {
	var (
		detail  collectionDetail
		history []model.Payment
		histErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := h.backend.GetCollection(gctx, address)
		if err != nil {
			return err
		}
		detail.data = data
		return nil
	})
	g.Go(func() error {
		history, histErr = h.backend.GetPaymentHistory(gctx, address)
		return nil
	})
	if err := g.Wait(); err != nil {
		return collectionDetail{}, err
	}
	if detail.data == nil {
		return collectionDetail{}, errors.New("empty collection response")
	}

	switch {
	case histErr == nil:
		detail.history = history
	case backend.IsNotFound(histErr):
		detail.history = detail.data.PaymentHistory
	default:
		slog.Warn("failed to fetch payment history", "address", address, "error", histErr)
		detail.history = detail.data.PaymentHistory
	}
	return detail, nil
}
