package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/screen"
)

// HomeData holds data for the home page template.
type HomeData struct {
	Page
	Collections screen.State[[]model.CollectionData]
}

// Home lists the collections. Users without a wallet are asked to connect one.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)

	collections := screen.Load(r.Context(), func(ctx context.Context) ([]model.CollectionData, error) {
		return h.backend.ListCollections(ctx)
	})
	switch collections.Status {
	case screen.Idle:
		slog.Debug("client went away before collections loaded", "error", collections.Err)
		return
	case screen.Failed:
		slog.Error("failed to fetch collections", "error", collections.Err)
	}

	data := HomeData{
		Page:        h.page(s, navigation.Home, navigation.State{}, "home.title"),
		Collections: collections,
	}
	if s.wallet == "" && r.URL.Query().Get("modal") != "closed" {
		data.Modal = "wallet"
		data.ModalClose = "/?modal=closed"
	}

	h.render(w, http.StatusOK, "home.html", data)
}
