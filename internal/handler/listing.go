package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/apriority/miniapp/internal/backend"
	"github.com/apriority/miniapp/internal/config"
	"github.com/apriority/miniapp/internal/i18n"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/screen"
	"github.com/samber/lo"
)

// ListingData holds data for the listing conditions template.
type ListingData struct {
	Page
	Conditions []string
}

// ListingRequestData holds data for the listing request template.
type ListingRequestData struct {
	Page
	Form   screen.ListingForm
	Token  string
	Result *model.ListingResult
}

// Listing shows the numbered listing conditions in the current language.
func (h *Handler) Listing(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)

	conditions := lo.Map(h.settings.ListingConditions, func(c config.Condition, _ int) string {
		if s.prefs.Language == i18n.Russian && c.RU != "" {
			return c.RU
		}
		return c.EN
	})

	h.render(w, http.StatusOK, "listing.html", ListingData{
		Page:       h.page(s, navigation.Listing, navigation.State{}, "listing.title"),
		Conditions: conditions,
	})
}

// ListingRequestForm shows an empty listing request with one token row.
func (h *Handler) ListingRequestForm(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	h.renderListingRequest(w, http.StatusOK, s, screen.NewListingForm(), nil, "")
}

// ListingRequest handles the form actions: adding or removing a token row,
// and submitting the request to the backend.
func (h *Handler) ListingRequest(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := screen.ParseListingForm(r.PostForm)

	if v := r.PostForm.Get("remove_token"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil {
			form.RemoveToken(idx)
		}
		h.renderListingRequest(w, http.StatusOK, s, form, nil, "")
		return
	}

	switch r.PostForm.Get("action") {
	case "add_token":
		form.AddToken()
		h.renderListingRequest(w, http.StatusOK, s, form, nil, "")
		return
	case "submit":
	default:
		h.renderListingRequest(w, http.StatusBadRequest, s, form, nil, "")
		return
	}

	if !form.Valid() {
		h.renderListingRequest(w, http.StatusUnprocessableEntity, s, form, nil, "")
		return
	}
	req, err := form.Request()
	if err != nil {
		h.renderListingRequest(w, http.StatusUnprocessableEntity, s, form, nil, "listingrequest.invalid_number")
		return
	}
	req.UserID = s.userID()

	release, err := h.guard.Begin(r.PostForm.Get("token"))
	if err != nil {
		h.renderListingRequest(w, http.StatusConflict, s, form, nil, submitError(err))
		return
	}

	result, err := h.backend.SubmitListing(r.Context(), req)
	if err != nil {
		release(false)
		if errors.Is(err, backend.ErrNotFound) {
			h.renderListingRequest(w, http.StatusNotFound, s, form, nil, "listingrequest.not_found")
			return
		}
		slog.Error("failed to submit listing request", "address", req.Address, "error", err)
		h.renderListingRequest(w, http.StatusBadGateway, s, form, nil, "listingrequest.failed")
		return
	}
	release(true)

	slog.Info("listing request submitted", "address", req.Address, "user_id", req.UserID, "tokens", len(req.Tokens))
	h.renderListingRequest(w, http.StatusOK, s, screen.NewListingForm(), result, "")
}

func (h *Handler) renderListingRequest(w http.ResponseWriter, status int, s session, form screen.ListingForm, result *model.ListingResult, errKey string) {
	data := ListingRequestData{
		Page:   h.page(s, navigation.ListingRequest, navigation.State{}, "listingrequest.title"),
		Form:   form,
		Token:  h.guard.Issue(),
		Result: result,
	}
	data.Error = errKey
	h.render(w, status, "listingrequest.html", data)
}
