package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/apriority/miniapp/internal/backend"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/screen"
)

// CalculatorData holds data for the calculator template.
type CalculatorData struct {
	Page
	Form   screen.CalculatorForm
	Token  string
	Result *model.CalculatorResult
}

// CalculatorForm shows the empty calculator.
func (h *Handler) CalculatorForm(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	h.renderCalculator(w, http.StatusOK, s, screen.CalculatorForm{}, nil, "")
}

// Calculate asks the backend for the APR and payback period of arbitrary
// reward terms. A missing collection gets its own message.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := screen.ParseCalculatorForm(r.PostForm)

	req, err := form.Request()
	if err != nil {
		h.renderCalculator(w, http.StatusUnprocessableEntity, s, form, nil, "")
		return
	}

	release, err := h.guard.Begin(r.PostForm.Get("token"))
	if err != nil {
		h.renderCalculator(w, http.StatusConflict, s, form, nil, submitError(err))
		return
	}

	result, err := h.backend.Calculate(r.Context(), req)
	if err != nil {
		release(false)
		if errors.Is(err, backend.ErrNotFound) {
			h.renderCalculator(w, http.StatusNotFound, s, form, nil, "calculator.not_found")
			return
		}
		slog.Error("failed to calculate apr", "address", req.Address, "error", err)
		h.renderCalculator(w, http.StatusBadGateway, s, form, nil, "calculator.failed")
		return
	}
	release(true)

	h.renderCalculator(w, http.StatusOK, s, form, result, "")
}

func (h *Handler) renderCalculator(w http.ResponseWriter, status int, s session, form screen.CalculatorForm, result *model.CalculatorResult, errKey string) {
	data := CalculatorData{
		Page:   h.page(s, navigation.Calculator, navigation.State{}, "calculator.title"),
		Form:   form,
		Token:  h.guard.Issue(),
		Result: result,
	}
	data.Error = errKey
	h.render(w, status, "calculator.html", data)
}

// submitError maps a rejected submit token to its message key.
func submitError(err error) string {
	if errors.Is(err, screen.ErrDuplicateSubmit) {
		return "form.duplicate"
	}
	return "form.expired"
}
