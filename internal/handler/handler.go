package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/apriority/miniapp/internal/config"
	"github.com/apriority/miniapp/internal/i18n"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/preferences"
	"github.com/apriority/miniapp/internal/screen"
	"github.com/apriority/miniapp/internal/telegram"
)

// CollectionBackend is the subset of the backend API the screens use.
type CollectionBackend interface {
	ListCollections(ctx context.Context) ([]model.CollectionData, error)
	GetCollection(ctx context.Context, address string) (*model.CollectionData, error)
	GetPaymentHistory(ctx context.Context, address string) ([]model.Payment, error)
	ListComments(ctx context.Context, address string) ([]model.Comment, error)
	CheckOwnership(ctx context.Context, address, wallet string) (bool, error)
	AddComment(ctx context.Context, address string, comment model.NewComment) error
	Calculate(ctx context.Context, req model.CalculatorRequest) (*model.CalculatorResult, error)
	SubmitListing(ctx context.Context, req model.ListingRequest) (*model.ListingResult, error)
}

// TemplateRenderer renders a named page.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// InitDataValidator verifies Telegram launch data.
type InitDataValidator interface {
	Validate(raw string) (*telegram.InitData, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	backend   CollectionBackend
	tmpl      TemplateRenderer
	prefs     *preferences.Store
	guard     *screen.Guard
	validator InitDataValidator
	settings  config.File
}

// New creates a new Handler with the given dependencies.
// validator may be nil, in which case launch data is trusted as sent.
func New(
	backend CollectionBackend,
	tmpl TemplateRenderer,
	prefs *preferences.Store,
	guard *screen.Guard,
	validator InitDataValidator,
	settings config.File,
) (*Handler, error) {
	if backend == nil {
		return nil, errors.New("backend client is required")
	}
	if tmpl == nil {
		return nil, errors.New("templates are required")
	}
	if prefs == nil {
		return nil, errors.New("preferences store is required")
	}
	if guard == nil {
		return nil, errors.New("submit guard is required")
	}
	return &Handler{
		backend:   backend,
		tmpl:      tmpl,
		prefs:     prefs,
		guard:     guard,
		validator: validator,
		settings:  settings,
	}, nil
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /collection", h.Collection)
	mux.HandleFunc("GET /comments", h.Comments)
	mux.HandleFunc("GET /addcomment", h.AddCommentForm)
	mux.HandleFunc("POST /addcomment", h.AddComment)
	mux.HandleFunc("GET /calculator", h.CalculatorForm)
	mux.HandleFunc("POST /calculator", h.Calculate)
	mux.HandleFunc("GET /listing", h.Listing)
	mux.HandleFunc("GET /listingrequest", h.ListingRequestForm)
	mux.HandleFunc("POST /listingrequest", h.ListingRequest)
	mux.HandleFunc("GET /language", h.LanguageForm)
	mux.HandleFunc("POST /language", h.SetLanguage)
	mux.HandleFunc("GET /settings", h.Settings)
	mux.HandleFunc("POST /settings/wallet/disconnect", h.DisconnectWallet)
	mux.HandleFunc("POST /session", h.Session)
	mux.HandleFunc("POST /wallet", h.ConnectWallet)
	mux.HandleFunc("POST /theme", h.SetTheme)
	mux.HandleFunc("/", h.NotFound)
}

// Page is the part of every view model the base layout reads.
type Page struct {
	Title       string
	Lang        i18n.Language
	Theme       i18n.Theme
	Bridge      navigation.Bridge
	Tab         navigation.Screen
	Tabs        []navigation.Screen
	Wallet      string
	ManifestURL string
	HeaderColor string
	Modal       string
	ModalClose  string
	Error       string
	Notice      string
}

// session is what a request knows about the user.
type session struct {
	prefs  preferences.Preferences
	init   *telegram.InitData
	wallet string
}

func (s session) userID() int64 {
	return s.init.UserID()
}

func (s session) author() string {
	if s.init == nil || s.init.User == nil {
		return ""
	}
	return s.init.User.DisplayName()
}

// loadSession reads launch data, wallet and preferences from the request.
func (h *Handler) loadSession(r *http.Request) session {
	s := session{wallet: preferences.Wallet(r)}
	if raw := preferences.InitData(r); raw != "" {
		data, err := h.parseInitData(raw)
		if err != nil {
			slog.Debug("ignoring stored init data", "error", err)
		} else {
			s.init = data
		}
	}
	s.prefs = h.prefs.Load(r, s.userID())
	return s
}

func (h *Handler) parseInitData(raw string) (*telegram.InitData, error) {
	if h.validator != nil {
		return h.validator.Validate(raw)
	}
	return telegram.Parse(raw)
}

// page builds the layout data for screen.
func (h *Handler) page(s session, scr navigation.Screen, st navigation.State, title string) Page {
	p := Page{
		Title:       title,
		Lang:        s.prefs.Language,
		Theme:       s.prefs.Theme,
		Bridge:      navigation.For(scr, st),
		Tabs:        navigation.Tabs,
		Wallet:      s.wallet,
		ManifestURL: h.settings.ManifestURL,
		HeaderColor: config.HeaderColorLight,
		ModalClose:  navigation.URL(scr, st),
	}
	if s.prefs.Theme.IsDark() {
		p.HeaderColor = config.HeaderColorDark
	}
	for _, tab := range navigation.Tabs {
		if tab == scr {
			p.Tab = scr
		}
	}
	return p
}

// render executes a page template into a buffer and writes it with status.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "template", name, "error", err)
	}
}

// state decodes the carried navigation state; a malformed value is treated
// as no state.
func state(r *http.Request) navigation.State {
	st, err := navigation.DecodeState(r.URL.Query().Get("state"))
	if err != nil {
		slog.Debug("invalid navigation state", "error", err)
		return navigation.State{}
	}
	return st
}

// NotFound sends unknown routes to the home screen.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, navigation.Home.Path(), http.StatusSeeOther)
}
