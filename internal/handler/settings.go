package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/apriority/miniapp/internal/i18n"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/preferences"
)

// maxInitDataSize bounds the launch data accepted by Session.
const maxInitDataSize = 4096

// SettingsData holds data for the settings template.
type SettingsData struct {
	Page
	SupportURL string
}

// LanguageData holds data for the language selection template.
type LanguageData struct {
	Page
	Languages []i18n.Language
}

// Settings shows the wallet, language, theme and support entries.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	h.render(w, http.StatusOK, "settings.html", SettingsData{
		Page:       h.page(s, navigation.Settings, navigation.State{}, "settings.title"),
		SupportURL: h.settings.SupportURL,
	})
}

// LanguageForm lists the available languages.
func (h *Handler) LanguageForm(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	h.render(w, http.StatusOK, "language.html", LanguageData{
		Page:      h.page(s, navigation.Language, navigation.State{}, "language.title"),
		Languages: i18n.Languages,
	})
}

// SetLanguage persists the chosen language and returns to settings.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	s.prefs.Language = i18n.ParseLanguage(r.FormValue("language"))
	h.savePreferences(w, r, s)
	http.Redirect(w, r, navigation.Settings.Path(), http.StatusSeeOther)
}

// SetTheme persists the theme. The page script posts here when the host
// theme changes; forms post here with a redirect target.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	s.prefs.Theme = i18n.ParseTheme(r.FormValue("theme"))
	h.savePreferences(w, r, s)

	if target := localRedirect(r.FormValue("redirect")); target != "" {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request, s session) {
	if err := h.prefs.Save(r.Context(), w, s.userID(), s.prefs); err != nil {
		slog.Warn("failed to store preferences", "user_id", s.userID(), "error", err)
	}
}

// DisconnectWallet forgets the connected wallet.
func (h *Handler) DisconnectWallet(w http.ResponseWriter, r *http.Request) {
	preferences.ClearWallet(w)
	http.Redirect(w, r, navigation.Settings.Path(), http.StatusSeeOther)
}

// ConnectWallet stores the wallet address reported by the wallet connector.
// An empty address disconnects.
func (h *Handler) ConnectWallet(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.FormValue("address"))
	if address == "" {
		preferences.ClearWallet(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if len(address) > 128 || strings.ContainsAny(address, " ;\"\\") {
		http.Error(w, "Invalid wallet address", http.StatusBadRequest)
		return
	}

	preferences.SetWallet(w, address)
	w.WriteHeader(http.StatusNoContent)
}

// Session stores the Telegram launch data sent by the page script. When a
// bot token is configured the data must carry a valid signature.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxInitDataSize+1))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if len(raw) > maxInitDataSize {
		http.Error(w, "Init data too large", http.StatusRequestEntityTooLarge)
		return
	}

	initData := strings.TrimSpace(string(raw))
	if initData == "" {
		http.Error(w, "Init data is required", http.StatusBadRequest)
		return
	}
	data, err := h.parseInitData(initData)
	if err != nil {
		slog.Warn("rejected init data", "error", err)
		http.Error(w, "Invalid init data", http.StatusUnauthorized)
		return
	}

	preferences.SetInitData(w, initData)

	// Seed the language from the Telegram client on first launch.
	if _, err := r.Cookie(preferences.LanguageCookie); err != nil && data.User != nil {
		s := session{init: data, prefs: h.prefs.Load(r, data.UserID())}
		if s.prefs == preferences.Defaults() {
			s.prefs.Language = i18n.ParseLanguage(data.User.LanguageCode)
		}
		h.savePreferences(w, r, s)
	}

	w.WriteHeader(http.StatusNoContent)
}

// localRedirect returns target when it is a path on this site.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return ""
	}
	return target
}
