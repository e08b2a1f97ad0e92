// Package preferences persists the theme and language choice.
package preferences

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/apriority/miniapp/internal/i18n"
)

const (
	ThemeCookie    = "theme"
	LanguageCookie = "language"

	cookieMaxAge = 365 * 24 * time.Hour
)

// Preferences is the user's display configuration.
type Preferences struct {
	Theme    i18n.Theme
	Language i18n.Language
}

// Defaults returns the preferences used before anything is saved.
func Defaults() Preferences {
	return Preferences{Theme: i18n.DefaultTheme, Language: i18n.DefaultLanguage}
}

// Repository stores preferences per Telegram user.
type Repository interface {
	Get(ctx context.Context, userID int64) (Preferences, bool, error)
	Upsert(ctx context.Context, userID int64, prefs Preferences) error
}

// Store reads and writes preferences through cookies and, when configured,
// a per-user repository.
type Store struct {
	repo Repository
}

// NewStore creates a store. repo may be nil for cookie-only persistence.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the preferences for the request. Cookies win; the repository
// fills in values the device has not stored yet.
func (s *Store) Load(r *http.Request, userID int64) Preferences {
	prefs := Defaults()

	themeCookie, themeErr := r.Cookie(ThemeCookie)
	langCookie, langErr := r.Cookie(LanguageCookie)

	if (themeErr != nil || langErr != nil) && s.repo != nil && userID != 0 {
		stored, ok, err := s.repo.Get(r.Context(), userID)
		if err != nil {
			slog.Warn("failed to load stored preferences", "user_id", userID, "error", err)
		} else if ok {
			prefs = stored
		}
	}

	if themeErr == nil {
		prefs.Theme = i18n.ParseTheme(themeCookie.Value)
	}
	if langErr == nil {
		prefs.Language = i18n.ParseLanguage(langCookie.Value)
	}
	return prefs
}

// Save writes prefs to cookies and to the repository when userID is known.
func (s *Store) Save(ctx context.Context, w http.ResponseWriter, userID int64, prefs Preferences) error {
	setCookie(w, ThemeCookie, string(prefs.Theme), cookieMaxAge)
	setCookie(w, LanguageCookie, string(prefs.Language), cookieMaxAge)

	if s.repo == nil || userID == 0 {
		return nil
	}
	if err := s.repo.Upsert(ctx, userID, prefs); err != nil {
		return fmt.Errorf("save preferences for user %d: %w", userID, err)
	}
	return nil
}

func setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
