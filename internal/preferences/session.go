package preferences

import (
	"net/http"
	"strings"
	"time"
)

const (
	WalletCookie   = "wallet"
	InitDataCookie = "tg_init"

	sessionMaxAge = 24 * time.Hour
)

// Wallet returns the connected wallet address, or "" when none is attached.
func Wallet(r *http.Request) string {
	c, err := r.Cookie(WalletCookie)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

// SetWallet remembers the wallet reported by the wallet connector.
func SetWallet(w http.ResponseWriter, address string) {
	setCookie(w, WalletCookie, address, cookieMaxAge)
}

// ClearWallet forgets the connected wallet.
func ClearWallet(w http.ResponseWriter) {
	clearCookie(w, WalletCookie)
}

// InitData returns the raw launch data stored by SetInitData.
func InitData(r *http.Request) string {
	c, err := r.Cookie(InitDataCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetInitData stores the raw launch data for the session.
func SetInitData(w http.ResponseWriter, raw string) {
	setCookie(w, InitDataCookie, raw, sessionMaxAge)
}
