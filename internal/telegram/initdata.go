// Package telegram parses and validates Mini App launch data.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrSignatureMismatch is returned when the init data hash does not match the bot token.
	ErrSignatureMismatch = errors.New("init data signature mismatch")

	// ErrExpired is returned when auth_date is older than the allowed age.
	ErrExpired = errors.New("init data expired")
)

// User is the Telegram user who launched the Mini App.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

// DisplayName returns "first last", trimmed when the last name is absent.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// InitData is the parsed launch payload (Telegram.WebApp.initData).
type InitData struct {
	Raw      string
	User     *User
	AuthDate time.Time
	QueryID  string
	Hash     string
}

// UserID returns the launching user's ID, or 0 when unknown.
func (d *InitData) UserID() int64 {
	if d == nil || d.User == nil {
		return 0
	}
	return d.User.ID
}

// Parse decodes raw init data without checking its signature.
func Parse(raw string) (*InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", err)
	}

	data := &InitData{
		Raw:     raw,
		QueryID: values.Get("query_id"),
		Hash:    values.Get("hash"),
	}

	if s := values.Get("auth_date"); s != "" {
		sec, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse auth_date: %w", err)
		}
		data.AuthDate = time.Unix(sec, 0).UTC()
	}

	if s := values.Get("user"); s != "" {
		var u User
		if err := json.Unmarshal([]byte(s), &u); err != nil {
			return nil, fmt.Errorf("parse user: %w", err)
		}
		data.User = &u
	}

	return data, nil
}

// Validator checks init data signatures with the bot token.
type Validator struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewValidator creates a validator for botToken. maxAge of zero disables the
// expiry check.
func NewValidator(botToken string, maxAge time.Duration) (*Validator, error) {
	if botToken == "" {
		return nil, errors.New("bot token is required")
	}
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return &Validator{
		secret: mac.Sum(nil),
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

// Validate parses raw and verifies its hash and age.
func (v *Validator) Validate(raw string) (*InitData, error) {
	data, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	values, _ := url.ParseQuery(raw)
	expected := v.sign(values)
	got, err := hex.DecodeString(data.Hash)
	if err != nil || !hmac.Equal(expected, got) {
		return nil, ErrSignatureMismatch
	}

	if v.maxAge > 0 && !data.AuthDate.IsZero() && v.now().Sub(data.AuthDate) > v.maxAge {
		return nil, ErrExpired
	}

	return data, nil
}

// sign computes the HMAC of the data-check string built from values.
func (v *Validator) sign(values url.Values) []byte {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + values.Get(k)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strings.Join(lines, "\n")))
	return mac.Sum(nil)
}
