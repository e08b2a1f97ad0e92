// Package navigation holds the screen route table and the state carried
// between screens.
package navigation

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Screen identifies one page of the Mini App.
type Screen string

const (
	Home           Screen = "home"
	Listing        Screen = "listing"
	ListingRequest Screen = "listingrequest"
	Calculator     Screen = "calculator"
	Collection     Screen = "collection"
	Comments       Screen = "comments"
	AddComment     Screen = "addcomment"
	Settings       Screen = "settings"
	Language       Screen = "language"
)

// Route describes how a screen is reached and left.
type Route struct {
	Path string

	// Back is the screen the back button opens. Empty means no back button
	// unless HistoryBack is set.
	Back Screen

	// HistoryBack makes the back button go to the previous history entry.
	HistoryBack bool

	// CarryAddress forwards the collection address to the back target.
	CarryAddress bool

	ShowSettings bool
}

var routes = map[Screen]Route{
	Home:           {Path: "/", ShowSettings: true},
	Listing:        {Path: "/listing", Back: Home},
	ListingRequest: {Path: "/listingrequest", Back: Listing},
	Calculator:     {Path: "/calculator", Back: Home},
	Collection:     {Path: "/collection", Back: Home},
	Comments:       {Path: "/comments", Back: Collection, CarryAddress: true},
	AddComment:     {Path: "/addcomment", Back: Comments, CarryAddress: true},
	Settings:       {Path: "/settings", HistoryBack: true},
	Language:       {Path: "/language", Back: Settings},
}

// Tabs are the screens reachable from the footer navigation.
var Tabs = []Screen{Home, Listing, Calculator}

// Lookup returns the route of s.
func Lookup(s Screen) (Route, bool) {
	r, ok := routes[s]
	return r, ok
}

// Path returns the URL path of s, or "/" for unknown screens.
func (s Screen) Path() string {
	if r, ok := routes[s]; ok {
		return r.Path
	}
	return "/"
}

// State is carried between screens in the "state" query parameter.
type State struct {
	Address string `json:"address,omitempty"`
}

// Empty reports whether the state carries nothing.
func (s State) Empty() bool {
	return s.Address == ""
}

// EncodeState serializes s to URL-safe base64 JSON.
func EncodeState(s State) string {
	if s.Empty() {
		return ""
	}
	b, _ := json.Marshal(s)
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeState parses a value produced by EncodeState. An empty value yields
// an empty state.
func DecodeState(v string) (State, error) {
	var s State
	v = strings.TrimSpace(v)
	if v == "" {
		return s, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(v, "="))
	if err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return State{}, fmt.Errorf("unmarshal state: %w", err)
	}
	return s, nil
}

// URL builds the link to screen with state attached.
func URL(screen Screen, s State) string {
	path := screen.Path()
	if s.Empty() {
		return path
	}
	return path + "?" + url.Values{"state": {EncodeState(s)}}.Encode()
}

// Bridge is what the page script needs to drive the host buttons.
type Bridge struct {
	Screen       Screen
	ShowBack     bool
	HistoryBack  bool
	BackURL      string
	ShowSettings bool
	SettingsURL  string
}

// For builds the bridge directives for screen, resolving the back target
// with the carried state.
func For(screen Screen, s State) Bridge {
	r, ok := routes[screen]
	if !ok {
		return Bridge{Screen: Home, ShowSettings: true, SettingsURL: Settings.Path()}
	}

	b := Bridge{
		Screen:       screen,
		ShowSettings: r.ShowSettings,
		HistoryBack:  r.HistoryBack,
		ShowBack:     r.HistoryBack || r.Back != "",
	}
	if r.ShowSettings {
		b.SettingsURL = Settings.Path()
	}
	if r.Back != "" {
		carried := State{}
		if r.CarryAddress {
			carried = s
		}
		b.BackURL = URL(r.Back, carried)
	}
	return b
}
