package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultBackendURL is the APRiority backend origin.
	DefaultBackendURL = "http://127.0.0.1:5000"

	// DefaultDatabaseURL is empty; preferences then live in cookies only.
	DefaultDatabaseURL = ""

	// DefaultRequestTimeout bounds every backend call.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultInitDataMaxAge is how long Telegram launch data stays valid.
	DefaultInitDataMaxAge = 24 * time.Hour

	// DefaultRateLimit is the default requests per minute per IP address.
	DefaultRateLimit = 120

	// DefaultManifestURL is the TON Connect manifest used by the wallet provider.
	DefaultManifestURL = "https://gist.githubusercontent.com/client-off/447f7c60e7c4866edaa1daae1ffdafe6/raw/4841bbfab996aa6b45134124fe3a9b1296f74a5b/apriority-tcm.json"

	// DefaultSupportURL is opened from the settings screen.
	DefaultSupportURL = "https://t.me/apriority_support"

	// HeaderColorDark and HeaderColorLight are sent to the host header-color directive.
	HeaderColorDark  = "#1C1C1C"
	HeaderColorLight = "#FFFFFF"
)

// DefaultListingConditions are shown on the listing screen when no config file overrides them.
var DefaultListingConditions = []Condition{
	{EN: "The collection is deployed on TON", RU: "Коллекция развёрнута в сети TON"},
	{EN: "Rewards are paid to holders regularly", RU: "Вознаграждения выплачиваются держателям регулярно"},
	{EN: "Payment history is publicly verifiable", RU: "История выплат публично проверяема"},
	{EN: "Reward token contract is provided", RU: "Указан контракт токена вознаграждения"},
	{EN: "Floor price is available on marketplaces", RU: "Минимальная цена доступна на маркетплейсах"},
	{EN: "The team is reachable for verification", RU: "Команда доступна для проверки"},
}

// Condition is one listing requirement in both UI languages.
type Condition struct {
	EN string `toml:"en"`
	RU string `toml:"ru"`
}

// File holds settings that may be overridden from a TOML file.
type File struct {
	ManifestURL       string      `toml:"manifest_url"`
	SupportURL        string      `toml:"support_url"`
	ListingConditions []Condition `toml:"listing_condition"`
}

// Defaults returns the built-in file settings.
func Defaults() File {
	return File{
		ManifestURL:       DefaultManifestURL,
		SupportURL:        DefaultSupportURL,
		ListingConditions: DefaultListingConditions,
	}
}

// Load reads a TOML file on top of Defaults. An empty path returns the defaults.
func Load(path string) (File, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file File
	if _, err := toml.Decode(string(data), &file); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if file.ManifestURL != "" {
		cfg.ManifestURL = file.ManifestURL
	}
	if file.SupportURL != "" {
		cfg.SupportURL = file.SupportURL
	}
	if len(file.ListingConditions) > 0 {
		for i, c := range file.ListingConditions {
			if c.EN == "" {
				return cfg, fmt.Errorf("listing_condition %d: en text is required", i)
			}
		}
		cfg.ListingConditions = file.ListingConditions
	}

	return cfg, nil
}
