package model

import "github.com/shopspring/decimal"

// Image wraps a single image URL as delivered by the backend.
type Image struct {
	BaseURL string `json:"baseUrl"`
}

// NFTImage is the nested image envelope of a collection.
type NFTImage struct {
	Image Image `json:"image"`
}

// Collection represents an NFT collection as reported by the blockchain indexer.
type Collection struct {
	Address                 string   `json:"address"`
	Name                    string   `json:"name"`
	Description             string   `json:"description"`
	Image                   NFTImage `json:"image"`
	CoverImage              NFTImage `json:"coverImage"`
	SocialLinks             []string `json:"socialLinks"`
	IsVerified              bool     `json:"isVerified"`
	ApproximateItemsCount   int      `json:"approximateItemsCount"`
	ApproximateHoldersCount int      `json:"approximateHoldersCount"`
	Floor                   float64  `json:"floor"`
}

// ImageURL returns the collection avatar URL.
func (c Collection) ImageURL() string {
	return c.Image.Image.BaseURL
}

// CoverURL returns the cover image URL, falling back to the avatar.
func (c Collection) CoverURL() string {
	if c.CoverImage.Image.BaseURL != "" {
		return c.CoverImage.Image.BaseURL
	}
	return c.ImageURL()
}

// PaybackPeriod is the estimated time until rewards cover the floor price.
type PaybackPeriod struct {
	Days   int `json:"days"`
	Months int `json:"months"`
	Years  int `json:"years"`
}

// Payment is a single reward payout.
type Payment struct {
	Date   string          `json:"date"` // "dd.mm.yyyy"
	Amount decimal.Decimal `json:"amount"`
}

// PaymentHistory is the envelope of GET /collection/{address}/payment_history.
type PaymentHistory struct {
	History []Payment `json:"history"`
}

// CollectionData aggregates a collection with its yield figures.
type CollectionData struct {
	Collection      Collection    `json:"collection"`
	APR             float64       `json:"apr"`
	AverageAPR      float64       `json:"average_apr"`
	PaybackPeriod   PaybackPeriod `json:"payback_period"`
	PaymentHistory  []Payment     `json:"paymentHistory"`
	RegularPayments bool          `json:"regular_payments"`
	Unsafe          bool          `json:"unsafe"`
}

// CalculatorRequest is the body of POST /calculator.
type CalculatorRequest struct {
	Address             string  `json:"address"`
	Income              float64 `json:"income"`
	PaymentIntervalDays int     `json:"payment_interval_days"`
}

// CalculatorResult is the APR estimate for an arbitrary collection.
type CalculatorResult struct {
	Collection    Collection    `json:"collection"`
	APR           float64       `json:"apr"`
	PaybackPeriod PaybackPeriod `json:"payback_period"`
}

// Comment is a holder review of a collection.
type Comment struct {
	Collection string `json:"collection"`
	Name       string `json:"name"`
	Time       string `json:"time"`
	Like       bool   `json:"like"`
	Text       string `json:"text"`
}

// NewComment is the body of PUT /collection/{address}/comments.
type NewComment struct {
	Collection  string `json:"collection"`
	Name        string `json:"name"`
	UserAddress string `json:"user_address"`
	Like        bool   `json:"like"`
	Text        string `json:"text"`
}

// RewardToken is a token in which listing rewards are paid.
type RewardToken struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// ListingRequest is the body of PUT /listing.
type ListingRequest struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"user_id"`
	Address             string        `json:"address"`
	Income              float64       `json:"income"`
	PaymentIntervalDays int           `json:"payment_interval_days"`
	Tokens              []RewardToken `json:"jettons,omitempty"`
}

// ListingResult is the backend's APR preview for a submitted listing.
type ListingResult struct {
	Collection    Collection    `json:"collection"`
	APR           float64       `json:"apr"`
	PaybackPeriod PaybackPeriod `json:"payback_period"`
}
