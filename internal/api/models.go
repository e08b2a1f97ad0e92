package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// CollectionListItem is a collection in list responses.
type CollectionListItem struct {
	Address    string  `json:"address"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"image_url,omitempty"`
	IsVerified bool    `json:"is_verified"`
	APR        float64 `json:"apr"`
}

// ProfitabilityResponse is the payment history of a collection grouped by period.
type ProfitabilityResponse struct {
	Address    string           `json:"address"`
	Name       string           `json:"name"`
	APR        float64          `json:"apr"`
	AverageAPR float64          `json:"average_apr"`
	Period     string           `json:"period" enums:"weekly,monthly,yearly"`
	Total      string           `json:"total" example:"12.5"`
	Buckets    []BucketResponse `json:"buckets"`
}

// BucketResponse is the total paid within one period. Start is empty for the
// bucket of payments without a readable date.
type BucketResponse struct {
	Label string `json:"label" example:"01.2024"`
	Start string `json:"start,omitempty" example:"2024-01-01"`
	Total string `json:"total" example:"0.75"`
	Count int    `json:"count"`
}
