package response

import (
	"encoding/json"

	"ringbuilder/internal/usecase"
)

// CartSubmissionResponse is the storefront cart hand-off result.
type CartSubmissionResponse struct {
	ConfigurationID string          `json:"configuration_id"`
	CartData        json.RawMessage `json:"cart_data,omitempty"`
	RedirectURL     string          `json:"redirect_url,omitempty"`
	TotalPrice      float64         `json:"total_price"`
}

func FromCartSubmission(sub usecase.CartSubmission) CartSubmissionResponse {
	return CartSubmissionResponse{
		ConfigurationID: sub.Configuration.ID,
		CartData:        sub.Configuration.CartDataRaw,
		RedirectURL:     sub.RedirectURL,
		TotalPrice:      sub.Configuration.TotalPrice,
	}
}
