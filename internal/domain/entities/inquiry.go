package entities

import "time"

// Inquiry is a shopper question about a stone or an in-progress
// configuration, relayed to the merchant by email.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shop-index): shop

type Inquiry struct {
	ID        string    `json:"id"`
	Shop      string    `json:"shop"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	StoneID   string    `json:"stone_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
