package entities

import (
	"encoding/json"
	"time"
)

// RingConfiguration is the immutable snapshot persisted when a completed
// builder session is submitted to the shop's cart.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shop-index): shop
//
// CartDataRaw keeps the shop cart response body (JSON) for traceability;
// CartData is the parsed representation, useful for querying/debugging.

type RingConfiguration struct {
	ID         string            `json:"id"`
	Shop       string            `json:"shop"`
	SessionID  string            `json:"session_id"`
	SettingID  string            `json:"setting_id"`
	StoneID    string            `json:"stone_id"`
	MetalType  MetalType         `json:"metal_type"`
	RingSize   string            `json:"ring_size"`
	SideStones *SideStonesConfig `json:"side_stones,omitempty"`
	Engraving  *EngravingConfig  `json:"engraving,omitempty"`
	TotalPrice float64           `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`

	CartDataRaw json.RawMessage        `json:"cart_data_raw,omitempty"`
	CartData    map[string]interface{} `json:"cart_data,omitempty"`
}
