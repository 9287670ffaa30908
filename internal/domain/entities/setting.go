package entities

import "time"

// Setting is a ring band/mount product managed by the merchant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shop-index): shop
//
// Monetary representation:
//   - BasePrices maps metal type to the setting's base price in major
//     currency units. A metal missing from the map prices as 0.

type Setting struct {
	ID               string                `json:"id"`
	Shop             string                `json:"shop"`
	Name             string                `json:"name"`
	Description      string                `json:"description,omitempty"`
	BasePrices       map[MetalType]float64 `json:"base_prices"`
	CompatibleShapes []StoneShape          `json:"compatible_shapes"`
	Images           []string              `json:"images,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// PriceFor returns the base price for a metal, 0 when the metal is not
// priced for this setting.
func (s Setting) PriceFor(metal MetalType) float64 {
	if s.BasePrices == nil {
		return 0
	}
	return s.BasePrices[metal]
}

// SupportsShape reports whether a stone shape fits this setting. An empty
// compatibility list means the setting accepts any shape.
func (s Setting) SupportsShape(shape StoneShape) bool {
	if len(s.CompatibleShapes) == 0 {
		return true
	}
	for _, c := range s.CompatibleShapes {
		if c == shape {
			return true
		}
	}
	return false
}
