package entities

import "time"

// SideStoneTier is one merchant-configured accent-stone quality with its
// per-stone price.
type SideStoneTier struct {
	Quality       string  `json:"quality"`
	PricePerStone float64 `json:"price_per_stone"`
}

// ShopSettings is the merchant configuration consumed by the price deriver
// and the customize step.
//
// Storage model (DynamoDB):
//   - PK: shop
//
// MarkupPercent is applied on top of the configuration subtotal; a shop
// without stored settings prices with markup 0.

type ShopSettings struct {
	Shop           string          `json:"shop"`
	MarkupPercent  float64         `json:"markup_percent"`
	EngravingFee   float64         `json:"engraving_fee"`
	SideStoneTiers []SideStoneTier `json:"side_stone_tiers,omitempty"`
	RingSizes      []string        `json:"ring_sizes,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DefaultRingSizes is the size list used when the merchant has not
// customized one.
func DefaultRingSizes() []string {
	return []string{"4", "4.5", "5", "5.5", "6", "6.5", "7", "7.5", "8", "8.5", "9", "9.5", "10"}
}

// DefaultShopSettings returns the zero-markup fallback for a shop.
func DefaultShopSettings(shop string) ShopSettings {
	return ShopSettings{
		Shop:      shop,
		RingSizes: DefaultRingSizes(),
	}
}

// TierFor resolves a side-stone quality to its configured tier.
func (s ShopSettings) TierFor(quality string) (SideStoneTier, bool) {
	for _, t := range s.SideStoneTiers {
		if t.Quality == quality {
			return t, true
		}
	}
	return SideStoneTier{}, false
}

// AllowsRingSize reports whether a size is on the shop's size list.
func (s ShopSettings) AllowsRingSize(size string) bool {
	sizes := s.RingSizes
	if len(sizes) == 0 {
		sizes = DefaultRingSizes()
	}
	for _, v := range sizes {
		if v == size {
			return true
		}
	}
	return false
}
