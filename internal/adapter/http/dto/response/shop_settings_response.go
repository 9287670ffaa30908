package response

import (
	"time"

	"ringbuilder/internal/domain/entities"
)

type ShopSettingsResponse struct {
	Shop           string                   `json:"shop"`
	MarkupPercent  float64                  `json:"markup_percent"`
	EngravingFee   float64                  `json:"engraving_fee"`
	SideStoneTiers []entities.SideStoneTier `json:"side_stone_tiers"`
	RingSizes      []string                 `json:"ring_sizes"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func FromShopSettings(s entities.ShopSettings) ShopSettingsResponse {
	tiers := s.SideStoneTiers
	if tiers == nil {
		tiers = []entities.SideStoneTier{}
	}
	sizes := s.RingSizes
	if len(sizes) == 0 {
		sizes = entities.DefaultRingSizes()
	}
	return ShopSettingsResponse{
		Shop:           s.Shop,
		MarkupPercent:  s.MarkupPercent,
		EngravingFee:   s.EngravingFee,
		SideStoneTiers: tiers,
		RingSizes:      sizes,
		UpdatedAt:      s.UpdatedAt,
	}
}
