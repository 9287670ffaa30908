package request

import (
	"strings"

	"ringbuilder/internal/domain/entities"
)

type SideStoneTierRequest struct {
	Quality       string  `json:"quality" binding:"required"`
	PricePerStone float64 `json:"price_per_stone"`
}

// ShopSettingsRequest is the merchant admin settings form.
type ShopSettingsRequest struct {
	MarkupPercent  float64                `json:"markup_percent"`
	EngravingFee   float64                `json:"engraving_fee"`
	SideStoneTiers []SideStoneTierRequest `json:"side_stone_tiers"`
	RingSizes      []string               `json:"ring_sizes"`
}

func (r ShopSettingsRequest) ToEntity(shop string) entities.ShopSettings {
	tiers := make([]entities.SideStoneTier, 0, len(r.SideStoneTiers))
	for _, t := range r.SideStoneTiers {
		tiers = append(tiers, entities.SideStoneTier{
			Quality:       strings.TrimSpace(t.Quality),
			PricePerStone: t.PricePerStone,
		})
	}
	return entities.ShopSettings{
		Shop:           strings.TrimSpace(shop),
		MarkupPercent:  r.MarkupPercent,
		EngravingFee:   r.EngravingFee,
		SideStoneTiers: tiers,
		RingSizes:      r.RingSizes,
	}
}
