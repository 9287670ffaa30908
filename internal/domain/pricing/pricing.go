package pricing

import (
	"math"

	"ringbuilder/internal/domain/entities"
)

// Breakdown is the derived price of a builder session. It is recomputed
// from the session on every read and never stored on its own.
//
// Invariants:
//   - Subtotal = SettingPrice + StonePrice + SideStonesPrice + EngravingPrice
//   - Markup   = roundHalfUp(Subtotal * MarkupPercent / 100)
//   - Total    = Subtotal + Markup
type Breakdown struct {
	SettingPrice    float64 `json:"setting_price"`
	StonePrice      float64 `json:"stone_price"`
	SideStonesPrice float64 `json:"side_stones_price"`
	EngravingPrice  float64 `json:"engraving_price"`
	Markup          float64 `json:"markup"`
	MarkupPercent   float64 `json:"markup_percent"`
	Subtotal        float64 `json:"subtotal"`
	Total           float64 `json:"total"`
}

// Compute derives the breakdown for a session. Absent selections contribute
// 0; the function cannot fail.
//
// markupPercent comes from merchant settings and is injected by the caller;
// pass 0 when settings are unavailable.
func Compute(s entities.BuilderSession, markupPercent float64) Breakdown {
	b := Breakdown{MarkupPercent: markupPercent}

	if s.SelectedSetting != nil && s.SelectedMetalType != "" {
		b.SettingPrice = s.SelectedSetting.PriceFor(s.SelectedMetalType)
	}
	if s.SelectedStone != nil {
		b.StonePrice = s.SelectedStone.Price
	}
	if s.SideStones != nil && s.SideStones.Quantity > 0 {
		b.SideStonesPrice = s.SideStones.Price
	}
	if s.Engraving != nil && s.Engraving.Enabled {
		b.EngravingPrice = s.Engraving.Price
	}

	b.Subtotal = b.SettingPrice + b.StonePrice + b.SideStonesPrice + b.EngravingPrice
	b.Markup = roundHalfUp(b.Subtotal * markupPercent / 100)
	b.Total = b.Subtotal + b.Markup
	return b
}

// roundHalfUp rounds to the nearest whole unit, ties away from zero toward
// positive infinity. Rounding applies only at the markup step; component
// prices pass through as supplied.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
