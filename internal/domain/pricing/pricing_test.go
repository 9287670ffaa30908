package pricing

import (
	"testing"

	"ringbuilder/internal/domain/entities"
)

func completeSession() entities.BuilderSession {
	return entities.BuilderSession{
		ID:   "sess-1",
		Shop: "gems.myshopify.com",
		SelectedSetting: &entities.Setting{
			ID:   "set-1",
			Shop: "gems.myshopify.com",
			BasePrices: map[entities.MetalType]float64{
				entities.Metal14KWhiteGold: 1200,
				entities.MetalPlatinum:     1800,
			},
		},
		SelectedMetalType: entities.Metal14KWhiteGold,
		SelectedStone:     &entities.Stone{ID: "sto-1", Price: 3500},
		SideStones:        &entities.SideStonesConfig{Quality: "vs", Quantity: 10, Price: 750},
		Engraving:         &entities.EngravingConfig{Enabled: true, Text: "forever", Price: 50},
	}
}

func TestCompute(t *testing.T) {
	t.Run("empty session prices to zero", func(t *testing.T) {
		b := Compute(entities.BuilderSession{}, 25)
		if b.Subtotal != 0 || b.Markup != 0 || b.Total != 0 {
			t.Fatalf("expected all-zero breakdown, got %+v", b)
		}
	})

	t.Run("full configuration", func(t *testing.T) {
		b := Compute(completeSession(), 5)
		if b.SettingPrice != 1200 {
			t.Fatalf("expected setting price 1200, got %v", b.SettingPrice)
		}
		if b.StonePrice != 3500 {
			t.Fatalf("expected stone price 3500, got %v", b.StonePrice)
		}
		if b.SideStonesPrice != 750 {
			t.Fatalf("expected side stones price 750, got %v", b.SideStonesPrice)
		}
		if b.EngravingPrice != 50 {
			t.Fatalf("expected engraving price 50, got %v", b.EngravingPrice)
		}
		if b.Subtotal != 5500 {
			t.Fatalf("expected subtotal 5500, got %v", b.Subtotal)
		}
		if b.Markup != 275 {
			t.Fatalf("expected markup 275, got %v", b.Markup)
		}
		if b.Total != 5775 {
			t.Fatalf("expected total 5775, got %v", b.Total)
		}
	})

	t.Run("setting alone without metal contributes zero", func(t *testing.T) {
		s := completeSession()
		s.SelectedMetalType = ""
		b := Compute(s, 0)
		if b.SettingPrice != 0 {
			t.Fatalf("expected setting price 0 without a metal, got %v", b.SettingPrice)
		}
	})

	t.Run("metal changes setting price", func(t *testing.T) {
		s := completeSession()
		s.SelectedMetalType = entities.MetalPlatinum
		b := Compute(s, 0)
		if b.SettingPrice != 1800 {
			t.Fatalf("expected platinum price 1800, got %v", b.SettingPrice)
		}
	})

	t.Run("unpriced metal contributes zero", func(t *testing.T) {
		s := completeSession()
		s.SelectedMetalType = entities.Metal18KRoseGold
		b := Compute(s, 0)
		if b.SettingPrice != 0 {
			t.Fatalf("expected unpriced metal to contribute 0, got %v", b.SettingPrice)
		}
	})

	t.Run("disabled engraving contributes zero", func(t *testing.T) {
		s := completeSession()
		s.Engraving = &entities.EngravingConfig{Enabled: false, Price: 50}
		b := Compute(s, 0)
		if b.EngravingPrice != 0 {
			t.Fatalf("expected disabled engraving to contribute 0, got %v", b.EngravingPrice)
		}
	})

	t.Run("zero-quantity side stones contribute zero", func(t *testing.T) {
		s := completeSession()
		s.SideStones = &entities.SideStonesConfig{Quality: "vs", Quantity: 0, Price: 750}
		b := Compute(s, 0)
		if b.SideStonesPrice != 0 {
			t.Fatalf("expected zero-quantity side stones to contribute 0, got %v", b.SideStonesPrice)
		}
	})

	t.Run("markup rounds half up", func(t *testing.T) {
		s := entities.BuilderSession{
			SelectedSetting: &entities.Setting{
				BasePrices: map[entities.MetalType]float64{entities.Metal14KWhiteGold: 101},
			},
			SelectedMetalType: entities.Metal14KWhiteGold,
		}
		// 101 * 2.5% = 2.525 -> 3
		b := Compute(s, 2.5)
		if b.Markup != 3 {
			t.Fatalf("expected markup 3, got %v", b.Markup)
		}
		if b.Total != 104 {
			t.Fatalf("expected total 104, got %v", b.Total)
		}
	})

	t.Run("subtotal is additive over components", func(t *testing.T) {
		s := completeSession()
		b := Compute(s, 25)
		sum := b.SettingPrice + b.StonePrice + b.SideStonesPrice + b.EngravingPrice
		if b.Subtotal != sum {
			t.Fatalf("expected subtotal %v, got %v", sum, b.Subtotal)
		}
		if b.Total != b.Subtotal+b.Markup {
			t.Fatalf("expected total %v, got %v", b.Subtotal+b.Markup, b.Total)
		}
	})
}
