package entities

import "testing"

func TestShopSettings_TierFor(t *testing.T) {
	s := ShopSettings{
		SideStoneTiers: []SideStoneTier{
			{Quality: "si", PricePerStone: 40},
			{Quality: "vs", PricePerStone: 75},
		},
	}

	tier, ok := s.TierFor("vs")
	if !ok || tier.PricePerStone != 75 {
		t.Fatalf("expected vs tier at 75, got %+v ok=%v", tier, ok)
	}
	if _, ok := s.TierFor("flawless"); ok {
		t.Fatalf("expected unknown quality to miss")
	}
}

func TestShopSettings_AllowsRingSize(t *testing.T) {
	t.Run("defaults apply when list is empty", func(t *testing.T) {
		s := ShopSettings{}
		if !s.AllowsRingSize("6.5") {
			t.Fatalf("expected default list to include 6.5")
		}
		if s.AllowsRingSize("13") {
			t.Fatalf("expected 13 outside the default list")
		}
	})

	t.Run("custom list replaces defaults", func(t *testing.T) {
		s := ShopSettings{RingSizes: []string{"5", "6", "7"}}
		if !s.AllowsRingSize("6") {
			t.Fatalf("expected 6 allowed")
		}
		if s.AllowsRingSize("6.5") {
			t.Fatalf("expected 6.5 rejected when not on the custom list")
		}
	})
}

func TestDefaultShopSettings(t *testing.T) {
	s := DefaultShopSettings("gems.myshopify.com")
	if s.Shop != "gems.myshopify.com" {
		t.Fatalf("expected shop carried over, got %q", s.Shop)
	}
	if s.MarkupPercent != 0 {
		t.Fatalf("expected zero markup fallback, got %v", s.MarkupPercent)
	}
	if len(s.RingSizes) == 0 {
		t.Fatalf("expected default ring sizes populated")
	}
}
