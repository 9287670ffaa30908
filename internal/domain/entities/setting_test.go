package entities

import "testing"

func TestSetting_PriceFor(t *testing.T) {
	s := Setting{
		BasePrices: map[MetalType]float64{
			Metal14KWhiteGold: 1200,
			MetalPlatinum:     1800,
		},
	}

	if got := s.PriceFor(MetalPlatinum); got != 1800 {
		t.Fatalf("expected 1800, got %v", got)
	}
	if got := s.PriceFor(Metal18KRoseGold); got != 0 {
		t.Fatalf("expected 0 for unpriced metal, got %v", got)
	}
	if got := (Setting{}).PriceFor(Metal14KWhiteGold); got != 0 {
		t.Fatalf("expected 0 with nil price map, got %v", got)
	}
}

func TestSetting_SupportsShape(t *testing.T) {
	t.Run("empty list accepts any shape", func(t *testing.T) {
		s := Setting{}
		if !s.SupportsShape(ShapeRound) || !s.SupportsShape(ShapePear) {
			t.Fatalf("expected setting without compatibility list to accept any shape")
		}
	})

	t.Run("restricted list", func(t *testing.T) {
		s := Setting{CompatibleShapes: []StoneShape{ShapeRound, ShapeOval}}
		if !s.SupportsShape(ShapeOval) {
			t.Fatalf("expected oval to be supported")
		}
		if s.SupportsShape(ShapePear) {
			t.Fatalf("expected pear to be rejected")
		}
	})
}
