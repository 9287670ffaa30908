package usecase

import (
	"context"
	"errors"
	"testing"

	"ringbuilder/internal/domain/entities"
	mock_interfaces "ringbuilder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newShopSettingsUseCaseForTest(t *testing.T) (*ShopSettingsUseCase, *mock_interfaces.MockIShopSettingsRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIShopSettingsRepository(ctrl)
	return NewShopSettingsUseCase(repo), repo
}

func TestShopSettingsUseCase_Get(t *testing.T) {
	t.Run("invalid shop", func(t *testing.T) {
		uc, _ := newShopSettingsUseCaseForTest(t)
		_, err := uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidShop) {
			t.Fatalf("expected ErrInvalidShop, got %v", err)
		}
	})

	t.Run("unconfigured shop gets defaults", func(t *testing.T) {
		uc, repo := newShopSettingsUseCaseForTest(t)
		repo.EXPECT().Get(gomock.Any(), testShop).Return(entities.ShopSettings{}, nil)

		cfg, err := uc.Get(context.Background(), testShop)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Shop != testShop || cfg.MarkupPercent != 0 {
			t.Fatalf("expected zero-markup defaults, got %+v", cfg)
		}
		if len(cfg.RingSizes) == 0 {
			t.Fatalf("expected default ring sizes")
		}
	})

	t.Run("stored settings pass through", func(t *testing.T) {
		uc, repo := newShopSettingsUseCaseForTest(t)
		repo.EXPECT().Get(gomock.Any(), testShop).
			Return(entities.ShopSettings{Shop: testShop, MarkupPercent: 12}, nil)

		cfg, err := uc.Get(context.Background(), testShop)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MarkupPercent != 12 {
			t.Fatalf("expected markup 12, got %v", cfg.MarkupPercent)
		}
	})
}

func TestShopSettingsUseCase_Put(t *testing.T) {
	valid := entities.ShopSettings{
		Shop:          testShop,
		MarkupPercent: 10,
		EngravingFee:  50,
		SideStoneTiers: []entities.SideStoneTier{
			{Quality: "vs", PricePerStone: 75},
		},
	}

	t.Run("markup out of range", func(t *testing.T) {
		uc, _ := newShopSettingsUseCaseForTest(t)
		s := valid
		s.MarkupPercent = 101
		_, err := uc.Put(context.Background(), s)
		if !errors.Is(err, ErrInvalidMarkupPercent) {
			t.Fatalf("expected ErrInvalidMarkupPercent, got %v", err)
		}
	})

	t.Run("negative engraving fee", func(t *testing.T) {
		uc, _ := newShopSettingsUseCaseForTest(t)
		s := valid
		s.EngravingFee = -1
		_, err := uc.Put(context.Background(), s)
		if !errors.Is(err, ErrInvalidEngravingFee) {
			t.Fatalf("expected ErrInvalidEngravingFee, got %v", err)
		}
	})

	t.Run("blank tier quality", func(t *testing.T) {
		uc, _ := newShopSettingsUseCaseForTest(t)
		s := valid
		s.SideStoneTiers = []entities.SideStoneTier{{Quality: " ", PricePerStone: 75}}
		_, err := uc.Put(context.Background(), s)
		if !errors.Is(err, ErrInvalidSideStoneTier) {
			t.Fatalf("expected ErrInvalidSideStoneTier, got %v", err)
		}
	})

	t.Run("blank ring size option", func(t *testing.T) {
		uc, _ := newShopSettingsUseCaseForTest(t)
		s := valid
		s.RingSizes = []string{"6", " "}
		_, err := uc.Put(context.Background(), s)
		if !errors.Is(err, ErrInvalidRingSizeOption) {
			t.Fatalf("expected ErrInvalidRingSizeOption, got %v", err)
		}
	})

	t.Run("empty size list falls back to defaults", func(t *testing.T) {
		uc, repo := newShopSettingsUseCaseForTest(t)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.ShopSettings) (entities.ShopSettings, error) {
				return s, nil
			})

		saved, err := uc.Put(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved.RingSizes) == 0 {
			t.Fatalf("expected default ring sizes applied")
		}
		if saved.UpdatedAt.IsZero() {
			t.Fatalf("expected UpdatedAt stamped")
		}
	})
}
