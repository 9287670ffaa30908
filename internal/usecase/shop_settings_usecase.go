package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"
)

var (
	ErrInvalidMarkupPercent  = errors.New("invalid markup percent")
	ErrInvalidEngravingFee   = errors.New("invalid engraving fee")
	ErrInvalidSideStoneTier  = errors.New("invalid side stone tier")
	ErrInvalidRingSizeOption = errors.New("invalid ring size option")
)

// IShopSettingsUseCase exposes the merchant pricing configuration: markup
// percent, engraving fee, side-stone tiers, and the ring size list.

type IShopSettingsUseCase interface {
	Get(ctx context.Context, shop string) (entities.ShopSettings, error)
	Put(ctx context.Context, s entities.ShopSettings) (entities.ShopSettings, error)
}

type ShopSettingsUseCase struct {
	repo interfaces.IShopSettingsRepository
}

var _ IShopSettingsUseCase = (*ShopSettingsUseCase)(nil)

func NewShopSettingsUseCase(repo interfaces.IShopSettingsRepository) *ShopSettingsUseCase {
	return &ShopSettingsUseCase{repo: repo}
}

// Get returns the stored settings or the zero-markup defaults for a shop
// that never saved any.
func (u *ShopSettingsUseCase) Get(ctx context.Context, shop string) (entities.ShopSettings, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return entities.ShopSettings{}, ErrInvalidShop
	}

	cfg, err := u.repo.Get(ctx, shop)
	if err != nil {
		return entities.ShopSettings{}, err
	}
	if cfg.Shop == "" {
		return entities.DefaultShopSettings(shop), nil
	}
	return cfg, nil
}

func (u *ShopSettingsUseCase) Put(ctx context.Context, s entities.ShopSettings) (entities.ShopSettings, error) {
	s.Shop = strings.TrimSpace(s.Shop)
	if s.Shop == "" {
		return entities.ShopSettings{}, ErrInvalidShop
	}
	if s.MarkupPercent < 0 || s.MarkupPercent > 100 {
		return entities.ShopSettings{}, ErrInvalidMarkupPercent
	}
	if s.EngravingFee < 0 {
		return entities.ShopSettings{}, ErrInvalidEngravingFee
	}
	for _, t := range s.SideStoneTiers {
		if strings.TrimSpace(t.Quality) == "" || t.PricePerStone < 0 {
			return entities.ShopSettings{}, ErrInvalidSideStoneTier
		}
	}
	for _, size := range s.RingSizes {
		if strings.TrimSpace(size) == "" {
			return entities.ShopSettings{}, ErrInvalidRingSizeOption
		}
	}
	if len(s.RingSizes) == 0 {
		s.RingSizes = entities.DefaultRingSizes()
	}

	s.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, s)
}
