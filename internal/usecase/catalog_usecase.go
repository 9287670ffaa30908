package usecase

import (
	"context"
	"errors"
	"strings"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"
)

var (
	ErrInvalidCatalogFilter = errors.New("invalid catalog filter")
)

// ICatalogUseCase exposes the storefront catalog queries: the settings and
// stones the shopper picks from, shop-scoped and filterable.

type ICatalogUseCase interface {
	ListSettings(ctx context.Context, shop string, f entities.SettingFilter) ([]entities.Setting, error)
	GetSetting(ctx context.Context, id string) (entities.Setting, error)
	ListStones(ctx context.Context, shop string, f entities.StoneFilter) ([]entities.Stone, error)
	GetStone(ctx context.Context, id string) (entities.Stone, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListSettings(ctx context.Context, shop string, f entities.SettingFilter) ([]entities.Setting, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return nil, ErrInvalidShop
	}
	if err := validatePriceRange(f.MinPrice, f.MaxPrice); err != nil {
		return nil, err
	}
	return u.repo.ListSettings(ctx, shop, f)
}

func (u *CatalogUseCase) GetSetting(ctx context.Context, id string) (entities.Setting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Setting{}, ErrSettingNotFound
	}
	s, err := u.repo.GetSettingByID(ctx, id)
	if err != nil {
		return entities.Setting{}, err
	}
	if s.ID == "" {
		return entities.Setting{}, ErrSettingNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) ListStones(ctx context.Context, shop string, f entities.StoneFilter) ([]entities.Stone, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return nil, ErrInvalidShop
	}
	if err := validatePriceRange(f.MinPrice, f.MaxPrice); err != nil {
		return nil, err
	}
	if f.MinCarat < 0 || f.MaxCarat < 0 || (f.MaxCarat > 0 && f.MinCarat > f.MaxCarat) {
		return nil, ErrInvalidCatalogFilter
	}
	return u.repo.ListStones(ctx, shop, f)
}

func (u *CatalogUseCase) GetStone(ctx context.Context, id string) (entities.Stone, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Stone{}, ErrStoneNotFound
	}
	s, err := u.repo.GetStoneByID(ctx, id)
	if err != nil {
		return entities.Stone{}, err
	}
	if s.ID == "" {
		return entities.Stone{}, ErrStoneNotFound
	}
	return s, nil
}

func validatePriceRange(min, max float64) error {
	if min < 0 || max < 0 {
		return ErrInvalidCatalogFilter
	}
	if max > 0 && min > max {
		return ErrInvalidCatalogFilter
	}
	return nil
}
