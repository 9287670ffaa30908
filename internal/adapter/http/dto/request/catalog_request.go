package request

import (
	"strings"

	"ringbuilder/internal/domain/entities"
)

// ListSettingsRequest binds the settings catalog query string.
type ListSettingsRequest struct {
	Shop     string  `form:"shop" binding:"required"`
	Shape    string  `form:"shape"`
	Metal    string  `form:"metal"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
}

func (r ListSettingsRequest) ResolveShop() string {
	return strings.TrimSpace(r.Shop)
}

func (r ListSettingsRequest) ResolveFilter() entities.SettingFilter {
	return entities.SettingFilter{
		Shape:    entities.StoneShape(strings.TrimSpace(r.Shape)),
		Metal:    entities.MetalType(strings.TrimSpace(r.Metal)),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

// ListStonesRequest binds the stones catalog query string.
type ListStonesRequest struct {
	Shop     string  `form:"shop" binding:"required"`
	Shape    string  `form:"shape"`
	MinCarat float64 `form:"min_carat"`
	MaxCarat float64 `form:"max_carat"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Cut      string  `form:"cut"`
	Color    string  `form:"color"`
	Clarity  string  `form:"clarity"`
	Lab      string  `form:"lab"`
}

func (r ListStonesRequest) ResolveShop() string {
	return strings.TrimSpace(r.Shop)
}

func (r ListStonesRequest) ResolveFilter() entities.StoneFilter {
	return entities.StoneFilter{
		Shape:    entities.StoneShape(strings.TrimSpace(r.Shape)),
		MinCarat: r.MinCarat,
		MaxCarat: r.MaxCarat,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Cut:      strings.TrimSpace(r.Cut),
		Color:    strings.TrimSpace(r.Color),
		Clarity:  strings.TrimSpace(r.Clarity),
		Lab:      strings.TrimSpace(r.Lab),
	}
}
