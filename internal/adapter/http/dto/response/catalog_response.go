package response

import "ringbuilder/internal/domain/entities"

type SettingResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	BasePrices       map[string]float64 `json:"base_prices"`
	CompatibleShapes []string           `json:"compatible_shapes,omitempty"`
	Images           []string           `json:"images,omitempty"`
}

type StoneResponse struct {
	ID          string               `json:"id"`
	Carat       float64              `json:"carat"`
	Shape       string               `json:"shape"`
	Cut         string               `json:"cut"`
	Color       string               `json:"color"`
	Clarity     string               `json:"clarity"`
	Certificate entities.Certificate `json:"certificate,omitempty"`
	Price       float64              `json:"price"`
	ImageURL    string               `json:"image_url,omitempty"`
}

// SettingListResponse matches the storefront contract: `{ settings: [...] }`.
type SettingListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// StoneListResponse matches the storefront contract: `{ stones: [...] }`.
type StoneListResponse struct {
	Stones []StoneResponse `json:"stones"`
}

func FromSetting(s entities.Setting) SettingResponse {
	prices := make(map[string]float64, len(s.BasePrices))
	for metal, price := range s.BasePrices {
		prices[string(metal)] = price
	}
	shapes := make([]string, 0, len(s.CompatibleShapes))
	for _, shape := range s.CompatibleShapes {
		shapes = append(shapes, string(shape))
	}
	return SettingResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		BasePrices:       prices,
		CompatibleShapes: shapes,
		Images:           s.Images,
	}
}

func FromStone(s entities.Stone) StoneResponse {
	return StoneResponse{
		ID:          s.ID,
		Carat:       s.Carat,
		Shape:       string(s.Shape),
		Cut:         s.Cut,
		Color:       s.Color,
		Clarity:     s.Clarity,
		Certificate: s.Certificate,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
	}
}

func FromSettings(settings []entities.Setting) SettingListResponse {
	out := SettingListResponse{Settings: make([]SettingResponse, 0, len(settings))}
	for _, s := range settings {
		out.Settings = append(out.Settings, FromSetting(s))
	}
	return out
}

func FromStones(stones []entities.Stone) StoneListResponse {
	out := StoneListResponse{Stones: make([]StoneResponse, 0, len(stones))}
	for _, s := range stones {
		out.Stones = append(out.Stones, FromStone(s))
	}
	return out
}
