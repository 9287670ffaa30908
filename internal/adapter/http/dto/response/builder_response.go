package response

import (
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/domain/pricing"
	"ringbuilder/internal/usecase"
)

type PriceBreakdownResponse struct {
	SettingPrice    float64 `json:"setting_price"`
	StonePrice      float64 `json:"stone_price"`
	SideStonesPrice float64 `json:"side_stones_price"`
	EngravingPrice  float64 `json:"engraving_price"`
	Markup          float64 `json:"markup"`
	MarkupPercent   float64 `json:"markup_percent"`
	Subtotal        float64 `json:"subtotal"`
	Total           float64 `json:"total"`
}

type StepStateResponse struct {
	Step      int    `json:"step"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Disabled  bool   `json:"disabled"`
}

// SessionResponse is the full builder state the storefront renders from:
// the session, its derived price breakdown, and the step-indicator states.
type SessionResponse struct {
	ID                string                      `json:"id"`
	Shop              string                      `json:"shop"`
	CurrentStep       int                         `json:"current_step"`
	SelectedSetting   *SettingResponse            `json:"selected_setting,omitempty"`
	SelectedMetalType string                      `json:"selected_metal_type,omitempty"`
	SelectedStone     *StoneResponse              `json:"selected_stone,omitempty"`
	RingSize          string                      `json:"ring_size,omitempty"`
	SideStones        *entities.SideStonesConfig  `json:"side_stones,omitempty"`
	Engraving         *entities.EngravingConfig   `json:"engraving,omitempty"`
	GiftMessage       *entities.GiftMessageConfig `json:"gift_message,omitempty"`
	Status            string                      `json:"status"`
	Price             PriceBreakdownResponse      `json:"price"`
	Steps             []StepStateResponse         `json:"steps"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

func FromSessionResult(res usecase.SessionResult) SessionResponse {
	s := res.Session
	out := SessionResponse{
		ID:                s.ID,
		Shop:              s.Shop,
		CurrentStep:       int(s.CurrentStep),
		SelectedMetalType: string(s.SelectedMetalType),
		RingSize:          s.RingSize,
		SideStones:        s.SideStones,
		Engraving:         s.Engraving,
		GiftMessage:       s.GiftMessage,
		Status:            string(s.Status),
		Price:             fromBreakdown(res.Price),
		Steps:             fromStepStates(res.Steps),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.SelectedSetting != nil {
		setting := FromSetting(*s.SelectedSetting)
		out.SelectedSetting = &setting
	}
	if s.SelectedStone != nil {
		stone := FromStone(*s.SelectedStone)
		out.SelectedStone = &stone
	}
	return out
}

func fromBreakdown(b pricing.Breakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		SettingPrice:    b.SettingPrice,
		StonePrice:      b.StonePrice,
		SideStonesPrice: b.SideStonesPrice,
		EngravingPrice:  b.EngravingPrice,
		Markup:          b.Markup,
		MarkupPercent:   b.MarkupPercent,
		Subtotal:        b.Subtotal,
		Total:           b.Total,
	}
}

func fromStepStates(states []entities.StepState) []StepStateResponse {
	out := make([]StepStateResponse, 0, len(states))
	for _, st := range states {
		out = append(out, StepStateResponse{
			Step:      int(st.Step),
			Label:     st.Label,
			Completed: st.Completed,
			Disabled:  st.Disabled,
		})
	}
	return out
}
