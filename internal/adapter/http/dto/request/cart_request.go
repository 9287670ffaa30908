package request

import (
	"strings"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase"
)

// SubmitCartRequest is the multipart cart form posted by the storefront.
// The setting/stone/price fields echo what the shopper saw; the server
// recomputes everything from the stored session, so they are informational.
type SubmitCartRequest struct {
	Shop       string  `form:"shop" binding:"required"`
	SessionID  string  `form:"session_id" binding:"required"`
	SettingID  string  `form:"setting_id"`
	StoneID    string  `form:"stone_id"`
	MetalType  string  `form:"metal_type"`
	RingSize   string  `form:"ring_size"`
	TotalPrice float64 `form:"total_price"`
	// SideStones is accepted for storefront form compatibility but ignored:
	// side stones are snapshotted from the stored session, never from the form.
	SideStones string `form:"side_stones"`
}

func (r SubmitCartRequest) ToCommand() usecase.SubmitCartCommand {
	return usecase.SubmitCartCommand{
		Shop:       strings.TrimSpace(r.Shop),
		SessionID:  strings.TrimSpace(r.SessionID),
		SettingID:  strings.TrimSpace(r.SettingID),
		StoneID:    strings.TrimSpace(r.StoneID),
		MetalType:  entities.MetalType(strings.TrimSpace(r.MetalType)),
		RingSize:   strings.TrimSpace(r.RingSize),
		TotalPrice: r.TotalPrice,
	}
}
