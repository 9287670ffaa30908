package request

import (
	"strings"

	"ringbuilder/internal/domain/entities"
)

// ResumeSessionRequest starts or restores a builder session. SessionID is
// the shopper's stored session id, if any; a stale or foreign id simply
// produces a fresh session.
type ResumeSessionRequest struct {
	Shop      string `json:"shop" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r ResumeSessionRequest) ResolveShop() string {
	return strings.TrimSpace(r.Shop)
}

type SelectSettingRequest struct {
	SettingID string `json:"setting_id" binding:"required"`
	MetalType string `json:"metal_type" binding:"required"`
}

func (r SelectSettingRequest) ResolveMetal() entities.MetalType {
	return entities.MetalType(strings.TrimSpace(r.MetalType))
}

type SelectStoneRequest struct {
	StoneID string `json:"stone_id" binding:"required"`
}

type UpdateMetalRequest struct {
	MetalType string `json:"metal_type" binding:"required"`
}

func (r UpdateMetalRequest) ResolveMetal() entities.MetalType {
	return entities.MetalType(strings.TrimSpace(r.MetalType))
}

type UpdateRingSizeRequest struct {
	RingSize string `json:"ring_size" binding:"required"`
}

// UpdateSideStonesRequest applies a side-stone tier; quantity 0 removes
// the add-on, so it carries no required binding.
type UpdateSideStonesRequest struct {
	Quality  string `json:"quality"`
	Quantity int    `json:"quantity"`
}

type UpdateEngravingRequest struct {
	Enabled  bool   `json:"enabled"`
	Text     string `json:"text"`
	Font     string `json:"font"`
	Position string `json:"position"`
}

type UpdateGiftMessageRequest struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

type GoToStepRequest struct {
	Step int `json:"step" binding:"required"`
}

func (r GoToStepRequest) ResolveStep() entities.BuilderStep {
	return entities.BuilderStep(r.Step)
}
