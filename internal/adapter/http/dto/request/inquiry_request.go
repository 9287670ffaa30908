package request

import (
	"strings"

	"ringbuilder/internal/usecase"
)

type InquiryRequest struct {
	Shop      string `json:"shop" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Message   string `json:"message" binding:"required"`
	StoneID   string `json:"stone_id"`
	SessionID string `json:"session_id"`
}

func (r InquiryRequest) ToCommand() usecase.CreateInquiryCommand {
	return usecase.CreateInquiryCommand{
		Shop:      strings.TrimSpace(r.Shop),
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.TrimSpace(r.Email),
		Message:   strings.TrimSpace(r.Message),
		StoneID:   strings.TrimSpace(r.StoneID),
		SessionID: strings.TrimSpace(r.SessionID),
	}
}
