package response

import (
	"time"

	"ringbuilder/internal/domain/entities"
)

type InquiryResponse struct {
	ID        string    `json:"id"`
	Shop      string    `json:"shop"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	StoneID   string    `json:"stone_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        i.ID,
		Shop:      i.Shop,
		Name:      i.Name,
		Email:     i.Email,
		Message:   i.Message,
		StoneID:   i.StoneID,
		SessionID: i.SessionID,
		CreatedAt: i.CreatedAt,
	}
}

func FromInquiries(items []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInquiry(i))
	}
	return out
}
