package interfaces

import (
	"context"

	"ringbuilder/internal/domain/entities"
)

// IInquiryRepository abstracts DynamoDB persistence for shopper inquiries.

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
	ListByShop(ctx context.Context, shop string) ([]entities.Inquiry, error)
}
