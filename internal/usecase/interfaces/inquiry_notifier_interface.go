package interfaces

import (
	"context"

	"ringbuilder/internal/domain/entities"
)

// IInquiryNotifier abstracts the merchant notification channel (e.g.
// SendGrid email). Delivery is best-effort; failures must not fail the
// inquiry itself.
type IInquiryNotifier interface {
	NotifyInquiry(ctx context.Context, merchantEmail string, i entities.Inquiry) error
}
