package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const maxInquiryMessageLen = 2000

var (
	ErrInvalidInquiryName    = errors.New("invalid inquiry name")
	ErrInvalidInquiryEmail   = errors.New("invalid inquiry email")
	ErrInvalidInquiryMessage = errors.New("invalid inquiry message")
)

// CreateInquiryCommand carries a shopper question about a stone or an
// in-progress configuration.
type CreateInquiryCommand struct {
	Shop      string
	Name      string
	Email     string
	Message   string
	StoneID   string
	SessionID string
}

// IInquiryUseCase records shopper inquiries and notifies the merchant.

type IInquiryUseCase interface {
	Create(ctx context.Context, cmd CreateInquiryCommand) (entities.Inquiry, error)
	ListByShop(ctx context.Context, shop string) ([]entities.Inquiry, error)
}

type InquiryUseCase struct {
	repo          interfaces.IInquiryRepository
	notifier      interfaces.IInquiryNotifier
	merchantEmail string
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, notifier interfaces.IInquiryNotifier, merchantEmail string) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, notifier: notifier, merchantEmail: merchantEmail}
}

// Create validates and persists the inquiry, then notifies the merchant.
// Notification is best-effort: a delivery failure is logged and never
// surfaces to the shopper.
func (u *InquiryUseCase) Create(ctx context.Context, cmd CreateInquiryCommand) (entities.Inquiry, error) {
	shop := strings.TrimSpace(cmd.Shop)
	if shop == "" {
		return entities.Inquiry{}, ErrInvalidShop
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Inquiry{}, ErrInvalidInquiryName
	}
	email := strings.TrimSpace(cmd.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Inquiry{}, ErrInvalidInquiryEmail
	}
	message := strings.TrimSpace(cmd.Message)
	if message == "" || len(message) > maxInquiryMessageLen {
		return entities.Inquiry{}, ErrInvalidInquiryMessage
	}

	i := entities.Inquiry{
		ID:        uuid.NewString(),
		Shop:      shop,
		Name:      name,
		Email:     email,
		Message:   message,
		StoneID:   strings.TrimSpace(cmd.StoneID),
		SessionID: strings.TrimSpace(cmd.SessionID),
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, i)
	if err != nil {
		return entities.Inquiry{}, err
	}

	if u.notifier != nil && u.merchantEmail != "" {
		if err := u.notifier.NotifyInquiry(ctx, u.merchantEmail, created); err != nil {
			log.Printf("[inquiry][usecase] merchant notification failed inquiry_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *InquiryUseCase) ListByShop(ctx context.Context, shop string) ([]entities.Inquiry, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" {
		return nil, ErrInvalidShop
	}
	return u.repo.ListByShop(ctx, shop)
}
