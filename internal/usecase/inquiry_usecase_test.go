package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ringbuilder/internal/domain/entities"
	mock_interfaces "ringbuilder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type inquiryMocks struct {
	repo     *mock_interfaces.MockIInquiryRepository
	notifier *mock_interfaces.MockIInquiryNotifier
}

func newInquiryUseCaseForTest(t *testing.T, merchantEmail string) (*InquiryUseCase, inquiryMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := inquiryMocks{
		repo:     mock_interfaces.NewMockIInquiryRepository(ctrl),
		notifier: mock_interfaces.NewMockIInquiryNotifier(ctrl),
	}
	return NewInquiryUseCase(m.repo, m.notifier, merchantEmail), m
}

func inquiryCommand() CreateInquiryCommand {
	return CreateInquiryCommand{
		Shop:    testShop,
		Name:    "Alex",
		Email:   "alex@example.com",
		Message: "Is this stone eye-clean?",
		StoneID: "sto-1",
	}
}

func TestInquiryUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc, _ := newInquiryUseCaseForTest(t, "owner@example.com")
		cmd := inquiryCommand()
		cmd.Name = "  "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInquiryName) {
			t.Fatalf("expected ErrInvalidInquiryName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newInquiryUseCaseForTest(t, "owner@example.com")
		cmd := inquiryCommand()
		cmd.Email = "not-an-address"
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInquiryEmail) {
			t.Fatalf("expected ErrInvalidInquiryEmail, got %v", err)
		}
	})

	t.Run("message too long", func(t *testing.T) {
		uc, _ := newInquiryUseCaseForTest(t, "owner@example.com")
		cmd := inquiryCommand()
		cmd.Message = strings.Repeat("a", maxInquiryMessageLen+1)
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInquiryMessage) {
			t.Fatalf("expected ErrInvalidInquiryMessage, got %v", err)
		}
	})

	t.Run("success notifies the merchant", func(t *testing.T) {
		uc, m := newInquiryUseCaseForTest(t, "owner@example.com")
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				return i, nil
			})
		m.notifier.EXPECT().NotifyInquiry(gomock.Any(), "owner@example.com", gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), inquiryCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Shop != testShop {
			t.Fatalf("unexpected inquiry %+v", created)
		}
	})

	t.Run("notification failure does not fail the inquiry", func(t *testing.T) {
		uc, m := newInquiryUseCaseForTest(t, "owner@example.com")
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				return i, nil
			})
		m.notifier.EXPECT().NotifyInquiry(gomock.Any(), "owner@example.com", gomock.Any()).
			Return(errors.New("sendgrid 500"))

		_, err := uc.Create(context.Background(), inquiryCommand())
		if err != nil {
			t.Fatalf("expected success despite notification failure, got %v", err)
		}
	})

	t.Run("no merchant email skips notification", func(t *testing.T) {
		uc, m := newInquiryUseCaseForTest(t, "")
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				return i, nil
			})

		_, err := uc.Create(context.Background(), inquiryCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInquiryUseCase_ListByShop(t *testing.T) {
	t.Run("invalid shop", func(t *testing.T) {
		uc, _ := newInquiryUseCaseForTest(t, "")
		_, err := uc.ListByShop(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidShop) {
			t.Fatalf("expected ErrInvalidShop, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newInquiryUseCaseForTest(t, "")
		m.repo.EXPECT().ListByShop(gomock.Any(), testShop).
			Return([]entities.Inquiry{{ID: "inq-1"}}, nil)

		list, err := uc.ListByShop(context.Background(), testShop)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 inquiry, got %d", len(list))
		}
	})
}
