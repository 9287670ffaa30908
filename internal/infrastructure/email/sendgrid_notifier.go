package email

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendGridAPIKey = errors.New("missing SENDGRID_API_KEY")

// SendGridNotifier delivers inquiry notifications to the merchant by email.
type SendGridNotifier struct {
	apiKey string
	from   string
}

var _ interfaces.IInquiryNotifier = (*SendGridNotifier)(nil)

func NewSendGridNotifier(apiKey, from string) (*SendGridNotifier, error) {
	if apiKey == "" {
		return nil, ErrMissingSendGridAPIKey
	}
	if from == "" {
		from = "noreply@ringbuilder.app"
	}
	return &SendGridNotifier{apiKey: apiKey, from: from}, nil
}

func (n *SendGridNotifier) NotifyInquiry(ctx context.Context, merchantEmail string, i entities.Inquiry) error {
	if merchantEmail == "" {
		return errors.New("merchant email is empty")
	}

	subject := fmt.Sprintf("New ring builder inquiry from %s", i.Name)
	body := fmt.Sprintf(
		"Shop: %s\nFrom: %s <%s>\n\n%s\n",
		i.Shop, i.Name, i.Email, i.Message,
	)
	if i.StoneID != "" {
		body += fmt.Sprintf("\nStone: %s", i.StoneID)
	}
	if i.SessionID != "" {
		body += fmt.Sprintf("\nBuilder session: %s", i.SessionID)
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("Ring Builder", n.from),
		subject,
		mail.NewEmail("", merchantEmail),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("[inquiry][mail] error status=%d body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	log.Printf("[inquiry][mail] sent status=%d to=%s inquiry_id=%s", response.StatusCode, merchantEmail, i.ID)
	return nil
}
