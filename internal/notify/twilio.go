package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioMessenger sends SMS through the Twilio Messages API.
type TwilioMessenger struct {
	client *twilio.RestClient
}

// NewTwilio builds a messenger from account credentials.
func NewTwilio(accountSID, authToken string) *TwilioMessenger {
	return &TwilioMessenger{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
	}
}

// Send creates one outbound message. The Twilio client carries its own
// request timeout; ctx is accepted for interface symmetry.
func (m *TwilioMessenger) Send(_ context.Context, to, from, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := m.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}
