// Package sms sends registration texts through Twilio. Delivery is
// best effort: a failed send is logged and swallowed, and must never
// change the outcome of the request that triggered it.
package sms

import (
	"log"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender makes one delivery attempt. Implementations do not return an
// error; callers have nothing to do with one.
type Sender interface {
	Send(to, body string)
}

// Twilio sends through the Twilio Messaging API.
type Twilio struct {
	client *twilio.RestClient
	from   string
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Twilio{client: client, from: from}
}

func (t *Twilio) Send(to, body string) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(to)
	params.SetBody(body)

	msg, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Println("Error sending SMS:", err)
		return
	}
	if msg.Sid != nil {
		log.Println("SMS sent:", *msg.Sid)
	}
}

// Disabled is used when Twilio credentials are not configured.
type Disabled struct{}

func (Disabled) Send(to, _ string) {
	log.Println("SMS disabled; skipping message to", to)
}
