package smsgateway

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client клиент для отправки SMS через Twilio
type Client struct {
	api  MessageCreator
	from string
	log  Logger
}

// NewClient создает клиента Twilio по учетным данным аккаунта
func NewClient(accountSID, authToken, from string, log Logger) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewClientWithAPI(rest.Api, from, log)
}

// NewClientWithAPI создает клиента поверх произвольной реализации MessageCreator
func NewClientWithAPI(api MessageCreator, from string, log Logger) *Client {
	return &Client{
		api:  api,
		from: from,
		log:  log,
	}
}

// Send отправляет SMS на номер to и возвращает SID сообщения
func (c *Client) Send(to, body string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrEmptyRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		c.log.Error("SMS to %s failed: %v", to, err)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	c.log.Info("SMS sent to %s, sid=%s", to, sid)

	return sid, nil
}
