package smsgateway

import (
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator отправляет сообщение через Twilio REST API
// Реализуется twilio.RestClient.Api
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
