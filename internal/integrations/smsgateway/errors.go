package smsgateway

import "errors"

var (
	// ErrEmptyRecipient возвращается, когда у получателя нет номера телефона
	ErrEmptyRecipient = errors.New("smsgateway: empty recipient phone")

	// ErrSendFailed возвращается при ошибке отправки сообщения
	ErrSendFailed = errors.New("smsgateway: failed to send message")
)
