package sign_out

import "context"

type SessionService interface {
	SignOut(ctx context.Context, accessToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
