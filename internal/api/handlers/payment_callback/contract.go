package payment_callback

import (
	"context"
	"net/url"
)

type ReconcilerService interface {
	HandleCallback(ctx context.Context, params url.Values) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
