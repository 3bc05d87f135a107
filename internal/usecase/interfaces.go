package usecase

import (
	"context"

	"github.com/bimafrica/quote-api/internal/infra/mail"
)

// NotificationSender dispatches a rendered message over the mail
// transport. Implementations may block; callers bound each call with a
// deadline and abandon it on timeout.
type NotificationSender interface {
	Send(ctx context.Context, msg mail.Message) error
}
