package notification

import (
	"context"
	"time"

	"farmhub/utils"

	"go.uber.org/zap"
)

// Email is an outbound notification message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// NotificationService defines methods for sending counterparty notifications.
type NotificationService interface {
	Send(ctx context.Context, email Email) error
}

// Dispatch sends an email best-effort in the background. Delivery failure is
// logged and never affects the enclosing operation.
func Dispatch(svc NotificationService, email Email) {
	if svc == nil || email.To == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := svc.Send(ctx, email); err != nil {
			utils.GetLogger().Warn("Failed to send notification",
				zap.String("to", email.To),
				zap.String("subject", email.Subject),
				zap.Error(err))
		}
	}()
}
