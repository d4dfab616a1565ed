// Package notification delivers trip reminder pushes over FCM.
package notification

import (
	"context"
	"fmt"

	"tembea/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	logger *zap.Logger
}

func NewDefaultNotificationService(logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{logger: logger}
}

// SendPush sends one push to a device token. When FCM is not configured
// the push is logged and dropped.
func (s *DefaultNotificationService) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if deviceToken == "" {
		return fmt.Errorf("missing device token")
	}
	if utils.FCMClient == nil {
		s.logger.Info("push delivery disabled, dropping notification",
			zap.String("title", title))
		return nil
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	s.logger.Info("push sent", zap.String("messageId", id), zap.String("title", title))
	return nil
}
