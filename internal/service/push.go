package service

import (
	"context"
	"fmt"

	"ptoshare-backend/internal/logger"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MessageSender is the subset of the FCM client used to deliver push messages.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type pushService struct {
	client MessageSender
}

// NewPushService connects to Firebase Cloud Messaging. An empty project ID
// disables push delivery.
func NewPushService(ctx context.Context, projectID, credentialsFile string) (PushService, error) {
	if projectID == "" {
		logger.Warn("Firebase not configured, push notifications disabled")
		return noopPushService{}, nil
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging: %w", err)
	}
	return NewPushServiceWithClient(client), nil
}

func NewPushServiceWithClient(client MessageSender) PushService {
	return &pushService{client: client}
}

// UserTopic is the FCM topic a user's devices subscribe to.
func UserTopic(userID int32) string {
	return fmt.Sprintf("user-%d", userID)
}

func (s *pushService) NotifyUser(ctx context.Context, userID int32, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Topic: UserTopic(userID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	logger.ExternalServiceCall("FCM", "Send", "topic", msg.Topic)
	id, err := s.client.Send(ctx, msg)
	logger.ExternalServiceResult("FCM", "Send", err, "messageID", id)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}

type noopPushService struct{}

func (noopPushService) NotifyUser(ctx context.Context, userID int32, title, body string, data map[string]string) error {
	return nil
}
