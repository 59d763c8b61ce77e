package service

import "context"

// PushNotifier delivers push notifications to device tokens.
type PushNotifier interface {
	// SendBatchNotification returns per-batch counts and the tokens the push
	// service reported as invalid or unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
