package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxBatchSize is the FCM multicast limit.
const MaxBatchSize = 500

// multicastSender is the slice of *messaging.Client the service needs.
type multicastSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client  multicastSender
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewFirebaseService builds the FCM client from a service-account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, m *metrics.Metrics, logger *slog.Logger) (service.PushNotifier, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, m, logger), nil
}

func newFirebaseService(client multicastSender, m *metrics.Metrics, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:  client,
		metrics: m,
		logger:  logger,
	}
}

func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		s.metrics.PushResult(0, 1)

		return errors.Wrap(err, "failed to send notification")
	}
	s.metrics.PushResult(1, 0)

	return nil
}

// SendBatchNotification splits tokens into multicasts of MaxBatchSize. A
// failed multicast aborts the remaining batches.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(tokens))
		batch := tokens[start:end]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount
		s.metrics.PushResult(response.SuccessCount, response.FailureCount)

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, batch[idx])
			}
		}
	}

	if len(tokens) > 0 {
		s.logger.Debug("Push batch sent",
			slog.Int("tokens", len(tokens)),
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
			slog.Int("invalid", len(invalidTokens)),
		)
	}

	return successCount, failureCount, invalidTokens, nil
}

// logNotifier stands in when Firebase is not configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a PushNotifier that only logs.
func NewLogNotifier(logger *slog.Logger) service.PushNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendSingleNotification(_ context.Context, token, title, _ string, _ map[string]string) error {
	n.logger.Info("[LogPush] Would send notification", slog.String("title", title), slog.Int("tokens", 1))

	return nil
}

func (n *logNotifier) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	n.logger.Info("[LogPush] Would send notification", slog.String("title", title), slog.Int("tokens", len(tokens)))

	return len(tokens), 0, nil, nil
}
