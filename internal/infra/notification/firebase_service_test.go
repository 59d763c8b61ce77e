package notification

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"storefront/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	batches [][]string
	fail    bool
	invalid map[string]error
}

func (f *fakeSender) Send(context.Context, *messaging.Message) (string, error) {
	if f.fail {
		return "", errors.New("fcm down")
	}

	return "msg-1", nil
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.fail {
		return nil, errors.New("fcm down")
	}
	f.batches = append(f.batches, message.Tokens)

	resp := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if err, ok := f.invalid[token]; ok {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true})
	}

	return resp, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendBatchNotification_SplitsIntoBatches(t *testing.T) {
	sender := &fakeSender{}
	svc := newFirebaseService(sender, nil, discardLogger())

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = "token-" + strconv.Itoa(i)
	}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 1201, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], MaxBatchSize)
	assert.Len(t, sender.batches[2], 201)
}

func TestSendBatchNotification_NoTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := newFirebaseService(sender, nil, discardLogger())

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	assert.Empty(t, sender.batches)
}

func TestSendBatchNotification_TransportError(t *testing.T) {
	svc := newFirebaseService(&fakeSender{fail: true}, nil, discardLogger())

	_, _, _, err := svc.SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)
	assert.Error(t, err)
}

func TestSendSingleNotification(t *testing.T) {
	require.NoError(t, newFirebaseService(&fakeSender{}, nil, discardLogger()).
		SendSingleNotification(context.Background(), "a", "t", "b", nil))
	assert.Error(t, newFirebaseService(&fakeSender{fail: true}, nil, discardLogger()).
		SendSingleNotification(context.Background(), "a", "t", "b", nil))
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(discardLogger())
	success, failure, invalid, err := n.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}
