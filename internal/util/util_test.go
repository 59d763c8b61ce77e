package util

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1718000000123)
	key := ObjectKey(now, "png")
	assert.Regexp(t, regexp.MustCompile(`^1718000000123-[0-9a-z]{7}\.png$`), key)
	assert.Regexp(t, regexp.MustCompile(`^1718000000123-[0-9a-z]{7}$`), ObjectKey(now, ""))
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
}

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := DefaultRetryPolicy()
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 30 * time.Second, 30 * time.Second}
	for attempt, expected := range want {
		assert.Equal(t, expected, p.Delay(attempt), "attempt %d", attempt)
	}
}

func TestRetry_StopsAfterMaxRetries(t *testing.T) {
	t.Parallel()

	p := RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}
	calls := 0
	var delays []time.Duration

	_, err := Retry(context.Background(), p, func() (int, error) {
		calls++

		return 0, errors.New("boom")
	}, func(_ error, d time.Duration) { delays = append(delays, d) })

	require.Error(t, err)
	assert.Equal(t, 4, calls, "one attempt plus three retries")
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, delays)
}

func TestRetry_SucceedsAndHonoursPermanent(t *testing.T) {
	t.Parallel()

	p := RetryPolicy{MaxRetries: 5, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	got, err := Retry(context.Background(), p, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}

		return "ok", nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	denied := errors.New("denied")
	calls = 0
	_, err = Retry(context.Background(), p, func() (string, error) {
		calls++

		return "", Permanent(denied)
	}, nil)
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, 1, calls)
}
