package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"checkout": map[string]any{
			"freeDeliveryThreshold": 999,
		},
		"changeFeed": map[string]any{
			"ordersPollInterval": "5s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CHECKOUT_FREEDELIVERYTHRESHOLD", want: "checkout.freeDeliveryThreshold"},
		{envKey: "CHANGEFEED_ORDERSPOLLINTERVAL", want: "changeFeed.ordersPollInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDecimalHookFunc(t *testing.T) {
	hook := decimalHookFunc()
	target := reflect.TypeOf(decimal.Decimal{})

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "999.50", want: "999.5"},
		{name: "int", in: 99, want: "99"},
		{name: "float", in: 12.25, want: "12.25"},
		{name: "blank", in: " ", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hook(reflect.TypeOf(tt.in), target, tt.in)
			if err != nil {
				t.Fatalf("hook(%v) returned error: %v", tt.in, err)
			}
			d, ok := got.(decimal.Decimal)
			if !ok {
				t.Fatalf("hook(%v) = %T, want decimal.Decimal", tt.in, got)
			}
			if d.String() != tt.want {
				t.Fatalf("hook(%v) = %s, want %s", tt.in, d.String(), tt.want)
			}
		})
	}

	if _, err := hook(reflect.TypeOf(""), target, "abc"); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestApplyDefaults_FillsCheckoutAndChangeFeed(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if !cfg.Checkout.FreeDeliveryThreshold.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("free delivery threshold = %s, want 999", cfg.Checkout.FreeDeliveryThreshold)
	}
	if !cfg.Checkout.DeliveryFee.Equal(decimal.NewFromInt(99)) {
		t.Fatalf("delivery fee = %s, want 99", cfg.Checkout.DeliveryFee)
	}
	if cfg.ChangeFeed.Transport != "memory" {
		t.Fatalf("transport = %q, want memory", cfg.ChangeFeed.Transport)
	}
	if cfg.ChangeFeed.RetryMaxRetries != 5 || cfg.ChangeFeed.RetryInitialDelay != time.Second || cfg.ChangeFeed.RetryMaxDelay != 30*time.Second {
		t.Fatalf("unexpected retry defaults: %+v", cfg.ChangeFeed)
	}
	if cfg.ChangeFeed.OrdersPollInterval != 5*time.Second || cfg.ChangeFeed.CustomizationPollInterval != 2*time.Second {
		t.Fatalf("unexpected poll defaults: %+v", cfg.ChangeFeed)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("max body = %q", cfg.HTTP.MaxRequestBodySize)
	}
}
