package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultWorkerPort         = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env" validate:"required"`
		ServiceName string `json:"serviceName" yaml:"serviceName" validate:"required"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port" validate:"min=1,max=65535"`
		EnableH2C          bool     `json:"enableH2C" yaml:"enableH2C"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker is the notifier's push endpoint.
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"-"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	ChangeFeed *ChangeFeedConfig `json:"changeFeed" yaml:"changeFeed"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig points golang-migrate at the schema files.
type MigrationConfig struct {
	DatabaseURL string `json:"databaseUrl" yaml:"databaseUrl"`
	Path        string `json:"path" yaml:"path"`
}

type GoogleOAuthConfig struct {
	// ClientID is the audience expected on Google ID tokens.
	ClientID string `json:"clientId" yaml:"clientId"`
}

type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	AccessTokenTTL    time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	MaxAddresses      int           `json:"maxAddresses" yaml:"maxAddresses"`
}

type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr" validate:"required"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// StorageConfig selects where uploaded images go.
type StorageConfig struct {
	// Provider is "s3" (AWS or MinIO through aws-sdk-go-v2) or "blob" (a gocloud.dev bucket URL).
	Provider      string   `json:"provider" yaml:"provider" validate:"oneof=s3 blob"`
	Bucket        string   `json:"bucket" yaml:"bucket"`
	BlobURL       string   `json:"blobUrl" yaml:"blobUrl"`
	PublicBaseURL string   `json:"publicBaseUrl" yaml:"publicBaseUrl" validate:"required"`
	MaxUploadSize string   `json:"maxUploadSize" yaml:"maxUploadSize"`
	S3            S3Config `json:"s3" yaml:"s3"`
}

type S3Config struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	UsePathStyle    bool   `json:"usePathStyle" yaml:"usePathStyle"`
}

type PubSubConfig struct {
	// Provider is "local" (HTTP push to the worker), "google" or "noop".
	Provider      string `json:"provider" yaml:"provider" validate:"oneof=local google noop"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is the storefront origin; tracking links are <BaseURL>/order-confirmation/<id>.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// CheckoutConfig holds pricing rules applied to carts and orders.
type CheckoutConfig struct {
	FreeDeliveryThreshold decimal.Decimal `json:"freeDeliveryThreshold" yaml:"freeDeliveryThreshold"`
	DeliveryFee           decimal.Decimal `json:"deliveryFee" yaml:"deliveryFee"`
	CartTTL               time.Duration   `json:"cartTtl" yaml:"cartTtl"`
	MaxQuantityPerItem    int             `json:"maxQuantityPerItem" yaml:"maxQuantityPerItem"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// ChangeFeedConfig controls realtime streams.
type ChangeFeedConfig struct {
	// Transport is "memory" for a single replica or "redis" to bridge replicas.
	Transport                 string        `json:"transport" yaml:"transport" validate:"oneof=memory redis"`
	Channel                   string        `json:"channel" yaml:"channel"`
	BufferSize                int           `json:"bufferSize" yaml:"bufferSize"`
	OrdersPollInterval        time.Duration `json:"ordersPollInterval" yaml:"ordersPollInterval"`
	CustomizationPollInterval time.Duration `json:"customizationPollInterval" yaml:"customizationPollInterval"`
	NotificationsPollInterval time.Duration `json:"notificationsPollInterval" yaml:"notificationsPollInterval"`
	RetryMaxRetries           int           `json:"retryMaxRetries" yaml:"retryMaxRetries"`
	RetryInitialDelay         time.Duration `json:"retryInitialDelay" yaml:"retryInitialDelay"`
	RetryMaxDelay             time.Duration `json:"retryMaxDelay" yaml:"retryMaxDelay"`
}

type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads <currEnv>.yaml from the first search path that has it,
// then overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// CHECKOUT_FREEDELIVERYTHRESHOLD -> checkout.freeDeliveryThreshold
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				decimalHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// applyDefaults fills optional sections so callers never see nil pointers.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if cfg.Auth.MaxAddresses == 0 {
		cfg.Auth.MaxAddresses = 10
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.FreeDeliveryThreshold.IsZero() {
		cfg.Checkout.FreeDeliveryThreshold = decimal.NewFromInt(999)
	}
	if cfg.Checkout.DeliveryFee.IsZero() {
		cfg.Checkout.DeliveryFee = decimal.NewFromInt(99)
	}
	if cfg.Checkout.CartTTL == 0 {
		cfg.Checkout.CartTTL = 30 * 24 * time.Hour
	}
	if cfg.Checkout.MaxQuantityPerItem == 0 {
		cfg.Checkout.MaxQuantityPerItem = 99
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.CacheTTL == 0 {
		cfg.Catalog.CacheTTL = 5 * time.Minute
	}

	if cfg.ChangeFeed == nil {
		cfg.ChangeFeed = &ChangeFeedConfig{Transport: "memory"}
	}
	cfg.ChangeFeed.applyDefaults()

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func (c *ChangeFeedConfig) applyDefaults() {
	if c.Transport == "" {
		c.Transport = "memory"
	}
	if c.Channel == "" {
		c.Channel = "storefront:changes"
	}
	if c.BufferSize == 0 {
		c.BufferSize = 64
	}
	if c.OrdersPollInterval == 0 {
		c.OrdersPollInterval = 5 * time.Second
	}
	if c.CustomizationPollInterval == 0 {
		c.CustomizationPollInterval = 2 * time.Second
	}
	if c.NotificationsPollInterval == 0 {
		c.NotificationsPollInterval = 5 * time.Second
	}
	if c.RetryMaxRetries == 0 {
		c.RetryMaxRetries = 5
	}
	if c.RetryInitialDelay == 0 {
		c.RetryInitialDelay = time.Second
	}
	if c.RetryMaxDelay == 0 {
		c.RetryMaxDelay = 30 * time.Second
	}
}

// decimalHookFunc lets money settings be written as numbers or strings in yaml and env.
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(decimal.Decimal{})

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != target {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return decimal.Zero, nil
			}

			return decimal.NewFromString(strings.TrimSpace(v))
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case uint64:
			return decimal.NewFromUint64(v), nil
		default:
			return data, nil
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host and port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
