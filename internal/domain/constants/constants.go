// Package constants holds string identifiers shared between config and wiring.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event transport providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Object storage providers.
const (
	StorageProviderS3   = "s3"
	StorageProviderBlob = "blob"
)

// Change feed transports.
const (
	ChangeFeedTransportMemory = "memory"
	ChangeFeedTransportRedis  = "redis"
)

// StorageBucketProductImages is the logical bucket for catalog images.
const StorageBucketProductImages = "product-images"
