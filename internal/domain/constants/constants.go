// Package constants holds provider names accepted in configuration.
package constants

const (
	EnvLocal   = "local"
	EnvDevelop = "develop"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"

	StoreDriverFirestore = "firestore"
	StoreDriverMongo     = "mongo"
	StoreDriverMemory    = "memory"

	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)
