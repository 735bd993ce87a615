package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for mail jobs
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNats   = "nats"
)

// Pub/Sub message attributes
const (
	AttributeRequestID = "request_id"
	AttributeTemplate  = "template"
)

// Cookie names
const (
	CookieAccessToken   = "access_token"
	CookieBankIDSession = "bankid_session"
)

// LocalLocationLabel is the location reported for loopback clients.
const LocalLocationLabel = "Local Development"

// UnknownDeviceValue is the device descriptor value for unparseable agent strings.
const UnknownDeviceValue = "Unknown"
