package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvGeocoderBaseURL   = "GEOCODER_BASE_URL"
	EnvGeocoderTimeout   = "GEOCODER_TIMEOUT"
	EnvGeocodeCacheTTL   = "GEOCODE_CACHE_TTL"
	EnvGeocoderUserAgent = "GEOCODER_USER_AGENT"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"
)
