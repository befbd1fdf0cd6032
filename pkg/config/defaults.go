package config

import "time"

const (
	DefaultPort     = "3001"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultGeocoderBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultGeocoderTimeout   = 10 * time.Second
	DefaultGeocodeCacheTTL   = 30 * 24 * time.Hour
	DefaultGeocoderUserAgent = "pvzadmin/1.0 (+https://localhost)"

	DefaultKafkaTopic = "pickup-point-events"
)
