package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// DictionaryTTL expires the stored word list; zero keeps it indefinitely
	DictionaryTTL time.Duration

	// BatchSize is the number of words sent per SADD command
	BatchSize int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:           "redis://localhost:6379",
		PoolSize:      10,
		MinIdleConns:  2,
		DictionaryTTL: 0,
		BatchSize:     10000,
	}
}
