package games

import "time"

// Config holds configuration for the games feature.
type Config struct {
	// CacheTtlHours is how long a fetched ownership set stays fresh.
	CacheTtlHours int `mapstructure:"cache_ttl_hours" default:"24"`
}

// CacheTTL returns the ownership cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	hours := c.CacheTtlHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
