// internal/workers/profile/profile-toggle-not-relevant/config.go
package profiletogglenotrelevant

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
