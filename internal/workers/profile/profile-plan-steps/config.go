// internal/workers/profile/profile-plan-steps/config.go
package profileplansteps

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
