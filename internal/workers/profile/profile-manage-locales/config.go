// internal/workers/profile/profile-manage-locales/config.go
package profilemanagelocales

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
