// internal/workers/profile/profile-publish-directory/config.go
package profilepublishdirectory

import "time"

type Config struct {
	Timeout time.Duration
	// MinOverall is the completion a profile needs before it is listed.
	// Profiles below it are removed from the directory instead.
	MinOverall int
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
