// internal/workers/profile/profile-create/config.go
package profilecreate

import (
	"time"

	"exhibitor-profile/internal/models"
)

type Config struct {
	Timeout time.Duration
	// Catalog the new profile is built from.
	Catalog models.Catalog
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Catalog: models.DefaultCatalog(),
	}
}
