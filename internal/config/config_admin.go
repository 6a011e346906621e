package config

import (
	"fmt"
	"time"
)

// AdminAdapter holds network settings used by the admin console transport
// layer.
type AdminAdapter struct {
	// ServerURL is the portal server base URL the console talks to.
	ServerURL string
	// RequestTimeout is the default timeout for outbound console requests.
	RequestTimeout time.Duration
}

// AdminConfig is the admin-console configuration view assembled from
// [StructuredConfig].
type AdminConfig struct {
	// Adapter contains console transport addresses and timeouts.
	Adapter AdminAdapter
}

// GetAdminConfig builds and validates an admin-console config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the console runtime, and validates the resulting [AdminConfig].
func GetAdminConfig() (*AdminConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	adminCfg := &AdminConfig{
		Adapter: AdminAdapter{
			ServerURL:      cfg.Admin.ServerURL,
			RequestTimeout: cfg.Admin.RequestTimeout,
		},
	}

	return adminCfg, adminCfg.validate()
}
