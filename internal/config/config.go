// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full application configuration.
type Config struct {
	Addr        string        `env:"ADDR" envDefault:":8080"`
	DatabaseURL string        `env:"DATABASE_URL"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	OIDC OIDC
}

// OIDC configures the optional single-sign-on login. Disabled unless all
// endpoint settings are present.
type OIDC struct {
	Enabled      bool   `env:"OIDC_ENABLED" envDefault:"false"`
	IssuerURL    string `env:"OIDC_ISSUER_URL"`
	ClientID     string `env:"OIDC_CLIENT_ID"`
	ClientSecret string `env:"OIDC_CLIENT_SECRET"`
	RedirectURL  string `env:"OIDC_REDIRECT_URL"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if c.OIDC.Enabled && (c.OIDC.IssuerURL == "" || c.OIDC.ClientID == "" || c.OIDC.RedirectURL == "") {
		return nil, fmt.Errorf("OIDC_ENABLED requires OIDC_ISSUER_URL, OIDC_CLIENT_ID and OIDC_REDIRECT_URL")
	}
	return &c, nil
}
