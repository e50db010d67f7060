package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide settings, fixed at startup.
// The Crowdin and handover values are opaque and not validated here;
// a bad value surfaces as a failing outbound call.
type Config struct {
	CrowdinOAuthHost    string `env:"CROWDIN_OAUTH_HOST"`
	CrowdinAPIHost      string `env:"CROWDIN_API_HOST"`
	RedirectURI         string `env:"REDIRECT_URI"`
	RedirectURIHandover string `env:"REDIRECT_URI_HANDOVER"`
	HandoverURI         string `env:"HANDOVER_URI"`
	ClientID            string `env:"CLIENT_ID"`
	ClientSecret        string `env:"CLIENT_SECRET"`
	PycordSupportAPIKey string `env:"PYCORD_SUPPORT_API_KEY"`

	CrowdinScopes []string `env:"CROWDIN_SCOPES" envDefault:"*" envSeparator:","`

	Port        string `env:"PORT" envDefault:"8080"`
	RoutePrefix string `env:"ROUTE_PREFIX" envDefault:"/crowdin"`
	AppName     string `env:"APP_NAME" envDefault:"Pycord Support"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env is fine in containers where the env is set directly
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
