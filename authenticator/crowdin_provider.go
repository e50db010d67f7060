package authenticator

import (
	"context"
	"strings"

	"golang.org/x/oauth2"
)

// CrowdinProvider implements the Provider interface for Crowdin OAuth apps
type CrowdinProvider struct {
	config oauth2.Config
}

// NewCrowdinProvider creates a Crowdin provider.
// ProviderURL is the OAuth host; /authorize and /token are appended to it.
func NewCrowdinProvider(cfg Config) *CrowdinProvider {
	host := strings.TrimRight(cfg.ProviderURL, "/")

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"*"}
	}

	return &CrowdinProvider{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  host + "/authorize",
				TokenURL: host + "/token",
				// Crowdin expects the client credentials in the form body
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: scopes,
		},
	}
}

// configFor returns a copy of the OAuth config bound to one redirect URI
func (p *CrowdinProvider) configFor(redirectURI string) *oauth2.Config {
	conf := p.config
	conf.RedirectURL = redirectURI
	return &conf
}

// GetAuthURL returns the authorization URL for the given redirect URI.
// No state parameter is sent.
func (p *CrowdinProvider) GetAuthURL(redirectURI string) string {
	return p.configFor(redirectURI).AuthCodeURL("")
}

// ExchangeCode exchanges an authorization code for tokens
func (p *CrowdinProvider) ExchangeCode(ctx context.Context, code string, redirectURI string) (*Token, error) {
	oauth2Token, err := p.configFor(redirectURI).Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	return &Token{AccessToken: oauth2Token.AccessToken}, nil
}
