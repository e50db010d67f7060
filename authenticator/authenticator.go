package authenticator

import (
	"context"
)

// Config holds OAuth provider configuration
type Config struct {
	ProviderURL  string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Token represents an authentication token. It lives for one request
// and is never refreshed.
type Token struct {
	AccessToken string
}

// Provider interface abstracts OAuth provider operations.
// The redirect URI is passed per call because one client is registered
// with several callback URIs and the exchange must echo the one used to log in.
type Provider interface {
	GetAuthURL(redirectURI string) string
	ExchangeCode(ctx context.Context, code string, redirectURI string) (*Token, error)
}
