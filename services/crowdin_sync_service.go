package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aitsys/crowdin-handover/authenticator"
	"github.com/aitsys/crowdin-handover/models"
)

var (
	// ErrMissingCode is returned when the callback carries no authorization code
	ErrMissingCode = errors.New("authorization code not found")

	// ErrTokenExchange wraps any failure of the code-for-token exchange
	ErrTokenExchange = errors.New("failed to fetch access token")

	// ErrProfileFetch wraps failures of the viewer and translation count queries
	ErrProfileFetch = errors.New("failed to fetch crowdin profile")

	// ErrHandover wraps failures of the downstream notifier call
	ErrHandover = errors.New("failed to hand over data")
)

// CrowdinSyncService interface defines the OAuth exchange and data relay logic
type CrowdinSyncService interface {
	AuthURL(redirectURI string) string
	Sync(ctx context.Context, code string, redirectURI string) (*models.SyncResult, error)
	Handover(ctx context.Context, result *models.SyncResult) error
}

// crowdinSyncService implements CrowdinSyncService interface
type crowdinSyncService struct {
	provider authenticator.Provider
	api      ProfileAPI
	notifier Notifier
}

// NewCrowdinSyncService creates a new crowdin sync service
func NewCrowdinSyncService(provider authenticator.Provider, api ProfileAPI, notifier Notifier) CrowdinSyncService {
	return &crowdinSyncService{
		provider: provider,
		api:      api,
		notifier: notifier,
	}
}

// AuthURL returns the provider login URL that comes back to redirectURI
func (s *crowdinSyncService) AuthURL(redirectURI string) string {
	return s.provider.GetAuthURL(redirectURI)
}

// Sync exchanges the code and fetches the viewer and their translation count.
// redirectURI must be the one the login step used. Steps run in order and
// the first failure ends the sync.
func (s *crowdinSyncService) Sync(ctx context.Context, code string, redirectURI string) (*models.SyncResult, error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	token, err := s.provider.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	user, err := s.api.FetchViewer(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: viewer: %w", ErrProfileFetch, err)
	}

	count, err := s.api.FetchTranslationCount(ctx, token.AccessToken, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: translations: %w", ErrProfileFetch, err)
	}

	return &models.SyncResult{
		User:             *user,
		TranslationCount: count,
	}, nil
}

// Handover relays a completed sync to the notifier
func (s *crowdinSyncService) Handover(ctx context.Context, result *models.SyncResult) error {
	if err := s.notifier.Handover(ctx, result.Payload()); err != nil {
		return fmt.Errorf("%w: %w", ErrHandover, err)
	}
	return nil
}
