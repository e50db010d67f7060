package services

//go:generate mockery

import (
	"context"

	"github.com/aitsys/crowdin-handover/authenticator"
	"github.com/aitsys/crowdin-handover/models"
)

// ProfileAPI is the part of the Crowdin GraphQL client the services use
type ProfileAPI interface {
	FetchViewer(ctx context.Context, accessToken string) (*models.CrowdinUser, error)
	FetchTranslationCount(ctx context.Context, accessToken string, userID int64) (int, error)
}

// Notifier delivers handover payloads downstream
type Notifier interface {
	Handover(ctx context.Context, payload models.HandoverPayload) error
}

// Services holds all service instances
type Services struct {
	CrowdinSync CrowdinSyncService
}

// NewServices creates and initializes all service instances
func NewServices(provider authenticator.Provider, api ProfileAPI, notifier Notifier) *Services {
	return &Services{
		CrowdinSync: NewCrowdinSyncService(provider, api, notifier),
	}
}
