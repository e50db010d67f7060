package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aitsys/crowdin-handover/config"
	"github.com/aitsys/crowdin-handover/models"
	"github.com/aitsys/crowdin-handover/services"
)

const (
	msgMissingCode      = "Authorization code not found."
	msgTokenFailed      = "Failed to fetch access token."
	msgProfileFailed    = "Failed to fetch Crowdin data."
	msgHandoverFailed   = "Failed to hand over data."
	msgHandoverComplete = "Data successfully handed over."
)

type AuthController struct {
	sync                services.CrowdinSyncService
	redirectURI         string
	redirectURIHandover string
	appName             string
	log                 *zap.Logger
}

func NewAuthController(sync services.CrowdinSyncService, cfg *config.Config, log *zap.Logger) *AuthController {
	return &AuthController{
		sync:                sync,
		redirectURI:         cfg.RedirectURI,
		redirectURIHandover: cfg.RedirectURIHandover,
		appName:             cfg.AppName,
		log:                 log,
	}
}

// Login redirects to the Crowdin consent page, coming back to the callback route
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, ac.sync.AuthURL(ac.redirectURI), http.StatusFound)
}

// HandoverLogin redirects to the Crowdin consent page, coming back to the handover route
func (ac *AuthController) HandoverLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, ac.sync.AuthURL(ac.redirectURIHandover), http.StatusFound)
}

// Callback handles the redirect from Crowdin after a plain login
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	result, ok := ac.runSync(w, r, ac.redirectURI)
	if !ok {
		return
	}

	writeText(w, http.StatusOK, result.Greeting(ac.appName))
}

// Handover handles the redirect from Crowdin after a handover login and
// relays the user and their translation count downstream
func (ac *AuthController) Handover(w http.ResponseWriter, r *http.Request) {
	result, ok := ac.runSync(w, r, ac.redirectURIHandover)
	if !ok {
		return
	}

	if err := ac.sync.Handover(r.Context(), result); err != nil {
		ac.logger(r).Error("handover failed",
			zap.String("username", result.User.Username),
			zap.Error(err))
		writeText(w, http.StatusInternalServerError, msgHandoverFailed)
		return
	}

	ac.logger(r).Info("handed over crowdin user",
		zap.String("username", result.User.Username),
		zap.Int("translations", result.TranslationCount))
	writeText(w, http.StatusOK, msgHandoverComplete)
}

// runSync exchanges the request's code and writes the failure response if any step fails
func (ac *AuthController) runSync(w http.ResponseWriter, r *http.Request, redirectURI string) (*models.SyncResult, bool) {
	result, err := ac.sync.Sync(r.Context(), r.URL.Query().Get("code"), redirectURI)
	if err == nil {
		return result, true
	}

	switch {
	case errors.Is(err, services.ErrMissingCode):
		writeText(w, http.StatusBadRequest, msgMissingCode)
	case errors.Is(err, services.ErrTokenExchange):
		ac.logger(r).Error("token exchange failed", zap.Error(err))
		writeText(w, http.StatusInternalServerError, msgTokenFailed)
	default:
		ac.logger(r).Error("crowdin profile fetch failed", zap.Error(err))
		writeText(w, http.StatusInternalServerError, msgProfileFailed)
	}
	return nil, false
}

// logger returns the controller logger tagged with the request id
func (ac *AuthController) logger(r *http.Request) *zap.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return ac.log.With(zap.String("request_id", id))
	}
	return ac.log
}
