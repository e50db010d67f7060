package controllers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/aitsys/crowdin-handover/config"
	"github.com/aitsys/crowdin-handover/services"
)

// writeText writes a plaintext body with the given status code.
// The body is sent as is, without the trailing newline http.Error adds.
func writeText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_, _ = io.WriteString(w, body)
}

// NotFound answers any unrouted path
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, "Not Found")
}

// Controllers holds all controller instances
type Controllers struct {
	Auth *AuthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, cfg *config.Config, log *zap.Logger) *Controllers {
	return &Controllers{
		Auth: NewAuthController(services.CrowdinSync, cfg, log),
	}
}
