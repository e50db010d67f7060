package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aitsys/crowdin-handover/authenticator"
	"github.com/aitsys/crowdin-handover/config"
	"github.com/aitsys/crowdin-handover/controllers"
	"github.com/aitsys/crowdin-handover/crowdin"
	"github.com/aitsys/crowdin-handover/logger"
	accesslog "github.com/aitsys/crowdin-handover/middleware"
	"github.com/aitsys/crowdin-handover/notifier"
	"github.com/aitsys/crowdin-handover/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("crowdin handover starting",
			zap.String("addr", srv.Addr),
			zap.String("prefix", cfg.RoutePrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newRouter wires the Crowdin clients, services and controllers into a router
func newRouter(cfg *config.Config, log *zap.Logger) *chi.Mux {
	provider := authenticator.NewCrowdinProvider(authenticator.Config{
		ProviderURL:  cfg.CrowdinOAuthHost,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       cfg.CrowdinScopes,
	})
	api := crowdin.NewClient(cfg.CrowdinAPIHost, nil)
	handover := notifier.NewClient(cfg.HandoverURI, cfg.PycordSupportAPIKey, nil)

	srvs := services.NewServices(provider, api, handover)
	ctrl := controllers.NewControllers(srvs, cfg, log)

	return setupRouter(ctrl, cfg.RoutePrefix, log)
}

// setupRouter configures all routes. Paths match exactly; anything else is a 404.
func setupRouter(ctrl *controllers.Controllers, prefix string, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accesslog.AccessLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // bounds the whole OAuth round trip

	r.NotFound(controllers.NotFound)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","service":"crowdin-handover"}`)
	})

	// Dispatch is by path only; the method is not checked
	r.HandleFunc(prefix+"/handover-login", ctrl.Auth.HandoverLogin)
	r.HandleFunc(prefix+"/login", ctrl.Auth.Login)
	r.HandleFunc(prefix+"/callback", ctrl.Auth.Callback)
	r.HandleFunc(prefix+"/handover", ctrl.Auth.Handover)

	return r
}
