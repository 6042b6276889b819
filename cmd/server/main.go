package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dfryer1193/gallery/gallery/application"
	"github.com/dfryer1193/gallery/gallery/persistence"
	"github.com/dfryer1193/gallery/internal/config"
	"github.com/dfryer1193/gallery/internal/rest"
	"github.com/dfryer1193/gallery/shared/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 3 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	variants, err := cfg.Gallery.BuildVariants()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gallery configuration")
	}

	for _, v := range variants.Labels() {
		dir, _ := variants.Lookup(v)
		log.Info().Str("size", string(v)).Str("dir", dir).Msg("Serving size variant")
	}

	assetRepo := persistence.NewAssetRepository()
	catalogService := application.NewCatalogService(variants, assetRepo, cfg.Gallery.Extensions)
	assetService := application.NewAssetService(variants, assetRepo)

	gin.SetMode(cfg.Mode)
	r := rest.NewRouter(rest.NewImageHandler(catalogService, assetService))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Str("unknown_size_policy", string(variants.Policy())).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
