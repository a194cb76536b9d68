package main

// @title           LocalLibrary Catalog API
// @version         1.0
// @description     JSON API for the LocalLibrary catalog of authors, genres, books and book instances.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/config"
	"github.com/snnyvrz/locallibrary/internal/db"
	docs "github.com/snnyvrz/locallibrary/internal/docs"
	"github.com/snnyvrz/locallibrary/internal/handler"
	"github.com/snnyvrz/locallibrary/internal/logging"
	"github.com/snnyvrz/locallibrary/internal/metrics"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Init("info", true)
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	m := metrics.New()
	svc := catalog.NewService(repository.NewGormStore(database))

	e := gin.New()
	e.Use(logging.RequestID(), logging.Logger(), logging.Recovery(), m.Middleware())
	e.SetHTMLTemplate(tmpl)

	if err := e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	}); err != nil {
		log.Fatal().Err(err).Msg("invalid trusted proxies")
	}

	docs.SwaggerInfo.BasePath = "/api"

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		handler.NewAuthorHandler(svc, m).RegisterRoutes(api)
		handler.NewGenreHandler(svc, m).RegisterRoutes(api)
		handler.NewBookHandler(svc, m).RegisterRoutes(api)
		handler.NewBookInstanceHandler(svc, m).RegisterRoutes(api)
		handler.NewOverviewHandler(svc, m).RegisterRoutes(api)
	}

	handler.NewPageHandler(svc, m).RegisterRoutes(e.Group("/catalog"))

	e.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog/")
	})
	e.GET("/metrics", m.Handler())
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("version", appVersion).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
