package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"yieldboard/server/config"
	"yieldboard/server/internal/api"
	"yieldboard/server/internal/dataset"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	provider := dataset.NewProvider(cfg, logger)

	// Load both datasets before serving; nothing meaningful can be
	// computed without them.
	ctx := context.Background()
	if _, err := provider.Sales(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to load sales dataset")
	}
	if _, err := provider.Rentals(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to load rentals dataset")
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.CORSOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	}
	router.Use(cors.New(corsConfig))

	api.SetupRoutes(router, provider, cfg)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
