package main

import (
	"crypto/rsa"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/logger"
	"backend/routes"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	configs.ConnectionDB(cfg)
	configs.SetupDatabase()
	if err := configs.SeedLookups(); err != nil {
		logger.Log.Fatal("seed lookups", zap.Error(err))
	}
	if err := configs.SeedAdmin(); err != nil {
		logger.Log.Fatal("seed admin", zap.Error(err))
	}
	configs.ConnectRedis(cfg)

	// Wallet signing material is optional: without it the wallet endpoints
	// answer 422 wallet_not_configured and everything else works.
	var appleSigner services.ManifestSigner
	if cfg.AppleCertPath != "" && cfg.AppleKeyPath != "" {
		signer, err := services.LoadPKCS7Signer(cfg.AppleCertPath, cfg.AppleKeyPath)
		if err != nil {
			logger.Log.Fatal("load apple pass signer", zap.Error(err))
		}
		appleSigner = signer
	}
	var googleKey *rsa.PrivateKey
	if cfg.GoogleSAKeyPath != "" {
		key, err := services.LoadRSAKey(cfg.GoogleSAKeyPath)
		if err != nil {
			logger.Log.Fatal("load google wallet key", zap.Error(err))
		}
		googleKey = key
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RateLimit(50, 100))

	deps := routes.BuildDeps(cfg, configs.DB(), ws.NewHub(), appleSigner, googleKey)
	routes.RegisterRoutes(r, deps)

	logger.Log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
