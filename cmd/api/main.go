package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gojobs/board/internal/auth"
	"github.com/gojobs/board/internal/cache"
	"github.com/gojobs/board/internal/captcha"
	"github.com/gojobs/board/internal/config"
	"github.com/gojobs/board/internal/database"
	"github.com/gojobs/board/internal/handlers"
	"github.com/gojobs/board/internal/logging"
	"github.com/gojobs/board/internal/repositories"
	"github.com/gojobs/board/internal/services"
)

func main() {
	ctx := context.Background()
	log := logging.NewDefault()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Info(ctx, "no .env file loaded")
	}
	cfg := config.Load()

	db, err := database.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "database setup failed", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "database connection established")

	var listingCache *cache.Cache
	if cfg.RedisURL != "" {
		listingCache, err = cache.New(cfg.RedisURL, cfg.ListingCacheTTL)
		if err != nil {
			log.Warn(ctx, "listing cache disabled", "error", err)
		} else {
			defer listingCache.Close()
		}
	}

	verifier := captcha.NewHTTPVerifier(cfg.CaptchaEndpoint, cfg.CaptchaSecret, cfg.CaptchaTimeout, log)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	jobService := services.NewJobService(jobRepo, verifier, listingCache, log)
	applicationService := services.NewApplicationService(appRepo, jobRepo, log)
	contactService := services.NewContactService(contactRepo, verifier, log)
	profileService := services.NewProfileService(userRepo, profileRepo, tokens, log)

	jobHandler := handlers.NewJobHandler(jobService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	contactHandler := handlers.NewContactHandler(contactService)
	profileHandler := handlers.NewProfileHandler(profileService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.List)
		api.POST("/jobs", jobHandler.Create)
		api.GET("/job/:id", auth.OptionalAuth(tokens), jobHandler.Detail)
		api.POST("/job/:id/apply", auth.RequireAuth(tokens), applicationHandler.Apply)
		api.GET("/premium", jobHandler.Premium)
		api.GET("/summary", jobHandler.Summary)

		api.POST("/contact", contactHandler.Submit)

		api.POST("/signup", profileHandler.Register)
		api.POST("/login", profileHandler.Login)

		me := api.Group("/me", auth.RequireAuth(tokens))
		me.PUT("/profile", profileHandler.UpdateProfile)
		me.PUT("/password", profileHandler.ChangePassword)
	}

	log.Info(ctx, "server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Error(ctx, "server failed", "error", err)
		os.Exit(1)
	}
}
