package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/draftphase/draftphase-api/internal/config"
	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/handlers"
	authmw "github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	matchService := services.NewMatchService(db)
	casterService := services.NewCasterService(db, cfg.CasterCacheTTL)
	streamService := services.NewStreamService(db)
	predictionService := services.NewPredictionService(db)
	pollService := services.NewPollService(db)
	sessionStore := services.NewSessionStore(cfg.DraftSessionTTL)
	defer sessionStore.Close()

	hub := sse.NewHub()
	go hub.Run()

	authHandler := handlers.NewAuthHandler(cfg, userService, tokenService, jwtService)
	userHandler := handlers.NewUserHandler(userService)
	matchHandler := handlers.NewMatchHandler(matchService, hub, cfg.MaxNumOffers, cfg.StreamDelay)
	catalogHandler := handlers.NewCatalogHandler()
	casterHandler := handlers.NewCasterHandler(casterService, streamService, matchService, hub)
	predictionHandler := handlers.NewPredictionHandler(predictionService, matchService, hub)
	pollHandler := handlers.NewPollHandler(pollService)
	sessionHandler := handlers.NewSessionHandler(sessionStore, matchService, hub)
	sseHandler := handlers.NewSSEHandler(hub, matchService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	// Catalog is static reference data, no auth needed.
	api.Get("/maps", catalogHandler.ListMaps)
	api.Get("/maps/:mapId", catalogHandler.GetMap)
	api.Get("/layouts", catalogHandler.ListLayouts)
	api.Get("/teams", catalogHandler.ListTeams)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/users/me", userHandler.GetMe)

	protected.Get("/matches", matchHandler.List)
	protected.Post("/matches", matchHandler.Create)
	protected.Get("/matches/:channelId", matchHandler.Get)
	protected.Delete("/matches/:channelId", matchHandler.Delete)
	protected.Patch("/matches/:channelId", matchHandler.Update)
	protected.Put("/matches/:channelId/score", matchHandler.SetScore)
	protected.Post("/matches/:channelId/commands", matchHandler.Command)

	protected.Get("/matches/:channelId/session", sessionHandler.Get)
	protected.Patch("/matches/:channelId/session", sessionHandler.Update)
	protected.Post("/matches/:channelId/session/submit", sessionHandler.Submit)
	protected.Delete("/matches/:channelId/session", sessionHandler.Clear)

	protected.Get("/casters", casterHandler.List)
	protected.Post("/casters", casterHandler.Register)
	protected.Delete("/casters/me", casterHandler.Unregister)
	protected.Post("/matches/:channelId/streams", casterHandler.AddStream)
	protected.Delete("/matches/:channelId/streams", casterHandler.RemoveStream)

	protected.Put("/matches/:channelId/predictions", predictionHandler.Put)
	protected.Get("/matches/:channelId/predictions/distribution", predictionHandler.Distribution)
	protected.Get("/predictions/leaderboard", predictionHandler.Leaderboard)

	protected.Get("/polls", pollHandler.List)
	protected.Post("/polls", pollHandler.Create)
	protected.Get("/polls/:pollId", pollHandler.Get)
	protected.Post("/polls/:pollId/votes", pollHandler.Vote)
	protected.Post("/polls/:pollId/close", pollHandler.Close)

	protected.Get("/matches/:channelId/events", sseHandler.Connect)
	protected.Post("/sse/:clientId/subscribe/:channelId", sseHandler.Subscribe)
	protected.Post("/sse/:clientId/unsubscribe/:channelId", sseHandler.Unsubscribe)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
