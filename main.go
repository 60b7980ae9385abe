package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/config"
	"github.com/yeremiapane/restaurant-ai/database"
	"github.com/yeremiapane/restaurant-ai/router"
	"github.com/yeremiapane/restaurant-ai/services"
	"github.com/yeremiapane/restaurant-ai/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)
	cfg.LogSummary()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(ctx, cfg.Database)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	seed, err := cfg.SeedData()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid seed data: %v", err)
	}

	// nothing is served until schema and seed data are in place
	if err := database.InitializeDatabase(ctx, db, seed); err != nil {
		utils.ErrorLogger.Fatalf("Database initialization failed: %v", err)
	}

	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		LoginAttempts:  cfg.Server.LoginAttempts,
	}
	if cfg.Session.JWTSecret != "" {
		signer, err := utils.NewTokenSigner(cfg.Session.JWTSecret, cfg.Session.TTL)
		if err != nil {
			utils.ErrorLogger.Fatalf("Invalid session settings: %v", err)
		}
		opts.Sessions = services.NewSessionService(db, signer)
		opts.OTP = services.NewOTPService(db, cfg.Session.OTPTTL)
	} else {
		utils.InfoLogger.Warn("JWT_SECRET not set, /auth and /admin routes are disabled")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.SetupRouter(db, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			utils.ErrorLogger.Errorf("Server shutdown: %v", err)
		}
	}()

	utils.InfoLogger.Printf("Listening on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.ErrorLogger.Fatal(err)
	}
	utils.InfoLogger.Println("Server stopped")
}
