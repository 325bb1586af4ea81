package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"investpro/internal/auth"
	"investpro/internal/cache"
	"investpro/internal/config"
	"investpro/internal/db"
	"investpro/internal/handler"
	"investpro/internal/model"
	"investpro/internal/repository"
	"investpro/internal/router"
	"investpro/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Address{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Address{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	cacheClient := cache.NewWithClient(rdb)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	translationRepo := repository.NewTranslationRepository(rdb)

	// Load bundled translations on first start; a missing redis only
	// degrades the i18n endpoints, not the whole process.
	seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := translationRepo.SeedDefaults(seedCtx); err != nil {
		log.Printf("Warning: seed default translations: %v", err)
	}
	cancel()

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, jwtService)
	accountService := service.NewAccountService(userRepo)
	translationService := service.NewTranslationService(translationRepo)
	exchangeService := service.NewExchangeRateService(cfg.ExchangeRateURL, cacheClient, cfg.ExchangeTTL)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(gormDB, cfg.Environment)
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	i18nHandler := handler.NewI18nHandler(translationService)
	exchangeHandler := handler.NewExchangeHandler(exchangeService)

	// Register routes
	router.Register(
		e,
		cfg,
		healthHandler,
		authHandler,
		accountHandler,
		i18nHandler,
		exchangeHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
