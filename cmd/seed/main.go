package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"investpro/internal/auth"
	"investpro/internal/config"
	"investpro/internal/db"
	"investpro/internal/errors"
	"investpro/internal/model"
	"investpro/internal/repository"
	"investpro/internal/service"
)

// demoUsers are registered through the normal service path so their
// passwords hash and their addresses land in the same transaction as a real
// signup. All demo passwords are "123456".
var demoUsers = []service.RegisterInput{
	{
		Name:     "Joao Silva",
		Email:    "joao@investpro.dev",
		CPF:      "529.982.247-25",
		RG:       "12.345.678-9",
		Income:   "5.000,00",
		Password: "123456",
		Address: service.AddressInput{
			Street: "Rua das Flores, 123",
			CEP:    "01234-567",
			City:   "Sao Paulo",
			State:  "SP",
		},
	},
	{
		Name:     "Maria Souza",
		Phone:    "(21) 99876-5432",
		CPF:      "111.444.777-35",
		RG:       "9876543",
		Income:   "R$ 12.345,67",
		Password: "123456",
		Address: service.AddressInput{
			Street: "Avenida Atlantica, 456",
			CEP:    "22070-001",
			City:   "Rio de Janeiro",
			State:  "RJ",
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Address{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	translationRepo := repository.NewTranslationRepository(rdb)
	if err := translationRepo.SeedDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed translations: %v", err)
	}
	log.Println("Default translations seeded")

	userRepo := repository.NewUserRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, jwtService)

	created, skipped := 0, 0
	for _, in := range demoUsers {
		id, err := authService.Register(ctx, in)
		if err == errors.ErrUserAlreadyExists {
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed user %q: %v", in.Name, err)
		}
		log.Printf("Created demo user %q (%s)", in.Name, id)
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}
