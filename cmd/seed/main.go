// seed crea el usuario admin inicial y la fila de configuración de la tienda.
// Es idempotente: si ya existen, no toca nada.
//
// Uso: go run ./cmd/seed
// Variables: SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD (obligatoria la segunda en el primer arranque).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/infrastructure/postgres"
	"github.com/itsales/pos-api/pkg/config"
	"github.com/itsales/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Service: "pos-seed", Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("admin ya existe, sin cambios")
	} else {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			log.Fatal().Msg("SEED_ADMIN_PASSWORD requerido para crear el admin inicial")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			FirstName:    "Admin",
			LastName:     "Principal",
			Role:         entity.RoleAdmin,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("email", email).Msg("admin creado")
	}

	settingRepo := postgres.NewSettingRepository(pool)
	setting, err := settingRepo.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("consultar configuración")
	}
	if setting != nil {
		log.Info().Msg("configuración ya inicializada, sin cambios")
		return
	}
	setting = entity.DefaultSetting(cfg.App.Name)
	setting.UpdatedAt = time.Now()
	if err := settingRepo.Update(setting); err != nil {
		log.Fatal().Err(err).Msg("crear configuración")
	}
	log.Info().Msg("configuración inicial creada")
}
