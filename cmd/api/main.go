// @title           Account Service API
// @version         1.0
// @description     Credential and identity service for admins, technicians and users.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fixserve/account-service/internal/api"
	"github.com/fixserve/account-service/internal/infrastructure/bootstrap"
	mongostore "github.com/fixserve/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/fixserve/account-service/internal/infrastructure/db/redis"
	"github.com/fixserve/account-service/internal/pkg/config"
	"github.com/fixserve/account-service/internal/security"
	"github.com/fixserve/account-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	adminStore := mongostore.NewAdminStore(db)
	technicianStore := mongostore.NewTechnicianStore(db)
	userStore := mongostore.NewUserStore(db)
	for _, store := range []*mongostore.AccountRepository{adminStore, technicianStore, userStore} {
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	seeder := bootstrap.NewAdminSeeder(adminStore, security.NewBcryptHasher(), log)
	if err := seeder.Seed(ctx, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPhone, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
