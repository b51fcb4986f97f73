// JobHive API server entry point.
//
//	@title			JobHive API
//	@version		1.0
//	@description	Job board backend: authentication, postings, applications and moderation.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobhive/backend/internal/api"
	"github.com/jobhive/backend/internal/auth"
	"github.com/jobhive/backend/internal/infrastructure/db/mongo"
	"github.com/jobhive/backend/internal/infrastructure/db/redis"
	"github.com/jobhive/backend/internal/infrastructure/mail"
	"github.com/jobhive/backend/internal/infrastructure/queue"
	"github.com/jobhive/backend/internal/infrastructure/storage"
	"github.com/jobhive/backend/internal/pkg/config"
	"github.com/jobhive/backend/internal/seed"
	"github.com/jobhive/backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	codec, err := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec setup failed")
	}
	hasher := auth.NewHasher()

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	appRepo := mongo.NewApplicationRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := appRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("application index creation failed")
	}

	// --- Redis ---
	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	// --- Uploads, mail, notifications ---
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage setup failed")
	}

	mailer := mail.NewSMTPMailer(mail.Config{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		From: cfg.SMTP.From,
	}, log)
	dispatcher := queue.NewDispatcher(mailer, cfg.MailWorkers, log)
	dispatcher.Start(ctx)

	if cfg.SeedData {
		jobRepo := mongo.NewJobRepository(db)
		if err := seed.Run(ctx, userRepo, jobRepo, appRepo, hasher, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	e := api.NewRouter(api.Deps{
		DB:         db,
		Redis:      redisClient,
		Codec:      codec,
		Hasher:     hasher,
		Throttle:   redis.NewLoginThrottle(redisClient, log),
		Dispatcher: dispatcher,
		Store:      store,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	dispatcher.Wait()
	log.Info().Msg("server stopped")
}
