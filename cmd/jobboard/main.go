// @title                       Job Board API
// @version                     1.0
// @description                 Hourly job board: companies post shifts, job seekers apply and save jobs.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shiftboard/jobboard-api/internal/api"
	"github.com/shiftboard/jobboard-api/internal/api/handler"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/core/service"
	"github.com/shiftboard/jobboard-api/internal/infrastructure/db/mongo"
	"github.com/shiftboard/jobboard-api/internal/infrastructure/db/redis"
	"github.com/shiftboard/jobboard-api/internal/pkg/config"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
	"github.com/shiftboard/jobboard-api/pkg/logger"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "jobboard-api"})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "jobboard-api",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	readiness := map[string]handler.DependencyCheck{
		"mongo": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
	}

	var guard ports.SubmissionGuard
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, submission guard disabled")
	} else {
		guard = redis.NewSubmissionGuard(rdb, cfg.Redis.GuardTTL)
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	companies := mongo.NewCompanyRepository(db)
	seekers := mongo.NewJobSeekerRepository(db)
	jobs := mongo.NewJobRepository(db)
	applications := mongo.NewApplicationRepository(db)
	saved := mongo.NewSavedJobRepository(db)

	v := validation.New()
	tokens := service.NewTokenService(cfg.JWTSecret, service.TokenTTL)
	accounts := service.NewAccountService(companies, seekers, jobs, applications, saved, v, logger.Component("accounts"))

	router := api.NewRouter(api.Deps{
		Auth:         service.NewAuthService(companies, seekers, tokens, v, logger.Component("auth")),
		Accounts:     accounts,
		Jobs:         service.NewJobService(jobs, companies, applications, saved, v, logger.Component("jobs")),
		Applications: service.NewApplicationService(applications, jobs, guard, v, logger.Component("applications")),
		SavedJobs:    service.NewSavedJobService(saved, jobs, logger.Component("saved_jobs")),
		Tokens:       tokens,
		Validator:    v,
		Readiness:    readiness,
		Logger:       logger.Component("http"),
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	closeRedis(rdb, log)
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
