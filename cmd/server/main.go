package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/bingeboard/config"
	"github.com/d60-Lab/bingeboard/internal/api"
	"github.com/d60-Lab/bingeboard/internal/api/handler"
	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/internal/service"
	"github.com/d60-Lab/bingeboard/pkg/database"
	"github.com/d60-Lab/bingeboard/pkg/logger"
	"github.com/d60-Lab/bingeboard/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Otel.Endpoint != "" {
		shutdown := must(tracing.Init(ctx, "bingeboard", cfg.Otel.Endpoint))
		defer func() { _ = shutdown(context.Background()) }()
	}

	// a dead database aborts startup, no retries
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	watchSvc := service.NewWatchService(
		repository.NewWatchRepository(db, model.TableWatched),
		repository.NewWatchRepository(db, model.TableWatching),
		repository.NewWatchRepository(db, model.TableWatchlist),
	)

	var tokens service.TokenStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		tokens = service.NewRedisTokenStore(client)
		logger.Info("sessions backed by redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		tokens = service.NewMemoryTokenStore()
	}

	authSvc := service.NewAuthService(userRepo, tokens, cfg.JWT.Secret, cfg.JWT.TTL)
	relSvc := service.NewRelationshipService(followRepo, userRepo)
	postSvc := service.NewPostService(postRepo, commentRepo, mediaRepo)

	h := handler.New(authSvc, relSvc, postSvc, watchSvc, userRepo, mediaRepo)
	router := api.NewRouter(h, authSvc, cfg.Server.Mode)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
