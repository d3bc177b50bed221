package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/hbnb/internal/config"
	"github.com/kailas-cloud/hbnb/internal/db"
	"github.com/kailas-cloud/hbnb/internal/db/memory"
	dbRedis "github.com/kailas-cloud/hbnb/internal/db/redis"
	"github.com/kailas-cloud/hbnb/internal/domain"
	logpkg "github.com/kailas-cloud/hbnb/internal/logger"
	"github.com/kailas-cloud/hbnb/internal/metrics"
	"github.com/kailas-cloud/hbnb/internal/repository/entity"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
	"github.com/kailas-cloud/hbnb/internal/repository/relation"
	chiTransport "github.com/kailas-cloud/hbnb/internal/transport/chi"
	amenityuc "github.com/kailas-cloud/hbnb/internal/usecase/amenity"
	"github.com/kailas-cloud/hbnb/internal/usecase/cascade"
	cityuc "github.com/kailas-cloud/hbnb/internal/usecase/city"
	healthuc "github.com/kailas-cloud/hbnb/internal/usecase/health"
	placeuc "github.com/kailas-cloud/hbnb/internal/usecase/place"
	reviewuc "github.com/kailas-cloud/hbnb/internal/usecase/review"
	searchuc "github.com/kailas-cloud/hbnb/internal/usecase/search"
	stateuc "github.com/kailas-cloud/hbnb/internal/usecase/state"
	statsuc "github.com/kailas-cloud/hbnb/internal/usecase/stats"
	useruc "github.com/kailas-cloud/hbnb/internal/usecase/user"
	"github.com/kailas-cloud/hbnb/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting hbnb API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := openStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Registered explicitly, not from init().
	metrics.RegisterSearchMetrics()

	server := chiTransport.NewServer(buildServices(store, cfg, logger), logger).
		WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes)
	handler := chiTransport.NewRouter(server, chiTransport.RouterOptions{
		APIKeys:   cfg.Auth.APIKeys,
		RateLimit: cfg.HTTP.RateLimit,
		RateBurst: cfg.HTTP.RateBurst,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore picks the storage backend. Valkey and Redis share the rueidis store.
func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("%s store: %w", cfg.Driver, err)
		}
		return s, nil
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// buildServices is the composition root: store -> repositories -> use cases.
func buildServices(store db.Store, cfg config.Config, logger *zap.Logger) chiTransport.Services {
	keys := keyspace.New(cfg.Storage.KeyPrefix)
	repos := entity.NewSet(store, keys)
	rels := relation.New(store, keys)

	deleter := cascade.New(
		repos.States, repos.Cities, repos.Places, repos.Amenities, repos.Users, repos.Reviews, rels,
	)

	return chiTransport.Services{
		States:    stateuc.New(repos.States, deleter),
		Cities:    cityuc.New(repos.Cities, repos.States, rels, deleter),
		Amenities: amenityuc.New(repos.Amenities, deleter),
		Users:     useruc.New(repos.Users, deleter).WithHashCost(cfg.Users.BcryptCost),
		Places:    placeuc.New(repos.Places, repos.Cities, repos.Users, repos.Amenities, rels, deleter),
		Reviews:   reviewuc.New(repos.Reviews, repos.Places, repos.Users, rels, deleter),
		Search: searchuc.NewInstrumentedSearcher(
			searchuc.New(repos.Places, repos.States, repos.Cities, rels), logger),
		Stats: statsuc.New(map[domain.Kind]statsuc.Counter{
			domain.KindAmenity: repos.Amenities,
			domain.KindCity:    repos.Cities,
			domain.KindPlace:   repos.Places,
			domain.KindReview:  repos.Reviews,
			domain.KindState:   repos.States,
			domain.KindUser:    repos.Users,
		}),
		Health: healthuc.New(store),
	}
}
