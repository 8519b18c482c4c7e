package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/holidays/internal/server"
	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if err := run(log); err != nil {
		log.Error("exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(store, log, server.WithPayloadTTL(cfg.CacheTTL)).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	warmer := server.NewWarmer(store, cfg.WarmSchedule, cfg.WarmLocales, cfg.CacheTTL, log)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", slog.String("address", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return warmer.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("shutdown completed")
	return nil
}

// newStore picks the cache backend: Redis when REDIS_URL is set, in-process
// memory otherwise.
func newStore(ctx context.Context, cfg config, log *slog.Logger) (yearcache.Store, error) {
	if cfg.RedisURL == "" {
		log.Info("using in-memory payload cache")
		return yearcache.NewMemory(yearcache.WithDefaultTTL(cfg.CacheTTL)), nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Info("using redis payload cache")
	return yearcache.NewRedis(client, yearcache.WithRedisDefaultTTL(cfg.CacheTTL)), nil
}
