package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	router "github.com/lingualive/coordinator/internal/adapters/http"
	"github.com/lingualive/coordinator/internal/app"
	"github.com/lingualive/coordinator/internal/app/orch"
	"github.com/lingualive/coordinator/internal/config"
	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/storage/archive"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("CONFIG_ENV") == "dev" || os.Getenv("CONFIG_ENV") == "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var store core.Archive = archive.Noop{}
	if cfg.RedisAddr != "" {
		redisStore, err := archive.NewRedis(cfg.RedisAddr)
		if err != nil {
			log.Error().Err(err).Msg("redis archive unavailable, continuing without persistence")
		} else {
			defer redisStore.Close()
			store = redisStore
		}
	}

	o := &orch.Orchestrator{
		Registry: app.NewRegistry(),
		Rooms:    app.NewRoomManager(),
		Policy:   app.SimplePolicy{},
		Archive:  store,
	}

	sweeper := &app.Sweeper{
		Rooms:    o.Rooms,
		Interval: cfg.SweepInterval,
		IdleTTL:  cfg.RoomIdleTTL,
	}

	r := router.SetupRouter(ctx, cfg, o)
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("coordinator started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := sweeper.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server error")
	}
	log.Info().Msg("server exited gracefully")
}
