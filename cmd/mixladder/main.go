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

	"github.com/KirkDiggler/mixladder/internal/common/clock"
	"github.com/KirkDiggler/mixladder/internal/common/id"
	"github.com/KirkDiggler/mixladder/internal/config"
	"github.com/KirkDiggler/mixladder/internal/handlers/discord"
	"github.com/KirkDiggler/mixladder/internal/handlers/httpapi"
	"github.com/KirkDiggler/mixladder/internal/random"
	"github.com/KirkDiggler/mixladder/internal/repositories/lobby"
	"github.com/KirkDiggler/mixladder/internal/repositories/player"
	"github.com/KirkDiggler/mixladder/internal/repositories/round"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/KirkDiggler/mixladder/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mixladder: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	lobbyRepo, err := lobby.NewRedis(&lobby.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create lobby repository: %w", err)
	}

	roundRepo, err := round.NewRedis(&round.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create round repository: %w", err)
	}

	rng := random.New(&random.Config{Seed: cfg.RandomSeed})
	logger.Info("random source ready", zap.Int64("seed", rng.Seed()))

	svc, err := ladder.New(&ladder.Config{
		PlayerRepo:    playerRepo,
		LobbyRepo:     lobbyRepo,
		RoundRepo:     roundRepo,
		Random:        rng,
		Clock:         clock.New(),
		IDGenerator:   id.New(),
		StartingLives: cfg.StartingLives,
		Logger:        logger.Named("ladder"),
	})
	if err != nil {
		return fmt.Errorf("failed to create ladder service: %w", err)
	}

	api, err := httpapi.New(&httpapi.Config{
		Service: svc,
		Logger:  logger.Named("http"),
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP API: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// websocket streams are hijacked and end when their request context does
		return httpServer.Shutdown(shutdownCtx)
	})

	if cfg.DiscordEnabled() {
		// flavor text draws from its own source so RANDOM_SEED replays stay exact
		messages, err := messaging.New(&messaging.Config{})
		if err != nil {
			return fmt.Errorf("failed to create messaging service: %w", err)
		}

		bot, err := discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			Service:       svc,
			Messages:      messages,
			Logger:        logger.Named("discord"),
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}

		g.Go(func() error {
			if err := bot.Start(); err != nil {
				return fmt.Errorf("failed to start Discord bot: %w", err)
			}
			<-gctx.Done()
			return bot.Stop()
		})
	} else {
		logger.Info("DISCORD_TOKEN not set, running without the Discord bot")
	}

	err = g.Wait()
	logger.Info("mixladder has been shut down", zap.Error(err))
	return err
}
