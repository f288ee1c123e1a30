package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mcdev12/shuttleleague/go/internal/auth"
	"github.com/mcdev12/shuttleleague/go/internal/gateway"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	port := getEnv("GATEWAY_PORT", "8081")

	cfg := gateway.DefaultConfig()
	cfg.JetStreamConfig.URL = getEnv("NATS_URL", cfg.JetStreamConfig.URL)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	var verifier *auth.Verifier
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		verifier = auth.NewVerifier(secret)
	} else {
		log.Warn().Msg("JWT_SECRET not set, only anonymous spectators can connect")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := gateway.NewService(ctx, cfg, verifier)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gateway service")
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().
		Str("nats_url", cfg.JetStreamConfig.URL).
		Str("port", port).
		Msg("starting game day gateway")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return svc.Start(gctx)
	})
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("gateway exited")
		return
	}
	log.Info().Msg("game day gateway shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
