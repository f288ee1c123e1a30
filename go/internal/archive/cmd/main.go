package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/shuttleleague/go/internal/archive"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := archive.NewS3Store(ctx, archive.S3Config{
		Bucket:          os.Getenv("ARCHIVE_BUCKET"),
		Region:          os.Getenv("AWS_REGION"),
		Endpoint:        os.Getenv("AWS_ENDPOINT_URL"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure object store")
	}

	cfg := archive.DefaultConsumerConfig()
	if url := os.Getenv("NATS_URL"); url != "" {
		cfg.URL = url
	}

	consumer, err := archive.NewConsumer(ctx, archive.NewArchiver(store), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create archive consumer")
	}

	log.Info().Str("bucket", os.Getenv("ARCHIVE_BUCKET")).Msg("starting game day archiver")
	if err := consumer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("archive consumer failed")
	}
	log.Info().Msg("game day archiver stopped")
}
