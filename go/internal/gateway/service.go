package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/shuttleleague/go/internal/auth"
)

// Service ties the connection manager to the JetStream consumer
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	eventConsumer     *EventConsumer
	config            Config
}

type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
	AllowedOrigins   []string
}

func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
	}
}

func NewService(ctx context.Context, config Config, verifier *auth.Verifier) (*Service, error) {
	connectionManager := NewConnectionManager(config.ConnectionConfig)

	eventConsumer, err := NewEventConsumer(ctx, connectionManager, config.JetStreamConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}

	return &Service{
		connectionManager: connectionManager,
		wsHandler:         NewWebSocketHandler(connectionManager, verifier),
		eventConsumer:     eventConsumer,
		config:            config,
	}, nil
}

// Start runs the broadcaster and the consumer until ctx is cancelled
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting game day gateway service")

	go s.connectionManager.Start(ctx)

	err := s.eventConsumer.Start(ctx)
	if stopErr := s.eventConsumer.Stop(); stopErr != nil {
		log.Error().Err(stopErr).Msg("failed to stop event consumer")
	}
	return err
}

func (s *Service) Handler() http.Handler {
	return NewRouter(s.wsHandler, s.config.AllowedOrigins)
}

func (s *Service) Stats() ConnectionStats {
	return s.connectionManager.Stats()
}
