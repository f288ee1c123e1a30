package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/mcdev12/shuttleleague/go/internal/outbox"
)

type ConsumerConfig struct {
	URL           string
	StreamName    string
	ConsumerName  string
	MaxDeliver    int
	AckWait       time.Duration
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		URL:           nats.DefaultURL,
		StreamName:    events.StreamName,
		ConsumerName:  "gameday-archiver",
		MaxDeliver:    10,
		AckWait:       time.Minute,
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
	}
}

// Consumer feeds GameDayCompleted events from JetStream into an Archiver
type Consumer struct {
	archiver *Archiver
	nc       *nats.Conn
	consumer jetstream.Consumer
	config   ConsumerConfig
}

func NewConsumer(ctx context.Context, archiver *Archiver, cfg ConsumerConfig) (*Consumer, error) {
	nc, err := outbox.Connect(cfg.URL, cfg.MaxReconnects, cfg.ReconnectWait)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	consumer, err := js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Name:          cfg.ConsumerName,
		Durable:       cfg.ConsumerName,
		Description:   "Archives completed game days to object storage",
		FilterSubject: events.Subject(events.EventTypeGameDayCompleted),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    cfg.MaxDeliver,
		AckWait:       cfg.AckWait,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure consumer: %w", err)
	}

	log.Info().
		Str("consumer", cfg.ConsumerName).
		Str("stream", cfg.StreamName).
		Msg("archive consumer ready")

	return &Consumer{archiver: archiver, nc: nc, consumer: consumer, config: cfg}, nil
}

// Start processes messages one at a time until ctx is cancelled
func (c *Consumer) Start(ctx context.Context) error {
	defer c.nc.Close()

	iter, err := c.consumer.Messages()
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	go func() {
		<-ctx.Done()
		iter.Stop()
	}()

	for {
		msg, err := iter.Next()
		if err != nil {
			if errors.Is(err, jetstream.ErrMsgIteratorClosed) {
				log.Info().Msg("archive consumer shutting down")
				return nil
			}
			return fmt.Errorf("next message: %w", err)
		}
		c.handle(ctx, msg)
	}
}

func (c *Consumer) handle(ctx context.Context, msg jetstream.Msg) {
	err := c.archiver.HandleData(ctx, msg.Data())
	switch {
	case err == nil:
		if ackErr := msg.Ack(); ackErr != nil {
			log.Error().Err(ackErr).Msg("failed to ACK message")
		}
	case errors.Is(err, ErrMalformedEvent):
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("dropping malformed event")
		if termErr := msg.Term(); termErr != nil {
			log.Error().Err(termErr).Msg("failed to TERM message")
		}
	default:
		log.Warn().Err(err).Str("subject", msg.Subject()).Msg("archive failed, will retry")
		if nakErr := msg.NakWithDelay(10 * time.Second); nakErr != nil {
			log.Error().Err(nakErr).Msg("failed to NAK message")
		}
	}
}
