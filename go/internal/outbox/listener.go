package outbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type ListenerConfig struct {
	NotifyChannel    string        // Channel name to LISTEN on
	FallbackInterval time.Duration // How often to poll for missed events
	MaxRetries       int
	RetryDelay       time.Duration
	PingInterval     time.Duration
	BatchSize        int32 // Max events to fetch per batch
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		NotifyChannel:    "gameday_outbox_events",
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// EventStore is the outbox table as seen by the listener
type EventStore interface {
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error)
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID, at time.Time) error
}

// NotificationSource is satisfied by *pq.Listener
type NotificationSource interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// NewPQSource opens a LISTEN connection on channel
func NewPQSource(dsn, channel string) (*pq.Listener, error) {
	l := pq.NewListener(
		dsn,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(channel); err != nil {
		l.Close()
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().
		Str("channel", channel).
		Msg("listening for notifications")
	return l, nil
}

// Listener relays outbox rows to the publisher as soon as Postgres notifies
// about them, and sweeps the table periodically for anything it missed.
type Listener struct {
	store     EventStore
	source    NotificationSource
	publisher Publisher
	cfg       ListenerConfig
	clock     clockwork.Clock

	mu        sync.Mutex
	running   bool
	published uint64
	lastSent  time.Time
	// backlog is set while an older row is known to be unsent; notified rows
	// then go through the oldest-first sweep instead of being relayed directly.
	backlog bool
}

func NewListener(store EventStore, source NotificationSource, publisher Publisher, cfg ListenerConfig, clock clockwork.Clock) *Listener {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Listener{
		store:     store,
		source:    source,
		publisher: publisher,
		cfg:       cfg,
		clock:     clock,
	}
}

func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	l.setRunning(true)
	defer l.setRunning(false)

	pingTicker := l.clock.NewTicker(l.cfg.PingInterval)
	fallbackTicker := l.clock.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	// anything written while the relay was down
	if err := l.processUnsent(ctx); err != nil {
		log.Error().Err(err).Msg("failed to process unsent events")
	}

	notifications := l.source.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.source.Close()
		case note := <-notifications:
			if note == nil {
				// connection was re-established; notifications may have been lost
				if err := l.processUnsent(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process unsent events")
				}
				continue
			}
			if err := l.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.Chan():
			if err := l.processUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.Chan():
			if err := l.source.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

// Stats returns how many events were relayed and when the last one went out
func (l *Listener) Stats() (uint64, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.published, l.lastSent
}

// Running reports whether Start is looping
func (l *Listener) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Listener) setRunning(running bool) {
	l.mu.Lock()
	l.running = running
	l.mu.Unlock()
}

func (l *Listener) setBacklog(pending bool) {
	l.mu.Lock()
	l.backlog = pending
	l.mu.Unlock()
}

func (l *Listener) hasBacklog() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.backlog
}

// handleNotification handles a pg listen notification. Extra is the outbox row id.
func (l *Listener) handleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	if l.hasBacklog() {
		// relaying id now could overtake the stuck row of its game day
		log.Debug().Str("event_id", id.String()).Msg("backlog pending, sweeping instead of relaying")
		return l.processUnsent(ctx)
	}

	event, err := l.store.FetchOutboxByID(ctx, id)
	if errors.Is(err, ErrEventNotFound) {
		// the fallback sweep got there first
		log.Debug().Str("event_id", id.String()).Msg("outbox event already sent")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}

	if err := l.relay(ctx, *event); err != nil {
		l.setBacklog(true)
		return err
	}
	return nil
}

// processUnsent relays unsent events oldest first, one batch at a time, until
// the table is drained or a relay fails.
func (l *Listener) processUnsent(ctx context.Context) error {
	for {
		unsent, err := l.store.FetchUnsentOutbox(ctx, l.cfg.BatchSize)
		if err != nil {
			l.setBacklog(true)
			return fmt.Errorf("failed to fetch unsent outbox events: %w", err)
		}

		for _, event := range unsent {
			if err := l.relay(ctx, event); err != nil {
				log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to relay event")
				// keep per-game-day order: a later event must not overtake this one
				l.setBacklog(true)
				return nil
			}
		}
		if len(unsent) == 0 || int32(len(unsent)) < l.cfg.BatchSize {
			l.setBacklog(false)
			return nil
		}
	}
}

func (l *Listener) relay(ctx context.Context, event OutboxEvent) error {
	if err := l.publishWithRetry(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	now := l.clock.Now().UTC()
	if err := l.store.MarkOutboxSent(ctx, event.ID, now); err != nil {
		return err
	}

	l.mu.Lock()
	l.published++
	l.lastSent = now
	l.mu.Unlock()

	log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", string(event.EventType)).
		Msg("published and marked event as sent")
	return nil
}

// publishWithRetry attempts to publish an outbox event with a linear backoff.
func (l *Listener) publishWithRetry(ctx context.Context, event OutboxEvent) error {
	var lastErr error

	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := l.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.clock.After(delay):
			}
		}

		if err := l.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Error().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", l.cfg.MaxRetries+1, lastErr)
}
