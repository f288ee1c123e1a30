package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu     sync.Mutex
	events []OutboxEvent
	sent   map[uuid.UUID]time.Time
}

func newMemoryStore(evts ...OutboxEvent) *memoryStore {
	return &memoryStore{events: evts, sent: map[uuid.UUID]time.Time{}}
}

func (s *memoryStore) FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []OutboxEvent
	for _, e := range s.events {
		if _, done := s.sent[e.ID]; !done && int32(len(out)) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryStore) FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if _, done := s.sent[e.ID]; e.ID == id && !done {
			cp := e
			return &cp, nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *memoryStore) MarkOutboxSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[id] = at
	return nil
}

func (s *memoryStore) isSent(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sent[id]
	return ok
}

type recordingPublisher struct {
	mu        sync.Mutex
	failFirst int
	calls     int
	published []uuid.UUID
	notify    chan uuid.UUID
}

func (p *recordingPublisher) Publish(ctx context.Context, event OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failFirst {
		return errors.New("nats unavailable")
	}
	p.published = append(p.published, event.ID)
	if p.notify != nil {
		p.notify <- event.ID
	}
	return nil
}

func (p *recordingPublisher) ids() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uuid.UUID(nil), p.published...)
}

type chanSource struct {
	ch     chan *pq.Notification
	closed bool
}

func (s *chanSource) NotificationChannel() <-chan *pq.Notification { return s.ch }
func (s *chanSource) Ping() error                                 { return nil }
func (s *chanSource) Close() error {
	s.closed = true
	return nil
}

func testEvent(t events.EventType) OutboxEvent {
	return OutboxEvent{
		ID:        uuid.New(),
		GameDayID: uuid.New(),
		EventType: t,
		Payload:   json.RawMessage(`{"game_day_id":"x"}`),
	}
}

func testListenerConfig() ListenerConfig {
	cfg := DefaultListenerConfig()
	cfg.RetryDelay = time.Millisecond
	cfg.MaxRetries = 2
	cfg.FallbackInterval = time.Hour
	cfg.PingInterval = time.Hour
	return cfg
}

func TestHandleNotificationPublishesAndMarksSent(t *testing.T) {
	e := testEvent(events.EventTypeGameDayStarted)
	store := newMemoryStore(e)
	pub := &recordingPublisher{}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 12, 19, 0, 0, 0, time.UTC))
	l := NewListener(store, &chanSource{}, pub, testListenerConfig(), clock)

	require.NoError(t, l.handleNotification(context.Background(), e.ID.String()))

	assert.Equal(t, []uuid.UUID{e.ID}, pub.ids())
	assert.Equal(t, clock.Now(), store.sent[e.ID])
	count, last := l.Stats()
	assert.EqualValues(t, 1, count)
	assert.Equal(t, clock.Now(), last)

	// a second notification for the same row is a no-op
	require.NoError(t, l.handleNotification(context.Background(), e.ID.String()))
	assert.Len(t, pub.ids(), 1)
}

func TestHandleNotificationRejectsBadID(t *testing.T) {
	l := NewListener(newMemoryStore(), &chanSource{}, &recordingPublisher{}, testListenerConfig(), nil)

	err := l.handleNotification(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid event ID")
}

func TestPublishRetries(t *testing.T) {
	e := testEvent(events.EventTypeMatchScoreSubmitted)
	store := newMemoryStore(e)

	t.Run("succeeds after transient failures", func(t *testing.T) {
		pub := &recordingPublisher{failFirst: 2}
		l := NewListener(store, &chanSource{}, pub, testListenerConfig(), nil)

		require.NoError(t, l.relay(context.Background(), e))
		assert.Equal(t, 3, pub.calls)
		assert.True(t, store.isSent(e.ID))
	})

	t.Run("gives up and leaves the row unsent", func(t *testing.T) {
		other := testEvent(events.EventTypeGameDayCompleted)
		store := newMemoryStore(other)
		pub := &recordingPublisher{failFirst: 10}
		l := NewListener(store, &chanSource{}, pub, testListenerConfig(), nil)

		err := l.relay(context.Background(), other)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish failed after 3 attempts")
		assert.False(t, store.isSent(other.ID))
	})
}

func TestProcessUnsentStopsAtFirstFailure(t *testing.T) {
	first := testEvent(events.EventTypeGameDayCreated)
	second := testEvent(events.EventTypeGameDayStarted)
	store := newMemoryStore(first, second)
	cfg := testListenerConfig()
	cfg.MaxRetries = 0
	pub := &recordingPublisher{failFirst: 1}
	l := NewListener(store, &chanSource{}, pub, cfg, nil)

	require.NoError(t, l.processUnsent(context.Background()))
	assert.Empty(t, pub.ids())
	assert.False(t, store.isSent(second.ID))

	require.NoError(t, l.processUnsent(context.Background()))
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, pub.ids())
}

func TestHandleNotificationWaitsBehindFailedEvent(t *testing.T) {
	first := testEvent(events.EventTypeMatchScoreSubmitted)
	second := testEvent(events.EventTypeGameDayCompleted)

	t.Run("older event still failing", func(t *testing.T) {
		store := newMemoryStore(first, second)
		cfg := testListenerConfig()
		cfg.MaxRetries = 0
		pub := &recordingPublisher{failFirst: 2}
		l := NewListener(store, &chanSource{}, pub, cfg, nil)

		require.NoError(t, l.processUnsent(context.Background()))
		require.NoError(t, l.handleNotification(context.Background(), second.ID.String()))

		assert.Empty(t, pub.ids())
		assert.False(t, store.isSent(first.ID))
		assert.False(t, store.isSent(second.ID))
	})

	t.Run("older event recovers", func(t *testing.T) {
		store := newMemoryStore(first, second)
		cfg := testListenerConfig()
		cfg.MaxRetries = 0
		pub := &recordingPublisher{failFirst: 1}
		l := NewListener(store, &chanSource{}, pub, cfg, nil)

		require.NoError(t, l.processUnsent(context.Background()))
		require.NoError(t, l.handleNotification(context.Background(), second.ID.String()))

		assert.Equal(t, []uuid.UUID{first.ID, second.ID}, pub.ids())
		assert.True(t, store.isSent(second.ID))
	})

	t.Run("failed direct relay", func(t *testing.T) {
		store := newMemoryStore(first)
		cfg := testListenerConfig()
		cfg.MaxRetries = 0
		pub := &recordingPublisher{failFirst: 1}
		l := NewListener(store, &chanSource{}, pub, cfg, nil)

		require.Error(t, l.handleNotification(context.Background(), first.ID.String()))

		store.mu.Lock()
		store.events = append(store.events, second)
		store.mu.Unlock()
		require.NoError(t, l.handleNotification(context.Background(), second.ID.String()))

		assert.Equal(t, []uuid.UUID{first.ID, second.ID}, pub.ids())
	})
}

func TestStartDrainsBacklogThenFollowsNotifications(t *testing.T) {
	backlog := testEvent(events.EventTypeGameDayCreated)
	live := testEvent(events.EventTypeGameDayStarted)
	store := newMemoryStore(backlog)
	pub := &recordingPublisher{notify: make(chan uuid.UUID, 4)}
	source := &chanSource{ch: make(chan *pq.Notification, 1)}
	l := NewListener(store, source, pub, testListenerConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Start(ctx) }()

	select {
	case id := <-pub.notify:
		assert.Equal(t, backlog.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("backlog was not published")
	}

	store.mu.Lock()
	store.events = append(store.events, live)
	store.mu.Unlock()
	source.ch <- &pq.Notification{Channel: "gameday_outbox_events", Extra: live.ID.String()}

	select {
	case id := <-pub.notify:
		assert.Equal(t, live.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("notified event was not published")
	}

	cancel()
	require.NoError(t, <-done)
	assert.True(t, source.closed)
	assert.False(t, l.Running())
}
