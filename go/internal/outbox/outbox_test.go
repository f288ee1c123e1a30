package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outboxColumns = []string{"id", "game_day_id", "event_type", "payload", "created_at", "sent_at"}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewRepository(database), mock
}

func TestRepositoryFetchUnsentOutbox(t *testing.T) {
	repo, mock := newMockRepository(t)
	id, day := uuid.New(), uuid.New()
	mock.ExpectQuery(`WHERE sent_at IS NULL`).WithArgs(int32(50)).
		WillReturnRows(sqlmock.NewRows(outboxColumns).
			AddRow(id.String(), day.String(), "GameDayStarted", []byte(`{"a":1}`), time.Now(), nil))

	got, err := repo.FetchUnsentOutbox(context.Background(), 50)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, events.EventTypeGameDayStarted, got[0].EventType)
	assert.Equal(t, day, got[0].GameDayID)
	assert.JSONEq(t, `{"a":1}`, string(got[0].Payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFetchOutboxByIDAlreadySent(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`sent_at IS NULL`).WillReturnError(sql.ErrNoRows)

	_, err := repo.FetchOutboxByID(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, ErrEventNotFound))
}

func TestRepositoryMarkSentAndCount(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	at := time.Date(2026, 3, 12, 19, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE gameday_outbox SET sent_at`).WithArgs(id, at).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, repo.MarkOutboxSent(context.Background(), id, at))
	n, err := repo.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildMessage(t *testing.T) {
	e := testEvent(events.EventTypeGameDayCompleted)
	now := time.Date(2026, 3, 12, 21, 0, 0, 0, time.UTC)

	msg, err := buildMessage(e, now)
	require.NoError(t, err)

	assert.Equal(t, "gameday.events.GameDayCompleted", msg.Subject)
	assert.Equal(t, e.ID.String(), msg.Header.Get("Event-ID"))
	assert.Equal(t, e.GameDayID.String(), msg.Header.Get("Game-Day-ID"))

	var env events.Envelope
	require.NoError(t, json.Unmarshal(msg.Data, &env))
	assert.Equal(t, e.ID.String(), env.EventID)
	assert.Equal(t, events.EventTypeGameDayCompleted, env.EventType)
	assert.True(t, now.Equal(env.Timestamp))
	assert.JSONEq(t, string(e.Payload), string(env.Payload))
}

func TestStreamConfigCoversEverySubject(t *testing.T) {
	sc := streamConfig(DefaultJetStreamConfig())

	assert.Equal(t, "GAMEDAY_EVENTS", sc.Name)
	assert.Equal(t, []string{"gameday.events.>"}, sc.Subjects)
	assert.True(t, isStreamConfigEqual(sc, streamConfig(DefaultJetStreamConfig())))

	changed := DefaultJetStreamConfig()
	changed.DuplicateWindow = time.Minute
	assert.False(t, isStreamConfigEqual(sc, streamConfig(changed)))
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

type stubPending struct{ n int }

func (p stubPending) CountPending(ctx context.Context) (int, error) { return p.n, nil }

type stubConn bool

func (c stubConn) IsConnected() bool { return bool(c) }

func TestHealthChecker(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 12, 19, 0, 0, 0, time.UTC))
	l := NewListener(newMemoryStore(), &chanSource{}, &recordingPublisher{}, testListenerConfig(), clock)

	t.Run("listener stopped", func(t *testing.T) {
		h := NewHealthChecker(l, stubPinger{}, stubPending{}, stubConn(true), clock, time.Minute)
		status := h.Check(context.Background())
		assert.False(t, status.Healthy)
		assert.Contains(t, status.Errors, "listener not active")
	})

	l.setRunning(true)

	t.Run("healthy", func(t *testing.T) {
		h := NewHealthChecker(l, stubPinger{}, stubPending{}, stubConn(true), clock, time.Minute)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var status HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.True(t, status.Healthy)
		assert.True(t, status.DatabaseConnected)
	})

	t.Run("stalled backlog", func(t *testing.T) {
		l.mu.Lock()
		l.lastSent = clock.Now()
		l.mu.Unlock()
		clock.Advance(10 * time.Minute)

		h := NewHealthChecker(l, stubPinger{}, stubPending{n: 4}, stubConn(true), clock, time.Minute)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewHealthChecker(l, stubPinger{err: errors.New("refused")}, stubPending{}, stubConn(false), clock, time.Minute)
		status := h.Check(context.Background())
		assert.False(t, status.Healthy)
		assert.False(t, status.DatabaseConnected)
		assert.False(t, status.NATSConnected)
		assert.Len(t, status.Errors, 2)
	})
}
