package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

// maxPending is the backlog size reported as an error
const maxPending = 1000

type HealthStatus struct {
	Healthy           bool      `json:"healthy"`
	EventsPublished   uint64    `json:"events_published"`
	LastEventTime     time.Time `json:"last_event_time"`
	PendingEvents     int       `json:"pending_events"`
	DatabaseConnected bool      `json:"database_connected"`
	NATSConnected     bool      `json:"nats_connected"`
	ListenerActive    bool      `json:"listener_active"`
	Errors            []string  `json:"errors"`
}

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PendingCounter is satisfied by *Repository
type PendingCounter interface {
	CountPending(ctx context.Context) (int, error)
}

// ConnStatus is satisfied by *nats.Conn
type ConnStatus interface {
	IsConnected() bool
}

type HealthChecker struct {
	listener  *Listener
	db        Pinger
	pending   PendingCounter
	nats      ConnStatus
	clock     clockwork.Clock
	threshold time.Duration // How long a backlog may sit before unhealthy
}

func NewHealthChecker(listener *Listener, db Pinger, pending PendingCounter, nats ConnStatus, clock clockwork.Clock, threshold time.Duration) *HealthChecker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthChecker{
		listener:  listener,
		db:        db,
		pending:   pending,
		nats:      nats,
		clock:     clock,
		threshold: threshold,
	}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy: true,
		Errors:  []string{},
	}

	status.EventsPublished, status.LastEventTime = h.listener.Stats()

	if err := h.db.PingContext(ctx); err != nil {
		status.Healthy = false
		status.Errors = append(status.Errors, fmt.Sprintf("database ping failed: %v", err))
	} else {
		status.DatabaseConnected = true
	}

	if h.nats != nil {
		status.NATSConnected = h.nats.IsConnected()
		if !status.NATSConnected {
			status.Healthy = false
			status.Errors = append(status.Errors, "NATS disconnected")
		}
	}

	status.ListenerActive = h.listener.Running()
	if !status.ListenerActive {
		status.Healthy = false
		status.Errors = append(status.Errors, "listener not active")
	}

	if status.DatabaseConnected {
		pending, err := h.pending.CountPending(ctx)
		if err != nil {
			status.Errors = append(status.Errors, fmt.Sprintf("failed to count pending events: %v", err))
		} else {
			status.PendingEvents = pending
			if pending > maxPending {
				status.Errors = append(status.Errors, fmt.Sprintf("high pending event count: %d", pending))
			}
		}
	}

	if status.PendingEvents > 0 && !status.LastEventTime.IsZero() {
		since := h.clock.Since(status.LastEventTime)
		if since > h.threshold {
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("no events published for %s", since))
		}
	}

	return status
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := h.Check(ctx)

	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(status)
}
