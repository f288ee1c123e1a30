package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/shuttleleague/go/internal/events"
)

// ErrMalformedEvent marks events that will never archive successfully
var ErrMalformedEvent = errors.New("malformed event")

// GameDayArchive is the document stored for each completed game day
type GameDayArchive struct {
	EventID     string                         `json:"event_id"`
	PublishedAt time.Time                      `json:"published_at"`
	GameDay     events.GameDayCompletedPayload `json:"game_day"`
}

// Key returns tournaments/<tournament>/gamedays/<date>-<game day>.json
func Key(p events.GameDayCompletedPayload) string {
	return fmt.Sprintf("tournaments/%s/gamedays/%s-%s.json", p.TournamentID, p.GameDate, p.GameDayID)
}

type Archiver struct {
	store ObjectStore
}

func NewArchiver(store ObjectStore) *Archiver {
	return &Archiver{store: store}
}

// HandleData archives a GameDayCompleted envelope. Other event types are ignored.
func (a *Archiver) HandleData(ctx context.Context, data []byte) error {
	var env events.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: unmarshal envelope: %v", ErrMalformedEvent, err)
	}
	if env.EventType != events.EventTypeGameDayCompleted {
		return nil
	}

	var payload events.GameDayCompletedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return fmt.Errorf("%w: unmarshal payload: %v", ErrMalformedEvent, err)
	}
	if _, err := uuid.Parse(payload.TournamentID); err != nil {
		return fmt.Errorf("%w: tournament id %q", ErrMalformedEvent, payload.TournamentID)
	}
	if _, err := uuid.Parse(payload.GameDayID); err != nil {
		return fmt.Errorf("%w: game day id %q", ErrMalformedEvent, payload.GameDayID)
	}
	if _, err := time.Parse(time.DateOnly, payload.GameDate); err != nil {
		return fmt.Errorf("%w: game date %q", ErrMalformedEvent, payload.GameDate)
	}

	doc, err := json.MarshalIndent(GameDayArchive{
		EventID:     env.EventID,
		PublishedAt: env.Timestamp,
		GameDay:     payload,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal archive: %w", err)
	}

	key := Key(payload)
	if err := a.store.Put(ctx, key, "application/json", doc); err != nil {
		return err
	}

	log.Info().
		Str("event_id", env.EventID).
		Str("game_day_id", payload.GameDayID).
		Str("key", key).
		Int("rating_changes", len(payload.RatingChanges)).
		Msg("archived completed game day")
	return nil
}
