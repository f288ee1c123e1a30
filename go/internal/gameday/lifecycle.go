package gameday

import (
	"fmt"

	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/models"
)

// Action is a lifecycle operation on a game day.
type Action string

const (
	ActionStart       Action = "start"
	ActionDiscard     Action = "discard"
	ActionCancel      Action = "cancel"
	ActionSubmitScore Action = "submit_score"
	ActionFinish      Action = "finish"
)

type transition struct {
	from []models.GameDayStatus
	// to is empty when the action deletes the day or leaves its status alone.
	to       models.GameDayStatus
	rejected string
}

var transitions = map[Action]transition{
	ActionStart: {
		from:     []models.GameDayStatus{models.GameDayStatusPending},
		to:       models.GameDayStatusOngoing,
		rejected: "Only PENDING game days can be started",
	},
	ActionDiscard: {
		from:     []models.GameDayStatus{models.GameDayStatusPending},
		rejected: "Only PENDING game days can be discarded",
	},
	ActionCancel: {
		from:     []models.GameDayStatus{models.GameDayStatusPending, models.GameDayStatusOngoing},
		rejected: "Completed game days cannot be cancelled",
	},
	ActionSubmitScore: {
		from:     []models.GameDayStatus{models.GameDayStatusOngoing},
		rejected: "Scores can only be submitted for ONGOING game days",
	},
	ActionFinish: {
		from:     []models.GameDayStatus{models.GameDayStatusOngoing},
		to:       models.GameDayStatusCompleted,
		rejected: "Only ONGOING game days can be finished",
	},
}

// CheckTransition validates action against the current status and returns the
// status the day moves to. The returned status is empty for deleting actions and
// for score submission.
func CheckTransition(current models.GameDayStatus, action Action) (models.GameDayStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return "", fmt.Errorf("unknown game day action: %s", action)
	}
	if !isKnownStatus(current) {
		return "", fmt.Errorf("unknown game day status: %s", current)
	}
	for _, allowed := range t.from {
		if current == allowed {
			return t.to, nil
		}
	}
	return "", apperrors.Validation("%s", t.rejected)
}

func isKnownStatus(s models.GameDayStatus) bool {
	switch s {
	case models.GameDayStatusPending, models.GameDayStatusOngoing, models.GameDayStatusCompleted:
		return true
	}
	return false
}
