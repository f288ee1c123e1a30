package apperrors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestCodeSurvivesWrapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code connect.Code
	}{
		{"validation", Validation("Scores must be non-negative"), connect.CodeInvalidArgument},
		{"not found", NotFound("Game day not found"), connect.CodeNotFound},
		{"conflict", Conflict("Score was already submitted by another player"), connect.CodeAborted},
		{"forbidden", Forbidden("Access denied"), connect.CodePermissionDenied},
		{"unauthenticated", Unauthenticated("missing token"), connect.CodeUnauthenticated},
		{"internal", errors.New("connection reset"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to do thing: %w", tt.err)
			assert.Equal(t, tt.code, Code(wrapped))
			assert.Equal(t, tt.code, ToConnect(wrapped).Code())
		})
	}
}

func TestToConnectKeepsUserFacingMessage(t *testing.T) {
	err := fmt.Errorf("validation failed: %w", Validation("Player count of %d cannot be split into groups of 4 or 5. Invalid counts: 6, 7, 11", 7))

	ce := ToConnect(err)
	assert.Equal(t, "Player count of 7 cannot be split into groups of 4 or 5. Invalid counts: 6, 7, 11", ce.Message())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestToConnectNil(t *testing.T) {
	assert.Nil(t, ToConnect(nil))
}

func TestToConnectHidesInternalErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	err := fmt.Errorf("failed to adjust rank score: %w", errors.New(`pq: relation "tournament_players" does not exist`))
	ce := ToConnect(err)

	assert.Equal(t, connect.CodeInternal, ce.Code())
	assert.Equal(t, "internal error", ce.Message())
	assert.NotContains(t, ce.Error(), "tournament_players")
	assert.Contains(t, buf.String(), `relation \"tournament_players\" does not exist`)
}
