package connectutil

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	want := uuid.New()
	got, err := ParseID("game_day_id", want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, bad := range []string{"", "not-a-uuid", want.String() + "0"} {
		_, err := ParseID("game_day_id", bad)
		var ce *connect.Error
		require.ErrorAs(t, err, &ce, bad)
		assert.Equal(t, connect.CodeInvalidArgument, ce.Code())
		assert.Contains(t, ce.Message(), "invalid game_day_id")
	}
}
