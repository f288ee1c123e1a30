package main

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedBundledFile(t *testing.T) {
	data, err := os.ReadFile("../../assets/league.json")
	require.NoError(t, err)

	s, err := parseSeed(data)
	require.NoError(t, err)

	assert.Len(t, s.Users, 7)
	assert.NotEqual(t, uuid.Nil, s.Tournament.ID)
	assert.Equal(t, 32, s.Tournament.K)
	require.Len(t, s.Tournament.Players, 5)
	assert.Equal(t, "1016.5", s.Tournament.Players[0].RankScore.String())
	assert.Nil(t, s.Tournament.Players[3].RankScore)
	assert.True(t, s.Tournament.Players[4].Disabled)
	for _, u := range s.Users {
		assert.NotEqual(t, uuid.Nil, u.ID, u.Username)
		assert.Equal(t, u.ID, s.userID(u.Username))
	}
}

func TestParseSeedRejects(t *testing.T) {
	users := `"users": [
		{"username": "admin", "role": "ADMIN"},
		{"username": "mei", "role": "PLAYER"}
	]`

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad role", `{"users": [{"username": "x", "role": "OWNER"}], "tournament": {"name": "L", "owner": "x", "k": 32}}`, `unknown role "OWNER"`},
		{"duplicate user", `{"users": [{"username": "x", "role": "PLAYER"}, {"username": "x", "role": "PLAYER"}], "tournament": {"name": "L"}}`, "duplicate username x"},
		{"missing name", `{` + users + `, "tournament": {"owner": "admin", "k": 32}}`, "tournament name is required"},
		{"zero k", `{` + users + `, "tournament": {"name": "L", "owner": "admin"}}`, "k must be a positive integer"},
		{"negative demerit", `{` + users + `, "tournament": {"name": "L", "owner": "admin", "k": 32, "absentee_demerit": -1}}`, "absentee demerit must be non-negative"},
		{"unknown owner", `{` + users + `, "tournament": {"name": "L", "owner": "ghost", "k": 32}}`, `owner "ghost"`},
		{"admin as player", `{` + users + `, "tournament": {"name": "L", "owner": "admin", "k": 32, "players": [{"username": "admin"}]}}`, "must have role PLAYER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSeed([]byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
