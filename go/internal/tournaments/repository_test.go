package tournaments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewRepository(database), mock
}

var playerColumns = []string{
	"id", "tournament_id", "user_id", "first_name", "last_name", "status", "rank_score", "status_changed_at",
}

func TestRepositoryGetTournamentLoadsAdmins(t *testing.T) {
	repo, mock := newMockRepository(t)
	id, owner, admin := uuid.New(), uuid.New(), uuid.New()
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM tournaments`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "enabled", "owner_id", "created_at", "updated_at"}).
			AddRow(id.String(), "Thursday League", "LEAGUE", true, owner.String(), now, now))
	mock.ExpectQuery(`FROM tournament_admins`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(admin.String()))

	got, err := repo.GetTournament(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, models.TournamentTypeLeague, got.Type)
	assert.Equal(t, owner, got.OwnerID)
	assert.True(t, got.HasAdmin(admin))
	assert.False(t, got.HasAdmin(owner))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetTournamentNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`FROM tournaments`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTournament(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, ErrTournamentNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetTournamentPlayerByUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		tournamentID, userID, id := uuid.New(), uuid.New(), uuid.New()
		mock.ExpectQuery(`tp.tournament_id = \$1 AND tp.user_id = \$2`).WithArgs(tournamentID, userID).
			WillReturnRows(sqlmock.NewRows(playerColumns).
				AddRow(id.String(), tournamentID.String(), userID.String(), "Ana", "Lee", "DISABLED", nil, time.Now()))

		tp, err := repo.GetTournamentPlayerByUser(context.Background(), tournamentID, userID)
		require.NoError(t, err)

		assert.Equal(t, id, tp.ID)
		assert.Equal(t, models.PlayerStatusDisabled, tp.Status)
		assert.False(t, tp.RankScore.Valid)
		assert.Equal(t, "Ana Lee", tp.DisplayName())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`FROM tournament_players`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTournamentPlayerByUser(context.Background(), uuid.New(), uuid.New())

		assert.True(t, errors.Is(err, ErrPlayerNotFound))
	})
}

func TestRepositoryListRankedPlayers(t *testing.T) {
	repo, mock := newMockRepository(t)
	tournamentID := uuid.New()
	mock.ExpectQuery(`ORDER BY tp.rank_score DESC NULLS LAST`).WithArgs(tournamentID).
		WillReturnRows(sqlmock.NewRows(playerColumns).
			AddRow(uuid.NewString(), tournamentID.String(), uuid.NewString(), "Ana", "Lee", "ENABLED", "1032.25", time.Now()).
			AddRow(uuid.NewString(), tournamentID.String(), uuid.NewString(), "Bo", "", "ENABLED", nil, time.Now()))

	players, err := repo.ListRankedPlayers(context.Background(), tournamentID)
	require.NoError(t, err)

	require.Len(t, players, 2)
	assert.True(t, players[0].RankScore.Decimal.Equal(decimal.RequireFromString("1032.25")))
	assert.False(t, players[1].RankScore.Valid)
	assert.Equal(t, "Bo", players[1].DisplayName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdatePlayerStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		mock.ExpectExec(`UPDATE tournament_players`).
			WithArgs(id, "ENABLED", "DISABLED", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePlayerStatus(context.Background(), id, models.PlayerStatusEnabled, models.PlayerStatusDisabled, time.Now())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status already changed", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`UPDATE tournament_players`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePlayerStatus(context.Background(), uuid.New(), models.PlayerStatusEnabled, models.PlayerStatusDisabled, time.Now())

		assert.True(t, errors.Is(err, ErrStatusChanged))
	})
}

func TestRepositoryUpdateLeagueSettings(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	at := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	encoded := []byte(`{"type":"MODIFIED_ELO","k":20,"absenteeDemerit":2}`)

	mock.ExpectQuery(`UPDATE league_settings`).
		WithArgs(id, sqlmock.AnyArg(), at).
		WillReturnRows(sqlmock.NewRows([]string{"tournament_id", "ranking_logic", "rating_config", "updated_at"}).
			AddRow(id.String(), "MODIFIED_ELO", encoded, at))

	s, err := repo.UpdateLeagueSettings(context.Background(), id, models.ModifiedEloConfig{K: 20, AbsenteeDemerit: 2}, at)
	require.NoError(t, err)

	assert.Equal(t, models.RankingLogicModifiedElo, s.RankingLogic)
	assert.Equal(t, models.ModifiedEloConfig{K: 20, AbsenteeDemerit: 2}, s.RatingConfig)
	assert.Equal(t, at, s.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListRankScoreHistory(t *testing.T) {
	repo, mock := newMockRepository(t)
	playerID, matchID := uuid.New(), uuid.New()
	mock.ExpectQuery(`FROM rank_score_history`).WithArgs(playerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tournament_player_id", "match_id", "previous_score", "new_score", "changed_at"}).
			AddRow(uuid.NewString(), playerID.String(), matchID.String(), "1000", "1016.00", time.Now()))

	history, err := repo.ListRankScoreHistory(context.Background(), playerID)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, matchID, history[0].MatchID)
	assert.True(t, history[0].NewScore.Sub(history[0].PreviousScore).Equal(decimal.NewFromInt(16)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
