package gameday

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewRepository(database), mock
}

var gameDayColumns = []string{"id", "tournament_id", "game_date", "status", "created_at", "updated_at"}

var matchColumns = []string{
	"id", "group_id", "match_order", "team1_player1_id", "team1_player2_id",
	"team2_player1_id", "team2_player2_id", "team1_score", "team2_score", "version",
}

func TestRepositoryCreateGameDayDuplicateDate(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`INSERT INTO game_days`).
		WillReturnError(&pq.Error{Code: uniqueViolation, Message: "duplicate key value"})

	_, err := repo.CreateGameDay(context.Background(), NewGameDayParams{
		ID:           uuid.New(),
		TournamentID: uuid.New(),
		GameDate:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:       models.GameDayStatusPending,
		CreatedAt:    time.Now(),
	})

	assert.True(t, errors.Is(err, ErrDuplicateGameDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetGameDayNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`FROM game_days`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetGameDay(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, ErrGameDayNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryLockGameDayAssemblesGroups(t *testing.T) {
	repo, mock := newMockRepository(t)
	dayID, tournamentID := uuid.New(), uuid.New()
	group1, group2 := uuid.New(), uuid.New()
	seats := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	matchID := uuid.New()
	now := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FOR UPDATE`).WithArgs(dayID).
		WillReturnRows(sqlmock.NewRows(gameDayColumns).
			AddRow(dayID.String(), tournamentID.String(), now, "ONGOING", now, now))
	mock.ExpectQuery(`FROM game_day_groups`).WithArgs(dayID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "game_day_id", "group_number"}).
			AddRow(group1.String(), dayID.String(), 1).
			AddRow(group2.String(), dayID.String(), 2))

	playerRows := sqlmock.NewRows([]string{
		"id", "group_id", "tournament_player_id", "position", "rank_score_at_assignment",
		"user_id", "first_name", "last_name", "rank_score",
	})
	for i, seat := range seats {
		playerRows.AddRow(seat.String(), group1.String(), uuid.NewString(), i, "100.50", uuid.NewString(), "Ana", "Lee", nil)
	}
	mock.ExpectQuery(`FROM game_day_group_players`).WithArgs(dayID).WillReturnRows(playerRows)
	mock.ExpectQuery(`FROM game_day_matches`).WithArgs(dayID).
		WillReturnRows(sqlmock.NewRows(matchColumns).
			AddRow(matchID.String(), group1.String(), 1, seats[0].String(), seats[1].String(), seats[2].String(), seats[3].String(), 21, nil, 3))

	day, err := repo.LockGameDay(context.Background(), dayID)
	require.NoError(t, err)

	assert.Equal(t, models.GameDayStatusOngoing, day.Status)
	require.Len(t, day.Groups, 2)
	assert.Len(t, day.Groups[0].Players, 4)
	assert.Equal(t, "Ana Lee", day.Groups[0].Players[0].DisplayName)
	assert.True(t, day.Groups[0].Players[0].RankScoreAtAssignment.Decimal.Equal(decimal.RequireFromString("100.5")))
	assert.False(t, day.Groups[0].Players[0].CurrentRankScore.Valid)
	assert.Empty(t, day.Groups[1].Players)

	require.Len(t, day.Groups[0].Matches, 1)
	m := day.Groups[0].Matches[0]
	assert.Equal(t, 21, *m.Team1Score)
	assert.Nil(t, m.Team2Score)
	assert.False(t, m.HasScore())
	assert.EqualValues(t, 3, m.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateGameDayStatusLostRace(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	mock.ExpectExec(`UPDATE game_days`).
		WithArgs(id, "ONGOING", "COMPLETED", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateGameDayStatus(context.Background(), id, models.GameDayStatusOngoing, models.GameDayStatusCompleted, time.Now())

	assert.True(t, errors.Is(err, ErrStatusChanged))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateMatchScoreIfVersion(t *testing.T) {
	t.Run("stale version", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		mock.ExpectQuery(`version = \$4`).
			WithArgs(id, int32(21), int32(18), int64(0)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateMatchScoreIfVersion(context.Background(), ScoreUpdate{MatchID: id, Team1Score: 21, Team2Score: 18}, 0)

		assert.True(t, errors.Is(err, ErrVersionConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("current version", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id, group := uuid.New(), uuid.New()
		mock.ExpectQuery(`version = \$4`).
			WithArgs(id, int32(21), int32(18), int64(0)).
			WillReturnRows(sqlmock.NewRows(matchColumns).
				AddRow(id.String(), group.String(), 2, uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString(), 21, 18, 1))

		m, err := repo.UpdateMatchScoreIfVersion(context.Background(), ScoreUpdate{MatchID: id, Team1Score: 21, Team2Score: 18}, 0)

		require.NoError(t, err)
		assert.Equal(t, 18, *m.Team2Score)
		assert.EqualValues(t, 1, m.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryLockTournamentPlayersRequiresEveryRow(t *testing.T) {
	repo, mock := newMockRepository(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	mock.ExpectQuery(`FOR UPDATE OF tp`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tournament_id", "user_id", "first_name", "last_name", "status", "rank_score", "status_changed_at",
		}).AddRow(ids[0].String(), uuid.NewString(), uuid.NewString(), "Ana", "Lee", "ENABLED", "10", time.Now()))

	_, err := repo.LockTournamentPlayers(context.Background(), ids)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked 1 of 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetLeagueSettings(t *testing.T) {
	columns := []string{"tournament_id", "ranking_logic", "rating_config", "updated_at"}

	t.Run("decodes config", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		mock.ExpectQuery(`FROM league_settings`).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id.String(), "MODIFIED_ELO", []byte(`{"type":"MODIFIED_ELO","k":24,"absenteeDemerit":3}`), time.Now()))

		s, err := repo.GetLeagueSettings(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, models.ModifiedEloConfig{K: 24, AbsenteeDemerit: 3}, s.RatingConfig)
	})

	t.Run("null config", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		mock.ExpectQuery(`FROM league_settings`).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "MODIFIED_ELO", nil, time.Now()))

		_, err := repo.GetLeagueSettings(context.Background(), id)

		assert.True(t, errors.Is(err, ErrSettingsNotFound))
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`FROM league_settings`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetLeagueSettings(context.Background(), uuid.New())

		assert.True(t, errors.Is(err, ErrSettingsNotFound))
	})
}

func TestRepositoryInTx(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM game_days`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO gameday_outbox`).
			WithArgs(id, "GameDayDeleted", []byte(`{}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.InTx(context.Background(), func(tx Repository) error {
			if err := tx.DeleteGameDay(context.Background(), id); err != nil {
				return err
			}
			// nested calls join the open transaction
			return tx.InTx(context.Background(), func(inner Repository) error {
				return inner.InsertOutboxEvent(context.Background(), id, "GameDayDeleted", []byte(`{}`))
			})
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE tournament_players`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.InTx(context.Background(), func(tx Repository) error {
			return tx.AdjustRankScore(context.Background(), uuid.New(), decimal.NewFromInt(16))
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
