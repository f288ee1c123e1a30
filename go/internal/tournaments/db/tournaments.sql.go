package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

const getTournament = `-- name: GetTournament :one
SELECT id, name, type, enabled, owner_id, created_at, updated_at
FROM tournaments
WHERE id = $1
`

func (q *Queries) GetTournament(ctx context.Context, id uuid.UUID) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, getTournament, id)
	var i Tournament
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Type,
		&i.Enabled,
		&i.OwnerID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTournamentAdminIDs = `-- name: ListTournamentAdminIDs :many
SELECT user_id FROM tournament_admins WHERE tournament_id = $1 ORDER BY user_id
`

func (q *Queries) ListTournamentAdminIDs(ctx context.Context, tournamentID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.db.QueryContext(ctx, listTournamentAdminIDs, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		items = append(items, userID)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const tournamentPlayerColumns = `tp.id, tp.tournament_id, tp.user_id, u.first_name, u.last_name, tp.status, tp.rank_score, tp.status_changed_at`

const getTournamentPlayerByUser = `-- name: GetTournamentPlayerByUser :one
SELECT ` + tournamentPlayerColumns + `
FROM tournament_players tp
JOIN users u ON u.id = tp.user_id
WHERE tp.tournament_id = $1 AND tp.user_id = $2
`

type GetTournamentPlayerByUserParams struct {
	TournamentID uuid.UUID `json:"tournament_id"`
	UserID       uuid.UUID `json:"user_id"`
}

func (q *Queries) GetTournamentPlayerByUser(ctx context.Context, arg GetTournamentPlayerByUserParams) (TournamentPlayer, error) {
	row := q.db.QueryRowContext(ctx, getTournamentPlayerByUser, arg.TournamentID, arg.UserID)
	return scanTournamentPlayer(row)
}

const getTournamentPlayer = `-- name: GetTournamentPlayer :one
SELECT ` + tournamentPlayerColumns + `
FROM tournament_players tp
JOIN users u ON u.id = tp.user_id
WHERE tp.id = $1
`

func (q *Queries) GetTournamentPlayer(ctx context.Context, id uuid.UUID) (TournamentPlayer, error) {
	row := q.db.QueryRowContext(ctx, getTournamentPlayer, id)
	return scanTournamentPlayer(row)
}

const listRankedPlayers = `-- name: ListRankedPlayers :many
SELECT ` + tournamentPlayerColumns + `
FROM tournament_players tp
JOIN users u ON u.id = tp.user_id
WHERE tp.tournament_id = $1
ORDER BY tp.rank_score DESC NULLS LAST, tp.user_id
`

func (q *Queries) ListRankedPlayers(ctx context.Context, tournamentID uuid.UUID) ([]TournamentPlayer, error) {
	rows, err := q.db.QueryContext(ctx, listRankedPlayers, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TournamentPlayer
	for rows.Next() {
		i, err := scanTournamentPlayer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTournamentPlayerStatus = `-- name: UpdateTournamentPlayerStatus :execrows
UPDATE tournament_players
SET status = $3, status_changed_at = $4
WHERE id = $1 AND status = $2
`

type UpdateTournamentPlayerStatusParams struct {
	ID              uuid.UUID `json:"id"`
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	StatusChangedAt time.Time `json:"status_changed_at"`
}

func (q *Queries) UpdateTournamentPlayerStatus(ctx context.Context, arg UpdateTournamentPlayerStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateTournamentPlayerStatus,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.StatusChangedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getLeagueSettings = `-- name: GetLeagueSettings :one
SELECT tournament_id, ranking_logic, rating_config, updated_at
FROM league_settings
WHERE tournament_id = $1
`

func (q *Queries) GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (LeagueSetting, error) {
	row := q.db.QueryRowContext(ctx, getLeagueSettings, tournamentID)
	var i LeagueSetting
	err := row.Scan(
		&i.TournamentID,
		&i.RankingLogic,
		&i.RatingConfig,
		&i.UpdatedAt,
	)
	return i, err
}

const updateLeagueSettings = `-- name: UpdateLeagueSettings :one
UPDATE league_settings
SET rating_config = $2, updated_at = $3
WHERE tournament_id = $1
RETURNING tournament_id, ranking_logic, rating_config, updated_at
`

type UpdateLeagueSettingsParams struct {
	TournamentID uuid.UUID             `json:"tournament_id"`
	RatingConfig pqtype.NullRawMessage `json:"rating_config"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func (q *Queries) UpdateLeagueSettings(ctx context.Context, arg UpdateLeagueSettingsParams) (LeagueSetting, error) {
	row := q.db.QueryRowContext(ctx, updateLeagueSettings, arg.TournamentID, arg.RatingConfig, arg.UpdatedAt)
	var i LeagueSetting
	err := row.Scan(
		&i.TournamentID,
		&i.RankingLogic,
		&i.RatingConfig,
		&i.UpdatedAt,
	)
	return i, err
}

const listRankScoreHistory = `-- name: ListRankScoreHistory :many
SELECT id, tournament_player_id, match_id, previous_score, new_score, changed_at
FROM rank_score_history
WHERE tournament_player_id = $1
ORDER BY changed_at DESC, id
`

func (q *Queries) ListRankScoreHistory(ctx context.Context, tournamentPlayerID uuid.UUID) ([]RankScoreHistory, error) {
	rows, err := q.db.QueryContext(ctx, listRankScoreHistory, tournamentPlayerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RankScoreHistory
	for rows.Next() {
		var i RankScoreHistory
		if err := rows.Scan(
			&i.ID,
			&i.TournamentPlayerID,
			&i.MatchID,
			&i.PreviousScore,
			&i.NewScore,
			&i.ChangedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTournamentPlayer(row rowScanner) (TournamentPlayer, error) {
	var i TournamentPlayer
	err := row.Scan(
		&i.ID,
		&i.TournamentID,
		&i.UserID,
		&i.FirstName,
		&i.LastName,
		&i.Status,
		&i.RankScore,
		&i.StatusChangedAt,
	)
	return i, err
}
