package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const gameDayExists = `-- name: GameDayExists :one
SELECT EXISTS (
    SELECT 1 FROM game_days WHERE tournament_id = $1 AND game_date = $2
)
`

type GameDayExistsParams struct {
	TournamentID uuid.UUID `json:"tournament_id"`
	GameDate     time.Time `json:"game_date"`
}

func (q *Queries) GameDayExists(ctx context.Context, arg GameDayExistsParams) (bool, error) {
	row := q.db.QueryRowContext(ctx, gameDayExists, arg.TournamentID, arg.GameDate)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createGameDay = `-- name: CreateGameDay :one
INSERT INTO game_days (id, tournament_id, game_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id, tournament_id, game_date, status, created_at, updated_at
`

type CreateGameDayParams struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournament_id"`
	GameDate     time.Time `json:"game_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (q *Queries) CreateGameDay(ctx context.Context, arg CreateGameDayParams) (GameDay, error) {
	row := q.db.QueryRowContext(ctx, createGameDay,
		arg.ID,
		arg.TournamentID,
		arg.GameDate,
		arg.Status,
		arg.CreatedAt,
	)
	var i GameDay
	err := row.Scan(
		&i.ID,
		&i.TournamentID,
		&i.GameDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getGameDay = `-- name: GetGameDay :one
SELECT id, tournament_id, game_date, status, created_at, updated_at
FROM game_days
WHERE id = $1
`

func (q *Queries) GetGameDay(ctx context.Context, id uuid.UUID) (GameDay, error) {
	row := q.db.QueryRowContext(ctx, getGameDay, id)
	var i GameDay
	err := row.Scan(
		&i.ID,
		&i.TournamentID,
		&i.GameDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockGameDay = `-- name: LockGameDay :one
SELECT id, tournament_id, game_date, status, created_at, updated_at
FROM game_days
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockGameDay(ctx context.Context, id uuid.UUID) (GameDay, error) {
	row := q.db.QueryRowContext(ctx, lockGameDay, id)
	var i GameDay
	err := row.Scan(
		&i.ID,
		&i.TournamentID,
		&i.GameDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listGameDaysByTournament = `-- name: ListGameDaysByTournament :many
SELECT id, tournament_id, game_date, status, created_at, updated_at
FROM game_days
WHERE tournament_id = $1
ORDER BY game_date DESC
`

func (q *Queries) ListGameDaysByTournament(ctx context.Context, tournamentID uuid.UUID) ([]GameDay, error) {
	rows, err := q.db.QueryContext(ctx, listGameDaysByTournament, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GameDay
	for rows.Next() {
		var i GameDay
		if err := rows.Scan(
			&i.ID,
			&i.TournamentID,
			&i.GameDate,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateGameDayStatus = `-- name: UpdateGameDayStatus :execrows
UPDATE game_days
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2
`

type UpdateGameDayStatusParams struct {
	ID         uuid.UUID `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (q *Queries) UpdateGameDayStatus(ctx context.Context, arg UpdateGameDayStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateGameDayStatus,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteGameDay = `-- name: DeleteGameDay :exec
DELETE FROM game_days WHERE id = $1
`

func (q *Queries) DeleteGameDay(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteGameDay, id)
	return err
}

const createGroup = `-- name: CreateGroup :one
INSERT INTO game_day_groups (game_day_id, group_number)
VALUES ($1, $2)
RETURNING id, game_day_id, group_number
`

type CreateGroupParams struct {
	GameDayID   uuid.UUID `json:"game_day_id"`
	GroupNumber int32     `json:"group_number"`
}

func (q *Queries) CreateGroup(ctx context.Context, arg CreateGroupParams) (GameDayGroup, error) {
	row := q.db.QueryRowContext(ctx, createGroup, arg.GameDayID, arg.GroupNumber)
	var i GameDayGroup
	err := row.Scan(&i.ID, &i.GameDayID, &i.GroupNumber)
	return i, err
}

const listGroupsByGameDay = `-- name: ListGroupsByGameDay :many
SELECT id, game_day_id, group_number
FROM game_day_groups
WHERE game_day_id = $1
ORDER BY group_number
`

func (q *Queries) ListGroupsByGameDay(ctx context.Context, gameDayID uuid.UUID) ([]GameDayGroup, error) {
	rows, err := q.db.QueryContext(ctx, listGroupsByGameDay, gameDayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GameDayGroup
	for rows.Next() {
		var i GameDayGroup
		if err := rows.Scan(&i.ID, &i.GameDayID, &i.GroupNumber); err != nil {
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

const createGroupPlayer = `-- name: CreateGroupPlayer :one
INSERT INTO game_day_group_players (group_id, tournament_player_id, position, rank_score_at_assignment)
VALUES ($1, $2, $3, $4)
RETURNING id, group_id, tournament_player_id, position, rank_score_at_assignment
`

type CreateGroupPlayerParams struct {
	GroupID               uuid.UUID           `json:"group_id"`
	TournamentPlayerID    uuid.UUID           `json:"tournament_player_id"`
	Position              int32               `json:"position"`
	RankScoreAtAssignment decimal.NullDecimal `json:"rank_score_at_assignment"`
}

func (q *Queries) CreateGroupPlayer(ctx context.Context, arg CreateGroupPlayerParams) (GameDayGroupPlayer, error) {
	row := q.db.QueryRowContext(ctx, createGroupPlayer,
		arg.GroupID,
		arg.TournamentPlayerID,
		arg.Position,
		arg.RankScoreAtAssignment,
	)
	var i GameDayGroupPlayer
	err := row.Scan(
		&i.ID,
		&i.GroupID,
		&i.TournamentPlayerID,
		&i.Position,
		&i.RankScoreAtAssignment,
	)
	return i, err
}

const listGroupPlayersByGameDay = `-- name: ListGroupPlayersByGameDay :many
SELECT gp.id, gp.group_id, gp.tournament_player_id, gp.position, gp.rank_score_at_assignment,
       tp.user_id, u.first_name, u.last_name, tp.rank_score
FROM game_day_group_players gp
JOIN game_day_groups g ON g.id = gp.group_id
JOIN tournament_players tp ON tp.id = gp.tournament_player_id
JOIN users u ON u.id = tp.user_id
WHERE g.game_day_id = $1
ORDER BY g.group_number, gp.position
`

type ListGroupPlayersByGameDayRow struct {
	ID                    uuid.UUID           `json:"id"`
	GroupID               uuid.UUID           `json:"group_id"`
	TournamentPlayerID    uuid.UUID           `json:"tournament_player_id"`
	Position              int32               `json:"position"`
	RankScoreAtAssignment decimal.NullDecimal `json:"rank_score_at_assignment"`
	UserID                uuid.UUID           `json:"user_id"`
	FirstName             string              `json:"first_name"`
	LastName              string              `json:"last_name"`
	RankScore             decimal.NullDecimal `json:"rank_score"`
}

func (q *Queries) ListGroupPlayersByGameDay(ctx context.Context, gameDayID uuid.UUID) ([]ListGroupPlayersByGameDayRow, error) {
	rows, err := q.db.QueryContext(ctx, listGroupPlayersByGameDay, gameDayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListGroupPlayersByGameDayRow
	for rows.Next() {
		var i ListGroupPlayersByGameDayRow
		if err := rows.Scan(
			&i.ID,
			&i.GroupID,
			&i.TournamentPlayerID,
			&i.Position,
			&i.RankScoreAtAssignment,
			&i.UserID,
			&i.FirstName,
			&i.LastName,
			&i.RankScore,
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

const createMatch = `-- name: CreateMatch :one
INSERT INTO game_day_matches (
    group_id, match_order, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, group_id, match_order, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id,
          team1_score, team2_score, version
`

type CreateMatchParams struct {
	GroupID        uuid.UUID `json:"group_id"`
	MatchOrder     int32     `json:"match_order"`
	Team1Player1ID uuid.UUID `json:"team1_player1_id"`
	Team1Player2ID uuid.UUID `json:"team1_player2_id"`
	Team2Player1ID uuid.UUID `json:"team2_player1_id"`
	Team2Player2ID uuid.UUID `json:"team2_player2_id"`
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (GameDayMatch, error) {
	row := q.db.QueryRowContext(ctx, createMatch,
		arg.GroupID,
		arg.MatchOrder,
		arg.Team1Player1ID,
		arg.Team1Player2ID,
		arg.Team2Player1ID,
		arg.Team2Player2ID,
	)
	return scanMatch(row)
}

const listMatchesByGameDay = `-- name: ListMatchesByGameDay :many
SELECT m.id, m.group_id, m.match_order, m.team1_player1_id, m.team1_player2_id, m.team2_player1_id,
       m.team2_player2_id, m.team1_score, m.team2_score, m.version
FROM game_day_matches m
JOIN game_day_groups g ON g.id = m.group_id
WHERE g.game_day_id = $1
ORDER BY g.group_number, m.match_order
`

func (q *Queries) ListMatchesByGameDay(ctx context.Context, gameDayID uuid.UUID) ([]GameDayMatch, error) {
	rows, err := q.db.QueryContext(ctx, listMatchesByGameDay, gameDayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GameDayMatch
	for rows.Next() {
		i, err := scanMatch(rows)
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

const matchExists = `-- name: MatchExists :one
SELECT EXISTS (SELECT 1 FROM game_day_matches WHERE id = $1)
`

func (q *Queries) MatchExists(ctx context.Context, id uuid.UUID) (bool, error) {
	row := q.db.QueryRowContext(ctx, matchExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateMatchScore = `-- name: UpdateMatchScore :one
UPDATE game_day_matches
SET team1_score = $2, team2_score = $3, version = version + 1, updated_at = now()
WHERE id = $1
RETURNING id, group_id, match_order, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id,
          team1_score, team2_score, version
`

type UpdateMatchScoreParams struct {
	ID         uuid.UUID `json:"id"`
	Team1Score int32     `json:"team1_score"`
	Team2Score int32     `json:"team2_score"`
}

func (q *Queries) UpdateMatchScore(ctx context.Context, arg UpdateMatchScoreParams) (GameDayMatch, error) {
	row := q.db.QueryRowContext(ctx, updateMatchScore, arg.ID, arg.Team1Score, arg.Team2Score)
	return scanMatch(row)
}

const updateMatchScoreIfVersion = `-- name: UpdateMatchScoreIfVersion :one
UPDATE game_day_matches
SET team1_score = $2, team2_score = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $4
RETURNING id, group_id, match_order, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id,
          team1_score, team2_score, version
`

type UpdateMatchScoreIfVersionParams struct {
	ID         uuid.UUID `json:"id"`
	Team1Score int32     `json:"team1_score"`
	Team2Score int32     `json:"team2_score"`
	Version    int64     `json:"version"`
}

func (q *Queries) UpdateMatchScoreIfVersion(ctx context.Context, arg UpdateMatchScoreIfVersionParams) (GameDayMatch, error) {
	row := q.db.QueryRowContext(ctx, updateMatchScoreIfVersion,
		arg.ID,
		arg.Team1Score,
		arg.Team2Score,
		arg.Version,
	)
	return scanMatch(row)
}

const getTournamentPlayers = `-- name: GetTournamentPlayers :many
SELECT tp.id, tp.tournament_id, tp.user_id, u.first_name, u.last_name, tp.status, tp.rank_score, tp.status_changed_at
FROM tournament_players tp
JOIN users u ON u.id = tp.user_id
WHERE tp.id = ANY($1::uuid[])
ORDER BY tp.id
`

func (q *Queries) GetTournamentPlayers(ctx context.Context, ids []string) ([]TournamentPlayer, error) {
	return q.listTournamentPlayers(ctx, getTournamentPlayers, ids)
}

const lockTournamentPlayers = `-- name: LockTournamentPlayers :many
SELECT tp.id, tp.tournament_id, tp.user_id, u.first_name, u.last_name, tp.status, tp.rank_score, tp.status_changed_at
FROM tournament_players tp
JOIN users u ON u.id = tp.user_id
WHERE tp.id = ANY($1::uuid[])
ORDER BY tp.id
FOR UPDATE OF tp
`

func (q *Queries) LockTournamentPlayers(ctx context.Context, ids []string) ([]TournamentPlayer, error) {
	return q.listTournamentPlayers(ctx, lockTournamentPlayers, ids)
}

func (q *Queries) listTournamentPlayers(ctx context.Context, query string, ids []string) ([]TournamentPlayer, error) {
	rows, err := q.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TournamentPlayer
	for rows.Next() {
		var i TournamentPlayer
		if err := rows.Scan(
			&i.ID,
			&i.TournamentID,
			&i.UserID,
			&i.FirstName,
			&i.LastName,
			&i.Status,
			&i.RankScore,
			&i.StatusChangedAt,
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

const adjustRankScore = `-- name: AdjustRankScore :execrows
UPDATE tournament_players
SET rank_score = COALESCE(rank_score, 0) + $2
WHERE id = $1
`

type AdjustRankScoreParams struct {
	ID    uuid.UUID       `json:"id"`
	Delta decimal.Decimal `json:"delta"`
}

func (q *Queries) AdjustRankScore(ctx context.Context, arg AdjustRankScoreParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, adjustRankScore, arg.ID, arg.Delta)
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

const insertRankScoreHistory = `-- name: InsertRankScoreHistory :exec
INSERT INTO rank_score_history (id, tournament_player_id, match_id, previous_score, new_score, changed_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertRankScoreHistoryParams struct {
	ID                 uuid.UUID       `json:"id"`
	TournamentPlayerID uuid.UUID       `json:"tournament_player_id"`
	MatchID            uuid.UUID       `json:"match_id"`
	PreviousScore      decimal.Decimal `json:"previous_score"`
	NewScore           decimal.Decimal `json:"new_score"`
	ChangedAt          time.Time       `json:"changed_at"`
}

func (q *Queries) InsertRankScoreHistory(ctx context.Context, arg InsertRankScoreHistoryParams) error {
	_, err := q.db.ExecContext(ctx, insertRankScoreHistory,
		arg.ID,
		arg.TournamentPlayerID,
		arg.MatchID,
		arg.PreviousScore,
		arg.NewScore,
		arg.ChangedAt,
	)
	return err
}

const insertOutboxEvent = `-- name: InsertOutboxEvent :exec
INSERT INTO gameday_outbox (game_day_id, event_type, payload)
VALUES ($1, $2, $3)
`

type InsertOutboxEventParams struct {
	GameDayID uuid.UUID `json:"game_day_id"`
	EventType string    `json:"event_type"`
	Payload   []byte    `json:"payload"`
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, arg InsertOutboxEventParams) error {
	_, err := q.db.ExecContext(ctx, insertOutboxEvent, arg.GameDayID, arg.EventType, arg.Payload)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (GameDayMatch, error) {
	var i GameDayMatch
	err := row.Scan(
		&i.ID,
		&i.GroupID,
		&i.MatchOrder,
		&i.Team1Player1ID,
		&i.Team1Player2ID,
		&i.Team2Player1ID,
		&i.Team2Player2ID,
		&i.Team1Score,
		&i.Team2Score,
		&i.Version,
	)
	return i, err
}
