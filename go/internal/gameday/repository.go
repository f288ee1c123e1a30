package gameday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/mcdev12/shuttleleague/go/internal/gameday/db"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/mcdev12/shuttleleague/go/internal/sqlutil"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

var _ Repository = (*SQLRepository)(nil)

// SQLRepository implements game day data access on Postgres
type SQLRepository struct {
	db      *sql.DB
	queries *db.Queries
	inTx    bool
}

// NewRepository creates a new game day repository
func NewRepository(database *sql.DB) *SQLRepository {
	return &SQLRepository{
		db:      database,
		queries: db.New(database),
	}
}

// InTx runs fn with a repository bound to a single transaction. Nested calls reuse
// the outer transaction.
func (r *SQLRepository) InTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	return sqlutil.Run(ctx, r.db, r.queries.WithTx, func(q *db.Queries) error {
		return fn(&SQLRepository{db: r.db, queries: q, inTx: true})
	})
}

// GameDayExists reports whether the tournament already has a game day on gameDate
func (r *SQLRepository) GameDayExists(ctx context.Context, tournamentID uuid.UUID, gameDate time.Time) (bool, error) {
	exists, err := r.queries.GameDayExists(ctx, db.GameDayExistsParams{
		TournamentID: tournamentID,
		GameDate:     gameDate,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check game day date: %w", err)
	}
	return exists, nil
}

// CreateGameDay inserts the game day row
func (r *SQLRepository) CreateGameDay(ctx context.Context, params NewGameDayParams) (*models.GameDay, error) {
	day, err := r.queries.CreateGameDay(ctx, db.CreateGameDayParams{
		ID:           params.ID,
		TournamentID: params.TournamentID,
		GameDate:     params.GameDate,
		Status:       string(params.Status),
		CreatedAt:    params.CreatedAt,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateGameDate
		}
		return nil, fmt.Errorf("failed to create game day: %w", err)
	}
	return dbGameDayToModel(day), nil
}

// CreateGroup inserts a group of the game day
func (r *SQLRepository) CreateGroup(ctx context.Context, gameDayID uuid.UUID, groupNumber int) (*models.Group, error) {
	group, err := r.queries.CreateGroup(ctx, db.CreateGroupParams{
		GameDayID:   gameDayID,
		GroupNumber: int32(groupNumber),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return &models.Group{
		ID:          group.ID,
		GameDayID:   group.GameDayID,
		GroupNumber: int(group.GroupNumber),
	}, nil
}

// CreateGroupPlayer seats a player, snapshotting their current rating
func (r *SQLRepository) CreateGroupPlayer(ctx context.Context, params NewGroupPlayerParams) (*models.GroupPlayer, error) {
	gp, err := r.queries.CreateGroupPlayer(ctx, db.CreateGroupPlayerParams{
		GroupID:               params.GroupID,
		TournamentPlayerID:    params.Player.ID,
		Position:              int32(params.Position),
		RankScoreAtAssignment: params.Player.RankScore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create group player: %w", err)
	}
	return &models.GroupPlayer{
		ID:                    gp.ID,
		GroupID:               gp.GroupID,
		TournamentPlayerID:    gp.TournamentPlayerID,
		UserID:                params.Player.UserID,
		DisplayName:           params.Player.DisplayName(),
		Position:              int(gp.Position),
		RankScoreAtAssignment: gp.RankScoreAtAssignment,
		CurrentRankScore:      params.Player.RankScore,
	}, nil
}

// CreateMatch inserts a scheduled match
func (r *SQLRepository) CreateMatch(ctx context.Context, params NewMatchParams) (*models.Match, error) {
	m, err := r.queries.CreateMatch(ctx, db.CreateMatchParams{
		GroupID:        params.GroupID,
		MatchOrder:     int32(params.MatchOrder),
		Team1Player1ID: params.Team1Player1ID,
		Team1Player2ID: params.Team1Player2ID,
		Team2Player1ID: params.Team2Player1ID,
		Team2Player2ID: params.Team2Player2ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return dbMatchToModel(m), nil
}

// GetGameDay loads a game day with its groups, players and matches
func (r *SQLRepository) GetGameDay(ctx context.Context, id uuid.UUID) (*models.GameDay, error) {
	day, err := r.queries.GetGameDay(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game day: %w", err)
	}
	return r.loadGameDay(ctx, day)
}

// LockGameDay loads a game day holding its row lock until the transaction ends
func (r *SQLRepository) LockGameDay(ctx context.Context, id uuid.UUID) (*models.GameDay, error) {
	day, err := r.queries.LockGameDay(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock game day: %w", err)
	}
	return r.loadGameDay(ctx, day)
}

// ListGameDays returns the tournament's game days without groups, newest date first
func (r *SQLRepository) ListGameDays(ctx context.Context, tournamentID uuid.UUID) ([]models.GameDay, error) {
	days, err := r.queries.ListGameDaysByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game days: %w", err)
	}
	result := make([]models.GameDay, len(days))
	for i, d := range days {
		result[i] = *dbGameDayToModel(d)
	}
	return result, nil
}

// UpdateGameDayStatus moves a day from one status to another. ErrStatusChanged
// means the day was no longer in from.
func (r *SQLRepository) UpdateGameDayStatus(ctx context.Context, id uuid.UUID, from, to models.GameDayStatus, at time.Time) error {
	rows, err := r.queries.UpdateGameDayStatus(ctx, db.UpdateGameDayStatusParams{
		ID:         id,
		FromStatus: string(from),
		ToStatus:   string(to),
		UpdatedAt:  at,
	})
	if err != nil {
		return fmt.Errorf("failed to update game day status: %w", err)
	}
	if rows == 0 {
		return ErrStatusChanged
	}
	return nil
}

// DeleteGameDay deletes a game day; groups, group players and matches cascade
func (r *SQLRepository) DeleteGameDay(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteGameDay(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game day: %w", err)
	}
	return nil
}

// MatchExists reports whether a match exists in any game day
func (r *SQLRepository) MatchExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.queries.MatchExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check match: %w", err)
	}
	return exists, nil
}

// UpdateMatchScore overwrites both scores and bumps the version
func (r *SQLRepository) UpdateMatchScore(ctx context.Context, update ScoreUpdate) (*models.Match, error) {
	m, err := r.queries.UpdateMatchScore(ctx, db.UpdateMatchScoreParams{
		ID:         update.MatchID,
		Team1Score: int32(update.Team1Score),
		Team2Score: int32(update.Team2Score),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update match score: %w", err)
	}
	return dbMatchToModel(m), nil
}

// UpdateMatchScoreIfVersion writes the scores only while the match is still at
// version. ErrVersionConflict means another write got there first.
func (r *SQLRepository) UpdateMatchScoreIfVersion(ctx context.Context, update ScoreUpdate, version int64) (*models.Match, error) {
	m, err := r.queries.UpdateMatchScoreIfVersion(ctx, db.UpdateMatchScoreIfVersionParams{
		ID:         update.MatchID,
		Team1Score: int32(update.Team1Score),
		Team2Score: int32(update.Team2Score),
		Version:    version,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVersionConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update match score: %w", err)
	}
	return dbMatchToModel(m), nil
}

// GetTournamentPlayers returns the players found among ids. Missing ids are skipped.
func (r *SQLRepository) GetTournamentPlayers(ctx context.Context, ids []uuid.UUID) ([]models.TournamentPlayer, error) {
	rows, err := r.queries.GetTournamentPlayers(ctx, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament players: %w", err)
	}
	return dbTournamentPlayersToModels(rows), nil
}

// LockTournamentPlayers row-locks the players in id order
func (r *SQLRepository) LockTournamentPlayers(ctx context.Context, ids []uuid.UUID) ([]models.TournamentPlayer, error) {
	rows, err := r.queries.LockTournamentPlayers(ctx, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to lock tournament players: %w", err)
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("locked %d of %d tournament players", len(rows), len(ids))
	}
	return dbTournamentPlayersToModels(rows), nil
}

// GetLeagueSettings loads the tournament's rating configuration
func (r *SQLRepository) GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (*models.LeagueSettings, error) {
	s, err := r.queries.GetLeagueSettings(ctx, tournamentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get league settings: %w", err)
	}

	var cfg models.RatingConfig
	if s.RatingConfig.Valid {
		cfg, err = models.UnmarshalRatingConfig(s.RatingConfig.RawMessage)
		if err != nil {
			return nil, fmt.Errorf("failed to decode rating config: %w", err)
		}
	}
	if cfg == nil {
		return nil, ErrSettingsNotFound
	}

	return &models.LeagueSettings{
		TournamentID: s.TournamentID,
		RankingLogic: models.RankingLogic(s.RankingLogic),
		RatingConfig: cfg,
		UpdatedAt:    s.UpdatedAt,
	}, nil
}

// InsertRankScoreHistory appends audit rows
func (r *SQLRepository) InsertRankScoreHistory(ctx context.Context, rows []models.RankScoreHistory) error {
	for _, h := range rows {
		if err := r.queries.InsertRankScoreHistory(ctx, db.InsertRankScoreHistoryParams{
			ID:                 h.ID,
			TournamentPlayerID: h.TournamentPlayerID,
			MatchID:            h.MatchID,
			PreviousScore:      h.PreviousScore,
			NewScore:           h.NewScore,
			ChangedAt:          h.ChangedAt,
		}); err != nil {
			return fmt.Errorf("failed to insert rank score history: %w", err)
		}
	}
	return nil
}

// AdjustRankScore adds delta to the player's rating; a null rating counts as zero
func (r *SQLRepository) AdjustRankScore(ctx context.Context, tournamentPlayerID uuid.UUID, delta decimal.Decimal) error {
	rows, err := r.queries.AdjustRankScore(ctx, db.AdjustRankScoreParams{
		ID:    tournamentPlayerID,
		Delta: delta,
	})
	if err != nil {
		return fmt.Errorf("failed to adjust rank score: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("tournament player %s not found", tournamentPlayerID)
	}
	return nil
}

// InsertOutboxEvent writes an event for the outbox relay
func (r *SQLRepository) InsertOutboxEvent(ctx context.Context, gameDayID uuid.UUID, eventType events.EventType, payload []byte) error {
	if err := r.queries.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		GameDayID: gameDayID,
		EventType: string(eventType),
		Payload:   payload,
	}); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

func (r *SQLRepository) loadGameDay(ctx context.Context, row db.GameDay) (*models.GameDay, error) {
	day := dbGameDayToModel(row)

	groups, err := r.queries.ListGroupsByGameDay(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	players, err := r.queries.ListGroupPlayersByGameDay(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group players: %w", err)
	}
	matches, err := r.queries.ListMatchesByGameDay(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	index := make(map[uuid.UUID]int, len(groups))
	day.Groups = make([]models.Group, len(groups))
	for i, g := range groups {
		index[g.ID] = i
		day.Groups[i] = models.Group{
			ID:          g.ID,
			GameDayID:   g.GameDayID,
			GroupNumber: int(g.GroupNumber),
			Players:     []models.GroupPlayer{},
			Matches:     []models.Match{},
		}
	}
	for _, p := range players {
		i, ok := index[p.GroupID]
		if !ok {
			continue
		}
		day.Groups[i].Players = append(day.Groups[i].Players, dbGroupPlayerToModel(p))
	}
	for _, m := range matches {
		i, ok := index[m.GroupID]
		if !ok {
			continue
		}
		day.Groups[i].Matches = append(day.Groups[i].Matches, *dbMatchToModel(m))
	}
	return day, nil
}

func dbGameDayToModel(d db.GameDay) *models.GameDay {
	return &models.GameDay{
		ID:           d.ID,
		TournamentID: d.TournamentID,
		GameDate:     d.GameDate,
		Status:       models.GameDayStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func dbGroupPlayerToModel(p db.ListGroupPlayersByGameDayRow) models.GroupPlayer {
	tp := models.TournamentPlayer{FirstName: p.FirstName, LastName: p.LastName}
	return models.GroupPlayer{
		ID:                    p.ID,
		GroupID:               p.GroupID,
		TournamentPlayerID:    p.TournamentPlayerID,
		UserID:                p.UserID,
		DisplayName:           tp.DisplayName(),
		Position:              int(p.Position),
		RankScoreAtAssignment: p.RankScoreAtAssignment,
		CurrentRankScore:      p.RankScore,
	}
}

func dbMatchToModel(m db.GameDayMatch) *models.Match {
	return &models.Match{
		ID:             m.ID,
		GroupID:        m.GroupID,
		MatchOrder:     int(m.MatchOrder),
		Team1Player1ID: m.Team1Player1ID,
		Team1Player2ID: m.Team1Player2ID,
		Team2Player1ID: m.Team2Player1ID,
		Team2Player2ID: m.Team2Player2ID,
		Team1Score:     sqlutil.FromSqlInt32(m.Team1Score),
		Team2Score:     sqlutil.FromSqlInt32(m.Team2Score),
		Version:        m.Version,
	}
}

func dbTournamentPlayersToModels(rows []db.TournamentPlayer) []models.TournamentPlayer {
	players := make([]models.TournamentPlayer, len(rows))
	for i, p := range rows {
		players[i] = models.TournamentPlayer{
			ID:              p.ID,
			TournamentID:    p.TournamentID,
			UserID:          p.UserID,
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Status:          models.PlayerStatus(p.Status),
			RankScore:       p.RankScore,
			StatusChangedAt: p.StatusChangedAt,
		}
	}
	return players
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
