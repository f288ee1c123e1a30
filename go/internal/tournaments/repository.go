package tournaments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/mcdev12/shuttleleague/go/internal/tournaments/db"
	"github.com/sqlc-dev/pqtype"
)

var _ TournamentsRepository = (*Repository)(nil)

// Querier defines what the repository needs from the generated queries
type Querier interface {
	GetTournament(ctx context.Context, id uuid.UUID) (db.Tournament, error)
	ListTournamentAdminIDs(ctx context.Context, tournamentID uuid.UUID) ([]uuid.UUID, error)
	GetTournamentPlayer(ctx context.Context, id uuid.UUID) (db.TournamentPlayer, error)
	GetTournamentPlayerByUser(ctx context.Context, arg db.GetTournamentPlayerByUserParams) (db.TournamentPlayer, error)
	ListRankedPlayers(ctx context.Context, tournamentID uuid.UUID) ([]db.TournamentPlayer, error)
	UpdateTournamentPlayerStatus(ctx context.Context, arg db.UpdateTournamentPlayerStatusParams) (int64, error)
	GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (db.LeagueSetting, error)
	UpdateLeagueSettings(ctx context.Context, arg db.UpdateLeagueSettingsParams) (db.LeagueSetting, error)
	ListRankScoreHistory(ctx context.Context, tournamentPlayerID uuid.UUID) ([]db.RankScoreHistory, error)
}

// Repository handles tournament data access
type Repository struct {
	queries Querier
}

// NewRepository creates a new tournaments repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		queries: db.New(database),
	}
}

// GetTournament loads a tournament together with its admin list
func (r *Repository) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	t, err := r.queries.GetTournament(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	adminIDs, err := r.queries.ListTournamentAdminIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament admins: %w", err)
	}

	return &models.Tournament{
		ID:        t.ID,
		Name:      t.Name,
		Type:      models.TournamentType(t.Type),
		Enabled:   t.Enabled,
		OwnerID:   t.OwnerID,
		AdminIDs:  adminIDs,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}, nil
}

// GetTournamentPlayer retrieves a registration by its ID
func (r *Repository) GetTournamentPlayer(ctx context.Context, id uuid.UUID) (*models.TournamentPlayer, error) {
	tp, err := r.queries.GetTournamentPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament player: %w", err)
	}
	return dbTournamentPlayerToModel(tp), nil
}

// GetTournamentPlayerByUser retrieves a user's registration in a tournament
func (r *Repository) GetTournamentPlayerByUser(ctx context.Context, tournamentID, userID uuid.UUID) (*models.TournamentPlayer, error) {
	tp, err := r.queries.GetTournamentPlayerByUser(ctx, db.GetTournamentPlayerByUserParams{
		TournamentID: tournamentID,
		UserID:       userID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament player: %w", err)
	}
	return dbTournamentPlayerToModel(tp), nil
}

// ListRankedPlayers returns a tournament's players by rank score descending, nulls last
func (r *Repository) ListRankedPlayers(ctx context.Context, tournamentID uuid.UUID) ([]models.TournamentPlayer, error) {
	rows, err := r.queries.ListRankedPlayers(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranked players: %w", err)
	}
	players := make([]models.TournamentPlayer, len(rows))
	for i, row := range rows {
		players[i] = *dbTournamentPlayerToModel(row)
	}
	return players, nil
}

// UpdatePlayerStatus moves a registration from one status to another. It returns
// ErrStatusChanged when the row is no longer in the from status.
func (r *Repository) UpdatePlayerStatus(ctx context.Context, id uuid.UUID, from, to models.PlayerStatus, at time.Time) error {
	n, err := r.queries.UpdateTournamentPlayerStatus(ctx, db.UpdateTournamentPlayerStatusParams{
		ID:              id,
		FromStatus:      string(from),
		ToStatus:        string(to),
		StatusChangedAt: at,
	})
	if err != nil {
		return fmt.Errorf("failed to update player status: %w", err)
	}
	if n == 0 {
		return ErrStatusChanged
	}
	return nil
}

// GetLeagueSettings loads the rating settings of a LEAGUE tournament
func (r *Repository) GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (*models.LeagueSettings, error) {
	s, err := r.queries.GetLeagueSettings(ctx, tournamentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get league settings: %w", err)
	}
	return dbLeagueSettingToModel(s)
}

// UpdateLeagueSettings stores a new rating config
func (r *Repository) UpdateLeagueSettings(ctx context.Context, tournamentID uuid.UUID, cfg models.RatingConfig, at time.Time) (*models.LeagueSettings, error) {
	raw, err := models.MarshalRatingConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rating config: %w", err)
	}

	s, err := r.queries.UpdateLeagueSettings(ctx, db.UpdateLeagueSettingsParams{
		TournamentID: tournamentID,
		RatingConfig: pqtype.NullRawMessage{RawMessage: raw, Valid: raw != nil},
		UpdatedAt:    at,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update league settings: %w", err)
	}
	return dbLeagueSettingToModel(s)
}

// ListRankScoreHistory returns a player's rating history, newest first
func (r *Repository) ListRankScoreHistory(ctx context.Context, tournamentPlayerID uuid.UUID) ([]models.RankScoreHistory, error) {
	rows, err := r.queries.ListRankScoreHistory(ctx, tournamentPlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rank score history: %w", err)
	}
	history := make([]models.RankScoreHistory, len(rows))
	for i, h := range rows {
		history[i] = models.RankScoreHistory{
			ID:                 h.ID,
			TournamentPlayerID: h.TournamentPlayerID,
			MatchID:            h.MatchID,
			PreviousScore:      h.PreviousScore,
			NewScore:           h.NewScore,
			ChangedAt:          h.ChangedAt,
		}
	}
	return history, nil
}

func dbTournamentPlayerToModel(p db.TournamentPlayer) *models.TournamentPlayer {
	return &models.TournamentPlayer{
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

func dbLeagueSettingToModel(s db.LeagueSetting) (*models.LeagueSettings, error) {
	var cfg models.RatingConfig
	if s.RatingConfig.Valid {
		var err error
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
