package tournaments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/mcdev12/shuttleleague/go/internal/rating"
	"github.com/rs/zerolog/log"
)

// TournamentsRepository defines what the app layer needs from the repository
type TournamentsRepository interface {
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	GetTournamentPlayer(ctx context.Context, id uuid.UUID) (*models.TournamentPlayer, error)
	GetTournamentPlayerByUser(ctx context.Context, tournamentID, userID uuid.UUID) (*models.TournamentPlayer, error)
	ListRankedPlayers(ctx context.Context, tournamentID uuid.UUID) ([]models.TournamentPlayer, error)
	UpdatePlayerStatus(ctx context.Context, id uuid.UUID, from, to models.PlayerStatus, at time.Time) error
	GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (*models.LeagueSettings, error)
	UpdateLeagueSettings(ctx context.Context, tournamentID uuid.UUID, cfg models.RatingConfig, at time.Time) (*models.LeagueSettings, error)
	ListRankScoreHistory(ctx context.Context, tournamentPlayerID uuid.UUID) ([]models.RankScoreHistory, error)
}

// App handles tournament access rules, league settings and rankings
type App struct {
	repo  TournamentsRepository
	clock clockwork.Clock
}

// NewApp creates a new tournaments App
func NewApp(repo TournamentsRepository, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// GetTournament retrieves a tournament with its admin list
func (a *App) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	t, err := a.repo.GetTournament(ctx, id)
	if errors.Is(err, ErrTournamentNotFound) {
		return nil, apperrors.NotFound("Tournament not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

// CheckAdminAccess allows global admins everywhere and tournament admins only on
// tournaments that list them.
func (a *App) CheckAdminAccess(ctx context.Context, caller models.Caller, tournament *models.Tournament) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleTournyAdmin:
		if tournament.HasAdmin(caller.UserID) {
			return nil
		}
	}
	return apperrors.Forbidden("Access denied: you are not an admin of this tournament")
}

// GetPlayerRegistration returns the caller's enabled registration in the tournament.
// Only PLAYER accounts have one.
func (a *App) GetPlayerRegistration(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) (*models.TournamentPlayer, error) {
	if caller.Role != models.RolePlayer {
		return nil, apperrors.Forbidden("Only players can access this resource")
	}
	if _, err := a.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	tp, err := a.repo.GetTournamentPlayerByUser(ctx, tournamentID, caller.UserID)
	if errors.Is(err, ErrPlayerNotFound) {
		return nil, apperrors.Forbidden("You are not registered in this tournament")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	if tp.Status == models.PlayerStatusDisabled {
		return nil, apperrors.Forbidden("You are not registered in this tournament")
	}
	return tp, nil
}

// GetTournamentDetails returns a tournament and, for leagues, its rating settings.
func (a *App) GetTournamentDetails(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Tournament, *models.LeagueSettings, error) {
	t, err := a.authorizeAdmin(ctx, caller, id)
	if err != nil {
		return nil, nil, err
	}
	if t.Type != models.TournamentTypeLeague {
		return t, nil, nil
	}

	settings, err := a.repo.GetLeagueSettings(ctx, id)
	if errors.Is(err, ErrSettingsNotFound) {
		return t, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get league settings: %w", err)
	}
	return t, settings, nil
}

// UpdateLeagueSettings replaces the numeric parameters of a league's rating
// algorithm. The algorithm itself is fixed when the tournament is created.
func (a *App) UpdateLeagueSettings(ctx context.Context, caller models.Caller, tournamentID uuid.UUID, req UpdateSettingsRequest) (*models.LeagueSettings, error) {
	t, err := a.authorizeAdmin(ctx, caller, tournamentID)
	if err != nil {
		return nil, err
	}

	current, err := a.repo.GetLeagueSettings(ctx, tournamentID)
	if errors.Is(err, ErrSettingsNotFound) || (err == nil && t.Type != models.TournamentTypeLeague) {
		return nil, apperrors.Validation("League settings not found for this tournament")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get league settings: %w", err)
	}

	if req.RankingLogic != nil && models.RankingLogic(*req.RankingLogic) != current.RankingLogic {
		return nil, apperrors.Validation("Ranking logic cannot be changed after tournament creation")
	}
	if req.K == nil || *req.K <= 0 {
		return nil, apperrors.Validation("k must be a positive integer")
	}
	if req.AbsenteeDemerit == nil || *req.AbsenteeDemerit < 0 {
		return nil, apperrors.Validation("Absentee demerit must be non-negative")
	}

	cfg := models.ModifiedEloConfig{K: *req.K, AbsenteeDemerit: *req.AbsenteeDemerit}
	if _, err := rating.NewEngine(cfg); err != nil {
		return nil, apperrors.Validation("Invalid rating settings: %s", err)
	}

	updated, err := a.repo.UpdateLeagueSettings(ctx, tournamentID, cfg, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to update league settings: %w", err)
	}

	log.Info().
		Str("tournament_id", tournamentID.String()).
		Int("k", cfg.K).
		Int("absentee_demerit", cfg.AbsenteeDemerit).
		Msg("league settings updated")
	return updated, nil
}

// GetPublicRankings returns every registered player ordered by rating, unrated last.
func (a *App) GetPublicRankings(ctx context.Context, tournamentID uuid.UUID) (*Ranking, error) {
	t, err := a.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	players, err := a.repo.ListRankedPlayers(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranked players: %w", err)
	}

	ranking := &Ranking{Tournament: *t, Entries: make([]RankingEntry, len(players))}
	for i, p := range players {
		ranking.Entries[i] = RankingEntry{Position: i + 1, Player: p}
	}
	return ranking, nil
}

// GetRankScoreHistory lists a player's rating changes, newest first. Admins may
// read any player's history; players only their own.
func (a *App) GetRankScoreHistory(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID) ([]models.RankScoreHistory, error) {
	t, err := a.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	tp, err := a.repo.GetTournamentPlayer(ctx, tournamentPlayerID)
	if errors.Is(err, ErrPlayerNotFound) || (err == nil && tp.TournamentID != tournamentID) {
		return nil, apperrors.NotFound("Tournament player not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament player: %w", err)
	}

	if tp.UserID != caller.UserID {
		if err := a.CheckAdminAccess(ctx, caller, t); err != nil {
			return nil, err
		}
	}

	history, err := a.repo.ListRankScoreHistory(ctx, tournamentPlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rank score history: %w", err)
	}
	return history, nil
}

// EnablePlayer re-enables a DISABLED registration
func (a *App) EnablePlayer(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID) (*models.TournamentPlayer, error) {
	return a.changePlayerStatus(ctx, caller, tournamentID, tournamentPlayerID, models.PlayerStatusEnabled)
}

// DisablePlayer keeps a player registered but out of future game days
func (a *App) DisablePlayer(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID) (*models.TournamentPlayer, error) {
	return a.changePlayerStatus(ctx, caller, tournamentID, tournamentPlayerID, models.PlayerStatusDisabled)
}

func (a *App) changePlayerStatus(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID, to models.PlayerStatus) (*models.TournamentPlayer, error) {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return nil, err
	}

	tp, err := a.repo.GetTournamentPlayer(ctx, tournamentPlayerID)
	if errors.Is(err, ErrPlayerNotFound) || (err == nil && tp.TournamentID != tournamentID) {
		return nil, apperrors.NotFound("Tournament player not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament player: %w", err)
	}

	rejected := statusRejection(tp.Status, to)
	if rejected != "" {
		return nil, apperrors.Validation("%s", rejected)
	}

	now := a.clock.Now().UTC()
	err = a.repo.UpdatePlayerStatus(ctx, tp.ID, tp.Status, to, now)
	if errors.Is(err, ErrStatusChanged) {
		return nil, apperrors.Validation("%s", statusRejection(to, to))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update player status: %w", err)
	}

	log.Info().
		Str("tournament_id", tournamentID.String()).
		Str("tournament_player_id", tp.ID.String()).
		Str("status", string(to)).
		Msg("player status changed")

	tp.Status = to
	tp.StatusChangedAt = now
	return tp, nil
}

// statusRejection returns why a player in status from cannot move to to, or "".
func statusRejection(from, to models.PlayerStatus) string {
	switch to {
	case models.PlayerStatusEnabled:
		if from != models.PlayerStatusDisabled {
			return "Player can only be enabled when currently DISABLED"
		}
	case models.PlayerStatusDisabled:
		if from == models.PlayerStatusDisabled {
			return "Player is already DISABLED"
		}
	}
	return ""
}

func (a *App) authorizeAdmin(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) (*models.Tournament, error) {
	t, err := a.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := a.CheckAdminAccess(ctx, caller, t); err != nil {
		return nil, err
	}
	return t, nil
}
