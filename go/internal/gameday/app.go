package gameday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/mcdev12/shuttleleague/go/internal/rating"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Repository defines what the app layer needs from the repository.
// Calls made on the repo handed to an InTx callback share one transaction.
type Repository interface {
	InTx(ctx context.Context, fn func(repo Repository) error) error

	GameDayExists(ctx context.Context, tournamentID uuid.UUID, gameDate time.Time) (bool, error)
	CreateGameDay(ctx context.Context, params NewGameDayParams) (*models.GameDay, error)
	CreateGroup(ctx context.Context, gameDayID uuid.UUID, groupNumber int) (*models.Group, error)
	CreateGroupPlayer(ctx context.Context, params NewGroupPlayerParams) (*models.GroupPlayer, error)
	CreateMatch(ctx context.Context, params NewMatchParams) (*models.Match, error)
	GetGameDay(ctx context.Context, id uuid.UUID) (*models.GameDay, error)
	LockGameDay(ctx context.Context, id uuid.UUID) (*models.GameDay, error)
	ListGameDays(ctx context.Context, tournamentID uuid.UUID) ([]models.GameDay, error)
	UpdateGameDayStatus(ctx context.Context, id uuid.UUID, from, to models.GameDayStatus, at time.Time) error
	DeleteGameDay(ctx context.Context, id uuid.UUID) error
	MatchExists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateMatchScore(ctx context.Context, update ScoreUpdate) (*models.Match, error)
	UpdateMatchScoreIfVersion(ctx context.Context, update ScoreUpdate, version int64) (*models.Match, error)
	GetTournamentPlayers(ctx context.Context, ids []uuid.UUID) ([]models.TournamentPlayer, error)
	LockTournamentPlayers(ctx context.Context, ids []uuid.UUID) ([]models.TournamentPlayer, error)
	GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (*models.LeagueSettings, error)
	InsertRankScoreHistory(ctx context.Context, rows []models.RankScoreHistory) error
	AdjustRankScore(ctx context.Context, tournamentPlayerID uuid.UUID, delta decimal.Decimal) error
	InsertOutboxEvent(ctx context.Context, gameDayID uuid.UUID, eventType events.EventType, payload []byte) error
}

// TournamentAccess defines what the app needs from the tournaments domain
type TournamentAccess interface {
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	CheckAdminAccess(ctx context.Context, caller models.Caller, tournament *models.Tournament) error
	GetPlayerRegistration(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) (*models.TournamentPlayer, error)
}

// App handles game day business logic
type App struct {
	repo        Repository
	tournaments TournamentAccess
	clock       clockwork.Clock

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures an App
type Option func(*App)

// WithClock replaces the wall clock, for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(a *App) { a.clock = clock }
}

// WithRand replaces the source used to shuffle group sizes.
func WithRand(rng *rand.Rand) Option {
	return func(a *App) { a.rng = rng }
}

// NewApp creates a new game day App
func NewApp(repo Repository, tournaments TournamentAccess, opts ...Option) *App {
	a := &App{
		repo:        repo,
		tournaments: tournaments,
		clock:       clockwork.NewRealClock(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CreateGameDay builds a PENDING game day: players are sorted by rating, dealt into
// groups of 4 and 5, and each group gets its fixed match schedule.
func (a *App) CreateGameDay(ctx context.Context, caller models.Caller, tournamentID uuid.UUID, req CreateGameDayRequest) (*models.GameDay, error) {
	tournament, err := a.tournaments.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Type != models.TournamentTypeLeague {
		return nil, apperrors.Validation("Game days can only be created for LEAGUE tournaments")
	}
	if !tournament.Enabled {
		return nil, apperrors.Validation("Tournament is disabled")
	}
	if err := a.tournaments.CheckAdminAccess(ctx, caller, tournament); err != nil {
		return nil, err
	}

	gameDate, err := parseGameDate(req.GameDate)
	if err != nil {
		return nil, err
	}
	if err := validateSelection(req.PlayerIDs); err != nil {
		return nil, err
	}

	var created *models.GameDay
	err = a.repo.InTx(ctx, func(repo Repository) error {
		players, err := a.resolveSelection(ctx, repo, tournamentID, req.PlayerIDs)
		if err != nil {
			return err
		}
		SortRoster(players)

		sizes, err := a.groupSizes(len(players))
		if err != nil {
			return err
		}

		exists, err := repo.GameDayExists(ctx, tournamentID, gameDate)
		if err != nil {
			return fmt.Errorf("failed to check game date: %w", err)
		}
		if exists {
			return duplicateDate(gameDate)
		}

		now := a.now()
		day, err := repo.CreateGameDay(ctx, NewGameDayParams{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			GameDate:     gameDate,
			Status:       models.GameDayStatusPending,
			CreatedAt:    now,
		})
		if errors.Is(err, ErrDuplicateGameDate) {
			return duplicateDate(gameDate)
		}
		if err != nil {
			return fmt.Errorf("failed to create game day: %w", err)
		}

		for i, members := range AssignGroups(players, sizes) {
			if err := a.createGroup(ctx, repo, day.ID, i+1, members); err != nil {
				return err
			}
		}

		if err := a.recordEvent(ctx, repo, day.ID, events.EventTypeGameDayCreated, events.GameDayCreatedPayload{
			GameDayID:    day.ID.String(),
			TournamentID: tournamentID.String(),
			GameDate:     gameDate.Format(models.GameDateLayout),
			GroupSizes:   sizes,
			PlayerCount:  len(players),
			CreatedAt:    now,
		}); err != nil {
			return err
		}

		created, err = repo.GetGameDay(ctx, day.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("game_day_id", created.ID.String()).
		Str("tournament_id", tournamentID.String()).
		Str("game_date", req.GameDate).
		Int("groups", len(created.Groups)).
		Msg("game day created")
	return created, nil
}

// createGroup persists a group and its players, then generates the schedule from
// the stored group player ids.
func (a *App) createGroup(ctx context.Context, repo Repository, gameDayID uuid.UUID, number int, members []models.TournamentPlayer) error {
	group, err := repo.CreateGroup(ctx, gameDayID, number)
	if err != nil {
		return fmt.Errorf("failed to create group %d: %w", number, err)
	}

	seats := make([]uuid.UUID, len(members))
	for pos, p := range members {
		gp, err := repo.CreateGroupPlayer(ctx, NewGroupPlayerParams{
			GroupID:  group.ID,
			Position: pos,
			Player:   p,
		})
		if err != nil {
			return fmt.Errorf("failed to seat player %s in group %d: %w", p.ID, number, err)
		}
		seats[pos] = gp.ID
	}

	schedule, err := GenerateSchedule(seats)
	if err != nil {
		return fmt.Errorf("failed to schedule group %d: %w", number, err)
	}
	for _, m := range schedule {
		if _, err := repo.CreateMatch(ctx, NewMatchParams{
			GroupID:        group.ID,
			MatchOrder:     m.Order,
			Team1Player1ID: m.Team1[0],
			Team1Player2ID: m.Team1[1],
			Team2Player1ID: m.Team2[0],
			Team2Player2ID: m.Team2[1],
		}); err != nil {
			return fmt.Errorf("failed to create match %d of group %d: %w", m.Order, number, err)
		}
	}
	return nil
}

// GetGameDay retrieves a game day with its groups, players and matches
func (a *App) GetGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error) {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return nil, err
	}
	return a.loadDay(ctx, a.repo.GetGameDay, tournamentID, dayID)
}

// ListGameDays retrieves every game day of a tournament, newest date first
func (a *App) ListGameDays(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) ([]models.GameDay, error) {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return nil, err
	}
	days, err := a.repo.ListGameDays(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game days: %w", err)
	}
	return days, nil
}

// StartGameDay moves a PENDING game day to ONGOING
func (a *App) StartGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error) {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return nil, err
	}

	var started *models.GameDay
	err := a.repo.InTx(ctx, func(repo Repository) error {
		day, err := a.loadDay(ctx, repo.LockGameDay, tournamentID, dayID)
		if err != nil {
			return err
		}
		next, err := CheckTransition(day.Status, ActionStart)
		if err != nil {
			return err
		}

		now := a.now()
		if err := a.updateStatus(ctx, repo, day, ActionStart, next, now); err != nil {
			return err
		}
		if err := a.recordEvent(ctx, repo, day.ID, events.EventTypeGameDayStarted, events.GameDayStartedPayload{
			GameDayID:    day.ID.String(),
			TournamentID: tournamentID.String(),
			StartedAt:    now,
		}); err != nil {
			return err
		}

		started, err = repo.GetGameDay(ctx, day.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("game_day_id", dayID.String()).Msg("game day started")
	return started, nil
}

// DiscardGameDay deletes a PENDING game day
func (a *App) DiscardGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) error {
	return a.deleteGameDay(ctx, caller, tournamentID, dayID, ActionDiscard, "discarded")
}

// CancelGameDay deletes a PENDING or ONGOING game day along with its matches
func (a *App) CancelGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) error {
	return a.deleteGameDay(ctx, caller, tournamentID, dayID, ActionCancel, "cancelled")
}

func (a *App) deleteGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID, action Action, reason string) error {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return err
	}

	err := a.repo.InTx(ctx, func(repo Repository) error {
		day, err := a.loadDay(ctx, repo.LockGameDay, tournamentID, dayID)
		if err != nil {
			return err
		}
		if _, err := CheckTransition(day.Status, action); err != nil {
			return err
		}
		if err := repo.DeleteGameDay(ctx, day.ID); err != nil {
			return fmt.Errorf("failed to delete game day: %w", err)
		}
		return a.recordEvent(ctx, repo, day.ID, events.EventTypeGameDayDeleted, events.GameDayDeletedPayload{
			GameDayID:    day.ID.String(),
			TournamentID: tournamentID.String(),
			Reason:       reason,
			DeletedAt:    a.now(),
		})
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("game_day_id", dayID.String()).
		Str("reason", reason).
		Msg("game day deleted")
	return nil
}

// SubmitMatchScore sets or overwrites both scores of a match. Last write wins.
func (a *App) SubmitMatchScore(ctx context.Context, caller models.Caller, tournamentID, dayID, groupID, matchID uuid.UUID, req SubmitMatchScoreRequest) (*models.GameDay, error) {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return nil, err
	}

	var refreshed *models.GameDay
	err := a.repo.InTx(ctx, func(repo Repository) error {
		day, err := a.loadDay(ctx, repo.LockGameDay, tournamentID, dayID)
		if err != nil {
			return err
		}
		group, match, err := a.scorableMatch(ctx, repo, day, groupID, matchID, req)
		if err != nil {
			return err
		}

		updated, err := repo.UpdateMatchScore(ctx, ScoreUpdate{
			MatchID:    match.ID,
			Team1Score: *req.Team1Score,
			Team2Score: *req.Team2Score,
		})
		if err != nil {
			return fmt.Errorf("failed to update match score: %w", err)
		}
		if err := a.recordScoreEvent(ctx, repo, day, group, updated, caller, false); err != nil {
			return err
		}

		refreshed, err = repo.GetGameDay(ctx, day.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("game_day_id", dayID.String()).
		Str("match_id", matchID.String()).
		Int("team1_score", *req.Team1Score).
		Int("team2_score", *req.Team2Score).
		Msg("match score submitted")
	return refreshed, nil
}

// SubmitMatchScoreAsPlayer records a score on behalf of one of the match's players.
// Only the first submission is accepted; a later or concurrent one is a conflict.
func (a *App) SubmitMatchScoreAsPlayer(ctx context.Context, caller models.Caller, tournamentID, dayID, groupID, matchID uuid.UUID, req SubmitMatchScoreRequest) (*models.GameDay, error) {
	registration, err := a.tournaments.GetPlayerRegistration(ctx, caller, tournamentID)
	if err != nil {
		return nil, err
	}

	var refreshed *models.GameDay
	err = a.repo.InTx(ctx, func(repo Repository) error {
		day, err := a.loadDay(ctx, repo.GetGameDay, tournamentID, dayID)
		if err != nil {
			return err
		}
		group, match, err := a.scorableMatch(ctx, repo, day, groupID, matchID, req)
		if err != nil {
			return err
		}
		if !isParticipant(group, match, registration.ID) {
			return apperrors.Forbidden("You can only submit scores for your own matches")
		}
		if match.HasScore() {
			return alreadySubmitted()
		}

		version := match.Version
		if req.ExpectedVersion != nil {
			version = *req.ExpectedVersion
		}
		updated, err := repo.UpdateMatchScoreIfVersion(ctx, ScoreUpdate{
			MatchID:    match.ID,
			Team1Score: *req.Team1Score,
			Team2Score: *req.Team2Score,
		}, version)
		if errors.Is(err, ErrVersionConflict) {
			return alreadySubmitted()
		}
		if err != nil {
			return fmt.Errorf("failed to update match score: %w", err)
		}
		if err := a.recordScoreEvent(ctx, repo, day, group, updated, caller, true); err != nil {
			return err
		}

		refreshed, err = repo.GetGameDay(ctx, day.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			log.Warn().
				Str("match_id", matchID.String()).
				Str("user_id", caller.UserID.String()).
				Msg("rejected duplicate player score submission")
		}
		return nil, err
	}

	log.Info().
		Str("game_day_id", dayID.String()).
		Str("match_id", matchID.String()).
		Str("user_id", caller.UserID.String()).
		Msg("player submitted match score")
	return refreshed, nil
}

// FinishGameDay completes an ONGOING game day: every match is rated against the
// players' current ratings, history rows are written per player per match, and each
// player's net change is applied once. All of it commits together or not at all.
func (a *App) FinishGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error) {
	if _, err := a.authorizeAdmin(ctx, caller, tournamentID); err != nil {
		return nil, err
	}

	var finished *models.GameDay
	err := a.repo.InTx(ctx, func(repo Repository) error {
		day, err := a.loadDay(ctx, repo.LockGameDay, tournamentID, dayID)
		if err != nil {
			return err
		}
		next, err := CheckTransition(day.Status, ActionFinish)
		if err != nil {
			return err
		}
		if err := requireAllScores(day); err != nil {
			return err
		}

		engine, err := a.ratingEngine(ctx, repo, tournamentID)
		if err != nil {
			return err
		}

		results, playerIDs := matchResults(day)
		players, err := repo.LockTournamentPlayers(ctx, playerIDs)
		if err != nil {
			return fmt.Errorf("failed to lock player ratings: %w", err)
		}
		ratings := make(map[uuid.UUID]decimal.Decimal, len(players))
		names := make(map[uuid.UUID]string, len(players))
		for _, p := range players {
			ratings[p.ID] = p.Rating()
			names[p.ID] = p.DisplayName()
		}

		result, err := rating.Compute(engine, results, ratings)
		if err != nil {
			return fmt.Errorf("failed to compute ratings: %w", err)
		}

		now := a.now()
		history := make([]models.RankScoreHistory, len(result.History))
		for i, h := range result.History {
			history[i] = models.RankScoreHistory{
				ID:                 uuid.New(),
				TournamentPlayerID: h.TournamentPlayerID,
				MatchID:            h.MatchID,
				PreviousScore:      h.Previous,
				NewScore:           h.New,
				ChangedAt:          now,
			}
		}
		if err := repo.InsertRankScoreHistory(ctx, history); err != nil {
			return fmt.Errorf("failed to write rank score history: %w", err)
		}

		changes := make([]events.RatingChange, 0, len(result.Deltas))
		for _, id := range result.PlayerIDs() {
			delta := result.Deltas[id]
			if err := repo.AdjustRankScore(ctx, id, delta); err != nil {
				return fmt.Errorf("failed to update rating of player %s: %w", id, err)
			}
			changes = append(changes, events.RatingChange{
				TournamentPlayerID: id.String(),
				DisplayName:        names[id],
				Previous:           ratings[id].StringFixed(2),
				New:                ratings[id].Add(delta).StringFixed(2),
				Delta:              delta.StringFixed(2),
			})
		}

		if err := a.updateStatus(ctx, repo, day, ActionFinish, next, now); err != nil {
			return err
		}
		if err := a.recordEvent(ctx, repo, day.ID, events.EventTypeGameDayCompleted, events.GameDayCompletedPayload{
			GameDayID:     day.ID.String(),
			TournamentID:  tournamentID.String(),
			GameDate:      day.GameDate.Format(models.GameDateLayout),
			MatchCount:    len(results),
			RatingChanges: changes,
			CompletedAt:   now,
		}); err != nil {
			return err
		}

		finished, err = repo.GetGameDay(ctx, day.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("game_day_id", dayID.String()).
		Str("tournament_id", tournamentID.String()).
		Msg("game day finished and rankings updated")
	return finished, nil
}

// ListGameDaysForPlayer lists the tournament's game days for a registered player,
// ONGOING first and then by date, newest first.
func (a *App) ListGameDaysForPlayer(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) ([]GameDaySummary, error) {
	if _, err := a.tournaments.GetPlayerRegistration(ctx, caller, tournamentID); err != nil {
		return nil, err
	}

	days, err := a.repo.ListGameDays(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game days: %w", err)
	}

	summaries := make([]GameDaySummary, len(days))
	for i, d := range days {
		summaries[i] = GameDaySummary{ID: d.ID, GameDate: d.GameDate, Status: d.Status}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		iOngoing := summaries[i].Status == models.GameDayStatusOngoing
		jOngoing := summaries[j].Status == models.GameDayStatusOngoing
		if iOngoing != jOngoing {
			return iOngoing
		}
		return summaries[i].GameDate.After(summaries[j].GameDate)
	})
	return summaries, nil
}

// GetGameDayForPlayer returns the game day reduced to the caller's own group
func (a *App) GetGameDayForPlayer(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error) {
	registration, err := a.tournaments.GetPlayerRegistration(ctx, caller, tournamentID)
	if err != nil {
		return nil, err
	}

	day, err := a.loadDay(ctx, a.repo.GetGameDay, tournamentID, dayID)
	if err != nil {
		return nil, err
	}

	for _, g := range day.Groups {
		for _, p := range g.Players {
			if p.TournamentPlayerID == registration.ID {
				view := *day
				view.Groups = []models.Group{g}
				return &view, nil
			}
		}
	}
	return nil, apperrors.NotFound("You are not part of this game day")
}

func (a *App) authorizeAdmin(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) (*models.Tournament, error) {
	tournament, err := a.tournaments.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := a.tournaments.CheckAdminAccess(ctx, caller, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// loadDay fetches a game day with get and hides days of other tournaments.
func (a *App) loadDay(ctx context.Context, get func(context.Context, uuid.UUID) (*models.GameDay, error), tournamentID, dayID uuid.UUID) (*models.GameDay, error) {
	day, err := get(ctx, dayID)
	if errors.Is(err, ErrGameDayNotFound) {
		return nil, apperrors.NotFound("Game day not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game day: %w", err)
	}
	if day.TournamentID != tournamentID {
		return nil, apperrors.NotFound("Game day not found")
	}
	return day, nil
}

// scorableMatch checks the day is ONGOING, the scores are usable and the match
// sits in the given group of this day.
func (a *App) scorableMatch(ctx context.Context, repo Repository, day *models.GameDay, groupID, matchID uuid.UUID, req SubmitMatchScoreRequest) (*models.Group, *models.Match, error) {
	if _, err := CheckTransition(day.Status, ActionSubmitScore); err != nil {
		return nil, nil, err
	}
	if err := validateScores(req); err != nil {
		return nil, nil, err
	}

	group, match := day.FindMatch(matchID)
	if match == nil {
		exists, err := repo.MatchExists(ctx, matchID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to look up match: %w", err)
		}
		if !exists {
			return nil, nil, apperrors.NotFound("Match not found")
		}
		return nil, nil, apperrors.Validation("Match does not belong to the specified group/day")
	}
	if group.ID != groupID {
		return nil, nil, apperrors.Validation("Match does not belong to the specified group/day")
	}
	return group, match, nil
}

func (a *App) ratingEngine(ctx context.Context, repo Repository, tournamentID uuid.UUID) (rating.Engine, error) {
	settings, err := repo.GetLeagueSettings(ctx, tournamentID)
	if errors.Is(err, ErrSettingsNotFound) {
		return nil, apperrors.Validation("League ELO settings not found for this tournament")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get league settings: %w", err)
	}
	if _, ok := settings.RatingConfig.(models.ModifiedEloConfig); !ok {
		return nil, apperrors.Validation("League ELO settings not found for this tournament")
	}
	engine, err := rating.NewEngine(settings.RatingConfig)
	if err != nil {
		return nil, apperrors.Validation("Invalid league rating settings: %s", err)
	}
	return engine, nil
}

func (a *App) resolveSelection(ctx context.Context, repo Repository, tournamentID uuid.UUID, ids []uuid.UUID) ([]models.TournamentPlayer, error) {
	found, err := repo.GetTournamentPlayers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament players: %w", err)
	}
	byID := make(map[uuid.UUID]models.TournamentPlayer, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	players := make([]models.TournamentPlayer, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, apperrors.NotFound("Tournament player not found: %s", id)
		}
		if p.TournamentID != tournamentID {
			return nil, apperrors.Validation("Player %s does not belong to this tournament", id)
		}
		if p.Status == models.PlayerStatusDisabled {
			return nil, apperrors.Validation("Player %s is DISABLED and cannot be added to a game day", p.DisplayName())
		}
		players = append(players, p)
	}
	return players, nil
}

func (a *App) groupSizes(n int) ([]int, error) {
	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return GroupSizes(n, a.rng)
}

// updateStatus moves the day from the status it was read with. Losing a race is
// reported the same way as an invalid transition.
func (a *App) updateStatus(ctx context.Context, repo Repository, day *models.GameDay, action Action, next models.GameDayStatus, at time.Time) error {
	err := repo.UpdateGameDayStatus(ctx, day.ID, day.Status, next, at)
	if errors.Is(err, ErrStatusChanged) {
		return apperrors.Validation("%s", transitions[action].rejected)
	}
	if err != nil {
		return fmt.Errorf("failed to update game day status: %w", err)
	}
	return nil
}

func (a *App) recordScoreEvent(ctx context.Context, repo Repository, day *models.GameDay, group *models.Group, match *models.Match, caller models.Caller, byPlayer bool) error {
	return a.recordEvent(ctx, repo, day.ID, events.EventTypeMatchScoreSubmitted, events.MatchScoreSubmittedPayload{
		GameDayID:   day.ID.String(),
		GroupID:     group.ID.String(),
		GroupNumber: group.GroupNumber,
		MatchID:     match.ID.String(),
		MatchOrder:  match.MatchOrder,
		Team1Score:  derefInt(match.Team1Score),
		Team2Score:  derefInt(match.Team2Score),
		Version:     match.Version,
		SubmittedBy: caller.UserID.String(),
		ByPlayer:    byPlayer,
		SubmittedAt: a.now(),
	})
}

func (a *App) recordEvent(ctx context.Context, repo Repository, gameDayID uuid.UUID, eventType events.EventType, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	if err := repo.InsertOutboxEvent(ctx, gameDayID, eventType, data); err != nil {
		return fmt.Errorf("failed to insert %s event: %w", eventType, err)
	}
	return nil
}

func (a *App) now() time.Time {
	return a.clock.Now().UTC()
}

func parseGameDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperrors.Validation("Game date is required")
	}
	d, err := time.Parse(models.GameDateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.Validation("Invalid date format. Use YYYY-MM-DD")
	}
	return d, nil
}

func validateSelection(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return apperrors.Validation("Player list is required")
	}
	if err := ValidatePlayerCount(len(ids)); err != nil {
		return err
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return apperrors.Validation("Duplicate player in selection: %s", id)
		}
		seen[id] = true
	}
	return nil
}

const maxScore = math.MaxInt32

func validateScores(req SubmitMatchScoreRequest) error {
	if req.Team1Score == nil || req.Team2Score == nil {
		return apperrors.Validation("Both team1Score and team2Score are required")
	}
	if *req.Team1Score < 0 || *req.Team2Score < 0 {
		return apperrors.Validation("Scores must be non-negative")
	}
	// match scores are stored as INTEGER columns
	if *req.Team1Score > maxScore || *req.Team2Score > maxScore {
		return apperrors.Validation("Scores must not exceed %d", maxScore)
	}
	return nil
}

func requireAllScores(day *models.GameDay) error {
	for _, g := range day.Groups {
		for _, m := range g.Matches {
			if !m.HasScore() {
				return apperrors.Validation("All matches must have scores before finishing. Match #%d in Group %d is missing a score.", m.MatchOrder, g.GroupNumber)
			}
		}
	}
	return nil
}

// matchResults translates every match into tournament player ids and returns the
// distinct players involved, sorted so row locks are always taken in one order.
func matchResults(day *models.GameDay) ([]rating.MatchResult, []uuid.UUID) {
	var results []rating.MatchResult
	seen := make(map[uuid.UUID]bool)
	var playerIDs []uuid.UUID

	for _, g := range day.Groups {
		seat := make(map[uuid.UUID]uuid.UUID, len(g.Players))
		for _, p := range g.Players {
			seat[p.ID] = p.TournamentPlayerID
			if !seen[p.TournamentPlayerID] {
				seen[p.TournamentPlayerID] = true
				playerIDs = append(playerIDs, p.TournamentPlayerID)
			}
		}
		for _, m := range g.Matches {
			results = append(results, rating.MatchResult{
				MatchID:    m.ID,
				Team1:      [2]uuid.UUID{seat[m.Team1Player1ID], seat[m.Team1Player2ID]},
				Team2:      [2]uuid.UUID{seat[m.Team2Player1ID], seat[m.Team2Player2ID]},
				Team1Score: *m.Team1Score,
				Team2Score: *m.Team2Score,
			})
		}
	}

	sort.Slice(playerIDs, func(i, j int) bool { return playerIDs[i].String() < playerIDs[j].String() })
	return results, playerIDs
}

func isParticipant(group *models.Group, match *models.Match, tournamentPlayerID uuid.UUID) bool {
	for _, seatID := range match.PlayerIDs() {
		if p, ok := group.Player(seatID); ok && p.TournamentPlayerID == tournamentPlayerID {
			return true
		}
	}
	return false
}

func duplicateDate(d time.Time) error {
	return apperrors.Validation("A game day already exists for %s in this tournament", d.Format(models.GameDateLayout))
}

func alreadySubmitted() error {
	return apperrors.Conflict("Score was already submitted by another player")
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
