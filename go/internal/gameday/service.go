package gameday

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/auth"
	"github.com/mcdev12/shuttleleague/go/internal/connectutil"
	gamedayv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/gameday/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/gameday/v1/gamedayv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// GameDayApp defines what the service layer needs from the game day application
type GameDayApp interface {
	CreateGameDay(ctx context.Context, caller models.Caller, tournamentID uuid.UUID, req CreateGameDayRequest) (*models.GameDay, error)
	GetGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error)
	ListGameDays(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) ([]models.GameDay, error)
	StartGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error)
	DiscardGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) error
	CancelGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) error
	SubmitMatchScore(ctx context.Context, caller models.Caller, tournamentID, dayID, groupID, matchID uuid.UUID, req SubmitMatchScoreRequest) (*models.GameDay, error)
	SubmitMatchScoreAsPlayer(ctx context.Context, caller models.Caller, tournamentID, dayID, groupID, matchID uuid.UUID, req SubmitMatchScoreRequest) (*models.GameDay, error)
	FinishGameDay(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error)
	ListGameDaysForPlayer(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) ([]GameDaySummary, error)
	GetGameDayForPlayer(ctx context.Context, caller models.Caller, tournamentID, dayID uuid.UUID) (*models.GameDay, error)
}

// Service implements the GameDayService connect handlers
type Service struct {
	app GameDayApp
}

// NewService creates a new game day service
func NewService(app GameDayApp) *Service {
	return &Service{app: app}
}

// Verify that Service implements the GameDayServiceHandler interface
var _ gamedayv1connect.GameDayServiceHandler = (*Service)(nil)

// CreateGameDay creates a PENDING game day
func (s *Service) CreateGameDay(ctx context.Context, req *connect.Request[gamedayv1.CreateGameDayRequest]) (*connect.Response[gamedayv1.CreateGameDayResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, err := connectutil.ParseID("tournament_id", req.Msg.TournamentId)
	if err != nil {
		return nil, err
	}
	playerIDs := make([]uuid.UUID, len(req.Msg.PlayerIds))
	for i, raw := range req.Msg.PlayerIds {
		if playerIDs[i], err = connectutil.ParseID("player_ids", raw); err != nil {
			return nil, err
		}
	}

	day, err := s.app.CreateGameDay(ctx, caller, tournamentID, CreateGameDayRequest{
		GameDate:  req.Msg.GameDate,
		PlayerIDs: playerIDs,
	})
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.CreateGameDayResponse{GameDay: GameDayToProto(day)}), nil
}

// GetGameDay returns the full game day
func (s *Service) GetGameDay(ctx context.Context, req *connect.Request[gamedayv1.GetGameDayRequest]) (*connect.Response[gamedayv1.GetGameDayResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, dayID, err := parseDayRef(req.Msg.TournamentId, req.Msg.GameDayId)
	if err != nil {
		return nil, err
	}
	day, err := s.app.GetGameDay(ctx, caller, tournamentID, dayID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.GetGameDayResponse{GameDay: GameDayToProto(day)}), nil
}

// ListGameDays lists a tournament's game days for admins
func (s *Service) ListGameDays(ctx context.Context, req *connect.Request[gamedayv1.ListGameDaysRequest]) (*connect.Response[gamedayv1.ListGameDaysResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, err := connectutil.ParseID("tournament_id", req.Msg.TournamentId)
	if err != nil {
		return nil, err
	}
	days, err := s.app.ListGameDays(ctx, caller, tournamentID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	summaries := make([]*gamedayv1.GameDaySummary, len(days))
	for i, d := range days {
		summaries[i] = summaryToProto(GameDaySummary{ID: d.ID, GameDate: d.GameDate, Status: d.Status})
	}
	return connect.NewResponse(&gamedayv1.ListGameDaysResponse{GameDays: summaries}), nil
}

// StartGameDay moves a game day to ONGOING
func (s *Service) StartGameDay(ctx context.Context, req *connect.Request[gamedayv1.StartGameDayRequest]) (*connect.Response[gamedayv1.StartGameDayResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, dayID, err := parseDayRef(req.Msg.TournamentId, req.Msg.GameDayId)
	if err != nil {
		return nil, err
	}
	day, err := s.app.StartGameDay(ctx, caller, tournamentID, dayID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.StartGameDayResponse{GameDay: GameDayToProto(day)}), nil
}

// DiscardGameDay deletes a PENDING game day
func (s *Service) DiscardGameDay(ctx context.Context, req *connect.Request[gamedayv1.DiscardGameDayRequest]) (*connect.Response[gamedayv1.DiscardGameDayResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, dayID, err := parseDayRef(req.Msg.TournamentId, req.Msg.GameDayId)
	if err != nil {
		return nil, err
	}
	if err := s.app.DiscardGameDay(ctx, caller, tournamentID, dayID); err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.DiscardGameDayResponse{}), nil
}

// CancelGameDay deletes a PENDING or ONGOING game day
func (s *Service) CancelGameDay(ctx context.Context, req *connect.Request[gamedayv1.CancelGameDayRequest]) (*connect.Response[gamedayv1.CancelGameDayResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, dayID, err := parseDayRef(req.Msg.TournamentId, req.Msg.GameDayId)
	if err != nil {
		return nil, err
	}
	if err := s.app.CancelGameDay(ctx, caller, tournamentID, dayID); err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.CancelGameDayResponse{}), nil
}

// SubmitMatchScore records a score as a tournament admin
func (s *Service) SubmitMatchScore(ctx context.Context, req *connect.Request[gamedayv1.SubmitMatchScoreRequest]) (*connect.Response[gamedayv1.SubmitMatchScoreResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	ref, err := parseMatchRef(req.Msg.TournamentId, req.Msg.GameDayId, req.Msg.GroupId, req.Msg.MatchId)
	if err != nil {
		return nil, err
	}
	day, err := s.app.SubmitMatchScore(ctx, caller, ref.tournamentID, ref.dayID, ref.groupID, ref.matchID,
		scoreRequest(req.Msg.Team1Score, req.Msg.Team2Score, req.Msg.ExpectedVersion))
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.SubmitMatchScoreResponse{GameDay: GameDayToProto(day)}), nil
}

// SubmitMatchScoreAsPlayer records a score as one of the match's players
func (s *Service) SubmitMatchScoreAsPlayer(ctx context.Context, req *connect.Request[gamedayv1.SubmitMatchScoreAsPlayerRequest]) (*connect.Response[gamedayv1.SubmitMatchScoreAsPlayerResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	ref, err := parseMatchRef(req.Msg.TournamentId, req.Msg.GameDayId, req.Msg.GroupId, req.Msg.MatchId)
	if err != nil {
		return nil, err
	}
	day, err := s.app.SubmitMatchScoreAsPlayer(ctx, caller, ref.tournamentID, ref.dayID, ref.groupID, ref.matchID,
		scoreRequest(req.Msg.Team1Score, req.Msg.Team2Score, req.Msg.ExpectedVersion))
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.SubmitMatchScoreAsPlayerResponse{GameDay: GameDayToProto(day)}), nil
}

// FinishGameDay completes a game day and applies the rating changes
func (s *Service) FinishGameDay(ctx context.Context, req *connect.Request[gamedayv1.FinishGameDayRequest]) (*connect.Response[gamedayv1.FinishGameDayResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, dayID, err := parseDayRef(req.Msg.TournamentId, req.Msg.GameDayId)
	if err != nil {
		return nil, err
	}
	day, err := s.app.FinishGameDay(ctx, caller, tournamentID, dayID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.FinishGameDayResponse{GameDay: GameDayToProto(day)}), nil
}

// ListGameDaysForPlayer lists game days for a registered player
func (s *Service) ListGameDaysForPlayer(ctx context.Context, req *connect.Request[gamedayv1.ListGameDaysForPlayerRequest]) (*connect.Response[gamedayv1.ListGameDaysForPlayerResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, err := connectutil.ParseID("tournament_id", req.Msg.TournamentId)
	if err != nil {
		return nil, err
	}
	summaries, err := s.app.ListGameDaysForPlayer(ctx, caller, tournamentID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	out := make([]*gamedayv1.GameDaySummary, len(summaries))
	for i, d := range summaries {
		out[i] = summaryToProto(d)
	}
	return connect.NewResponse(&gamedayv1.ListGameDaysForPlayerResponse{GameDays: out}), nil
}

// GetGameDayForPlayer returns the caller's group of a game day
func (s *Service) GetGameDayForPlayer(ctx context.Context, req *connect.Request[gamedayv1.GetGameDayForPlayerRequest]) (*connect.Response[gamedayv1.GetGameDayForPlayerResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, dayID, err := parseDayRef(req.Msg.TournamentId, req.Msg.GameDayId)
	if err != nil {
		return nil, err
	}
	day, err := s.app.GetGameDayForPlayer(ctx, caller, tournamentID, dayID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&gamedayv1.GetGameDayForPlayerResponse{GameDay: GameDayToProto(day)}), nil
}

func parseDayRef(tournamentID, dayID string) (uuid.UUID, uuid.UUID, error) {
	tid, err := connectutil.ParseID("tournament_id", tournamentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	did, err := connectutil.ParseID("game_day_id", dayID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tid, did, nil
}

type matchRef struct {
	tournamentID, dayID, groupID, matchID uuid.UUID
}

func parseMatchRef(tournamentID, dayID, groupID, matchID string) (matchRef, error) {
	var ref matchRef
	var err error
	if ref.tournamentID, ref.dayID, err = parseDayRef(tournamentID, dayID); err != nil {
		return ref, err
	}
	if ref.groupID, err = connectutil.ParseID("group_id", groupID); err != nil {
		return ref, err
	}
	if ref.matchID, err = connectutil.ParseID("match_id", matchID); err != nil {
		return ref, err
	}
	return ref, nil
}

func scoreRequest(team1, team2 *int32, expectedVersion *int64) SubmitMatchScoreRequest {
	return SubmitMatchScoreRequest{
		Team1Score:      intPtr(team1),
		Team2Score:      intPtr(team2),
		ExpectedVersion: expectedVersion,
	}
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

// GameDayToProto converts a game day into its wire shape. Match seats carry
// the players' tournament identities and display names.
func GameDayToProto(day *models.GameDay) *gamedayv1.GameDay {
	out := &gamedayv1.GameDay{
		Id:           day.ID.String(),
		TournamentId: day.TournamentID.String(),
		GameDate:     day.GameDate.Format(models.GameDateLayout),
		Status:       gameDayStatusToProto(day.Status),
		CreatedAt:    timestamppb.New(day.CreatedAt),
		UpdatedAt:    timestamppb.New(day.UpdatedAt),
		Groups:       make([]*gamedayv1.Group, len(day.Groups)),
	}
	for i, g := range day.Groups {
		group := &gamedayv1.Group{
			Id:          g.ID.String(),
			GroupNumber: int32(g.GroupNumber),
			Players:     make([]*gamedayv1.GroupPlayer, len(g.Players)),
			Matches:     make([]*gamedayv1.Match, len(g.Matches)),
		}
		for j, p := range g.Players {
			group.Players[j] = &gamedayv1.GroupPlayer{
				Id:                    p.ID.String(),
				TournamentPlayerId:    p.TournamentPlayerID.String(),
				UserId:                p.UserID.String(),
				DisplayName:           p.DisplayName,
				Position:              int32(p.Position),
				Label:                 PositionLabel(p.Position),
				RankScoreAtAssignment: formatRating(p.RankScoreAtAssignment),
				CurrentRankScore:      formatRating(p.CurrentRankScore),
			}
		}
		for j, m := range g.Matches {
			group.Matches[j] = &gamedayv1.Match{
				Id:           m.ID.String(),
				MatchOrder:   int32(m.MatchOrder),
				Team1Player1: matchPlayerToProto(g, m.Team1Player1ID),
				Team1Player2: matchPlayerToProto(g, m.Team1Player2ID),
				Team2Player1: matchPlayerToProto(g, m.Team2Player1ID),
				Team2Player2: matchPlayerToProto(g, m.Team2Player2ID),
				Team1Score:   int32Ptr(m.Team1Score),
				Team2Score:   int32Ptr(m.Team2Score),
				Version:      m.Version,
			}
		}
		out.Groups[i] = group
	}
	return out
}

func matchPlayerToProto(g models.Group, seatID uuid.UUID) *gamedayv1.MatchPlayer {
	mp := &gamedayv1.MatchPlayer{GroupPlayerId: seatID.String()}
	if p, ok := g.Player(seatID); ok {
		mp.TournamentPlayerId = p.TournamentPlayerID.String()
		mp.DisplayName = p.DisplayName
	}
	return mp
}

func summaryToProto(d GameDaySummary) *gamedayv1.GameDaySummary {
	return &gamedayv1.GameDaySummary{
		Id:       d.ID.String(),
		GameDate: d.GameDate.Format(models.GameDateLayout),
		Status:   gameDayStatusToProto(d.Status),
	}
}

func gameDayStatusToProto(status models.GameDayStatus) gamedayv1.GameDayStatus {
	switch status {
	case models.GameDayStatusPending:
		return gamedayv1.GameDayStatus_GAME_DAY_STATUS_PENDING
	case models.GameDayStatusOngoing:
		return gamedayv1.GameDayStatus_GAME_DAY_STATUS_ONGOING
	case models.GameDayStatusCompleted:
		return gamedayv1.GameDayStatus_GAME_DAY_STATUS_COMPLETED
	default:
		return gamedayv1.GameDayStatus_GAME_DAY_STATUS_UNSPECIFIED
	}
}

// PositionLabel returns the schedule letter of a seat: 0 is "A".
func PositionLabel(position int) string {
	if position < 0 || position > 25 {
		return ""
	}
	return string(rune('A' + position))
}

func formatRating(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
