package tournaments

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/auth"
	"github.com/mcdev12/shuttleleague/go/internal/connectutil"
	tournamentv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1/tournamentv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// PublicProcedures can be called without a token.
var PublicProcedures = []string{tournamentv1connect.TournamentServiceGetPublicRankingsProcedure}

// TournamentsApp defines what the service layer needs from the tournaments application
type TournamentsApp interface {
	GetTournamentDetails(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Tournament, *models.LeagueSettings, error)
	UpdateLeagueSettings(ctx context.Context, caller models.Caller, tournamentID uuid.UUID, req UpdateSettingsRequest) (*models.LeagueSettings, error)
	GetPublicRankings(ctx context.Context, tournamentID uuid.UUID) (*Ranking, error)
	GetRankScoreHistory(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID) ([]models.RankScoreHistory, error)
	EnablePlayer(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID) (*models.TournamentPlayer, error)
	DisablePlayer(ctx context.Context, caller models.Caller, tournamentID, tournamentPlayerID uuid.UUID) (*models.TournamentPlayer, error)
}

// Service implements the TournamentService connect handlers
type Service struct {
	app TournamentsApp
}

// NewService creates a new tournaments service
func NewService(app TournamentsApp) *Service {
	return &Service{app: app}
}

// Verify that Service implements the TournamentServiceHandler interface
var _ tournamentv1connect.TournamentServiceHandler = (*Service)(nil)

// GetTournament returns a tournament and its league settings to admins
func (s *Service) GetTournament(ctx context.Context, req *connect.Request[tournamentv1.GetTournamentRequest]) (*connect.Response[tournamentv1.GetTournamentResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	id, err := connectutil.ParseID("tournament_id", req.Msg.TournamentId)
	if err != nil {
		return nil, err
	}
	t, settings, err := s.app.GetTournamentDetails(ctx, caller, id)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&tournamentv1.GetTournamentResponse{
		Tournament: s.tournamentToProto(t),
		Settings:   s.settingsToProto(settings),
	}), nil
}

// UpdateLeagueSettings changes a league's rating parameters
func (s *Service) UpdateLeagueSettings(ctx context.Context, req *connect.Request[tournamentv1.UpdateLeagueSettingsRequest]) (*connect.Response[tournamentv1.UpdateLeagueSettingsResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	id, err := connectutil.ParseID("tournament_id", req.Msg.TournamentId)
	if err != nil {
		return nil, err
	}
	settings, err := s.app.UpdateLeagueSettings(ctx, caller, id, s.protoToUpdateSettingsRequest(req.Msg))
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&tournamentv1.UpdateLeagueSettingsResponse{Settings: s.settingsToProto(settings)}), nil
}

// GetPublicRankings returns the leaderboard. No authentication required.
func (s *Service) GetPublicRankings(ctx context.Context, req *connect.Request[tournamentv1.GetPublicRankingsRequest]) (*connect.Response[tournamentv1.GetPublicRankingsResponse], error) {
	id, err := connectutil.ParseID("tournament_id", req.Msg.TournamentId)
	if err != nil {
		return nil, err
	}
	ranking, err := s.app.GetPublicRankings(ctx, id)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	entries := make([]*tournamentv1.RankingEntry, len(ranking.Entries))
	for i := range ranking.Entries {
		entries[i] = &tournamentv1.RankingEntry{
			Position: int32(ranking.Entries[i].Position),
			Player:   s.playerToProto(&ranking.Entries[i].Player),
		}
	}
	return connect.NewResponse(&tournamentv1.GetPublicRankingsResponse{
		Tournament: s.tournamentToProto(&ranking.Tournament),
		Rankings:   entries,
	}), nil
}

// GetRankScoreHistory returns a player's rating changes
func (s *Service) GetRankScoreHistory(ctx context.Context, req *connect.Request[tournamentv1.GetRankScoreHistoryRequest]) (*connect.Response[tournamentv1.GetRankScoreHistoryResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, playerID, err := parsePlayerRef(req.Msg.TournamentId, req.Msg.TournamentPlayerId)
	if err != nil {
		return nil, err
	}
	history, err := s.app.GetRankScoreHistory(ctx, caller, tournamentID, playerID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	changes := make([]*tournamentv1.RankScoreChange, len(history))
	for i, h := range history {
		changes[i] = &tournamentv1.RankScoreChange{
			MatchId:       h.MatchID.String(),
			PreviousScore: h.PreviousScore.StringFixed(2),
			NewScore:      h.NewScore.StringFixed(2),
			ChangedAt:     timestamppb.New(h.ChangedAt),
		}
	}
	return connect.NewResponse(&tournamentv1.GetRankScoreHistoryResponse{History: changes}), nil
}

// EnablePlayer re-enables a player
func (s *Service) EnablePlayer(ctx context.Context, req *connect.Request[tournamentv1.EnablePlayerRequest]) (*connect.Response[tournamentv1.EnablePlayerResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, playerID, err := parsePlayerRef(req.Msg.TournamentId, req.Msg.TournamentPlayerId)
	if err != nil {
		return nil, err
	}
	tp, err := s.app.EnablePlayer(ctx, caller, tournamentID, playerID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&tournamentv1.EnablePlayerResponse{Player: s.playerToProto(tp)}), nil
}

// DisablePlayer disables a player
func (s *Service) DisablePlayer(ctx context.Context, req *connect.Request[tournamentv1.DisablePlayerRequest]) (*connect.Response[tournamentv1.DisablePlayerResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	tournamentID, playerID, err := parsePlayerRef(req.Msg.TournamentId, req.Msg.TournamentPlayerId)
	if err != nil {
		return nil, err
	}
	tp, err := s.app.DisablePlayer(ctx, caller, tournamentID, playerID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}
	return connect.NewResponse(&tournamentv1.DisablePlayerResponse{Player: s.playerToProto(tp)}), nil
}

func parsePlayerRef(tournamentID, playerID string) (uuid.UUID, uuid.UUID, error) {
	tid, err := connectutil.ParseID("tournament_id", tournamentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	pid, err := connectutil.ParseID("tournament_player_id", playerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tid, pid, nil
}

// Conversion methods between proto and app layer models

func (s *Service) protoToUpdateSettingsRequest(msg *tournamentv1.UpdateLeagueSettingsRequest) UpdateSettingsRequest {
	var req UpdateSettingsRequest
	if msg.K != nil {
		k := int(msg.GetK())
		req.K = &k
	}
	if msg.AbsenteeDemerit != nil {
		d := int(msg.GetAbsenteeDemerit())
		req.AbsenteeDemerit = &d
	}
	req.RankingLogic = msg.RankingLogic
	return req
}

func (s *Service) tournamentToProto(t *models.Tournament) *tournamentv1.Tournament {
	return &tournamentv1.Tournament{
		Id:        t.ID.String(),
		Name:      t.Name,
		Type:      s.tournamentTypeToProto(t.Type),
		Enabled:   t.Enabled,
		CreatedAt: timestamppb.New(t.CreatedAt),
	}
}

func (s *Service) settingsToProto(settings *models.LeagueSettings) *tournamentv1.LeagueSettings {
	if settings == nil {
		return nil
	}
	out := &tournamentv1.LeagueSettings{
		RankingLogic: string(settings.RankingLogic),
		UpdatedAt:    timestamppb.New(settings.UpdatedAt),
	}
	if cfg, ok := settings.RatingConfig.(models.ModifiedEloConfig); ok {
		out.K = int32(cfg.K)
		out.AbsenteeDemerit = int32(cfg.AbsenteeDemerit)
	}
	return out
}

func (s *Service) playerToProto(p *models.TournamentPlayer) *tournamentv1.TournamentPlayer {
	return &tournamentv1.TournamentPlayer{
		Id:          p.ID.String(),
		UserId:      p.UserID.String(),
		DisplayName: p.DisplayName(),
		Status:      s.playerStatusToProto(p.Status),
		RankScore:   formatRating(p.RankScore),
	}
}

func (s *Service) tournamentTypeToProto(t models.TournamentType) tournamentv1.TournamentType {
	switch t {
	case models.TournamentTypeLeague:
		return tournamentv1.TournamentType_TOURNAMENT_TYPE_LEAGUE
	case models.TournamentTypeOneOff:
		return tournamentv1.TournamentType_TOURNAMENT_TYPE_ONE_OFF
	default:
		return tournamentv1.TournamentType_TOURNAMENT_TYPE_UNSPECIFIED
	}
}

func (s *Service) playerStatusToProto(status models.PlayerStatus) tournamentv1.PlayerStatus {
	switch status {
	case models.PlayerStatusEnabled:
		return tournamentv1.PlayerStatus_PLAYER_STATUS_ENABLED
	case models.PlayerStatusDisabled:
		return tournamentv1.PlayerStatus_PLAYER_STATUS_DISABLED
	default:
		return tournamentv1.PlayerStatus_PLAYER_STATUS_UNSPECIFIED
	}
}

func formatRating(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
