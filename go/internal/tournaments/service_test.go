package tournaments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/auth"
	tournamentv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1/tournamentv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "tournaments-test-secret"

type userDirectory map[uuid.UUID]*models.User

func (d userDirectory) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := d[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	return u, nil
}

func newServiceClient(t *testing.T, f *fixture) tournamentv1connect.TournamentServiceClient {
	t.Helper()
	users := userDirectory{
		f.admin.UserID:     {ID: f.admin.UserID, Username: f.admin.Username, Role: models.RoleAdmin},
		f.tournyAdm.UserID: {ID: f.tournyAdm.UserID, Username: f.tournyAdm.Username, Role: models.RoleTournyAdmin},
	}
	for _, c := range f.playerUser {
		users[c.UserID] = &models.User{ID: c.UserID, Username: c.Username, Role: models.RolePlayer}
	}

	interceptor := auth.NewInterceptor(auth.NewVerifier(testSecret), users, PublicProcedures...)
	path, handler := tournamentv1connect.NewTournamentServiceHandler(NewService(f.app), connect.WithInterceptors(interceptor))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return tournamentv1connect.NewTournamentServiceClient(server.Client(), server.URL)
}

func authed[T any](t *testing.T, userID uuid.UUID, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID, time.Now(), time.Hour)
	require.NoError(t, err)
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestServicePublicRankingsWithoutToken(t *testing.T) {
	f := newFixture(t)
	client := newServiceClient(t, f)

	res, err := client.GetPublicRankings(context.Background(), connect.NewRequest(&tournamentv1.GetPublicRankingsRequest{TournamentId: f.league.ID.String()}))
	require.NoError(t, err)

	assert.Equal(t, "Thursday League", res.Msg.GetTournament().GetName())
	require.Len(t, res.Msg.GetRankings(), 4)
	assert.Equal(t, int32(1), res.Msg.Rankings[0].GetPosition())
	require.NotNil(t, res.Msg.Rankings[0].GetPlayer().RankScore)
	assert.Equal(t, "1100.00", res.Msg.Rankings[0].GetPlayer().GetRankScore())
	assert.Nil(t, res.Msg.Rankings[3].GetPlayer().RankScore)
}

func TestServiceRejectsMalformedIDs(t *testing.T) {
	f := newFixture(t)
	client := newServiceClient(t, f)
	ctx := context.Background()

	_, err := client.GetPublicRankings(ctx, connect.NewRequest(&tournamentv1.GetPublicRankingsRequest{TournamentId: "league-1"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.DisablePlayer(ctx, authed(t, f.admin.UserID, &tournamentv1.DisablePlayerRequest{
		TournamentId:       f.league.ID.String(),
		TournamentPlayerId: "",
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestServiceGetTournament(t *testing.T) {
	f := newFixture(t)
	client := newServiceClient(t, f)
	ctx := context.Background()
	ref := &tournamentv1.GetTournamentRequest{TournamentId: f.league.ID.String()}

	res, err := client.GetTournament(ctx, authed(t, f.tournyAdm.UserID, ref))
	require.NoError(t, err)
	assert.Equal(t, tournamentv1.TournamentType_TOURNAMENT_TYPE_LEAGUE, res.Msg.GetTournament().GetType())
	require.NotNil(t, res.Msg.GetSettings())
	assert.Equal(t, int32(32), res.Msg.GetSettings().GetK())
	assert.Equal(t, "MODIFIED_ELO", res.Msg.GetSettings().GetRankingLogic())

	_, err = client.GetTournament(ctx, connect.NewRequest(ref))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = client.GetTournament(ctx, authed(t, f.playerUser[0].UserID, ref))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}

func TestServiceUpdateLeagueSettings(t *testing.T) {
	f := newFixture(t)
	client := newServiceClient(t, f)
	ctx := context.Background()
	k, demerit := int32(40), int32(3)

	res, err := client.UpdateLeagueSettings(ctx, authed(t, f.admin.UserID, &tournamentv1.UpdateLeagueSettingsRequest{
		TournamentId:    f.league.ID.String(),
		K:               &k,
		AbsenteeDemerit: &demerit,
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(40), res.Msg.GetSettings().GetK())
	assert.Equal(t, int32(3), res.Msg.GetSettings().GetAbsenteeDemerit())

	zero := int32(0)
	_, err = client.UpdateLeagueSettings(ctx, authed(t, f.admin.UserID, &tournamentv1.UpdateLeagueSettingsRequest{
		TournamentId:    f.league.ID.String(),
		K:               &zero,
		AbsenteeDemerit: &demerit,
	}))
	var ce *connect.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, connect.CodeInvalidArgument, ce.Code())
	assert.Equal(t, "k must be a positive integer", ce.Message())
}

func TestServicePlayerStatusAndHistory(t *testing.T) {
	f := newFixture(t)
	client := newServiceClient(t, f)
	ctx := context.Background()
	tid, pid := f.league.ID.String(), f.players[1].ID.String()

	res, err := client.DisablePlayer(ctx, authed(t, f.admin.UserID, &tournamentv1.DisablePlayerRequest{TournamentId: tid, TournamentPlayerId: pid}))
	require.NoError(t, err)
	assert.Equal(t, tournamentv1.PlayerStatus_PLAYER_STATUS_DISABLED, res.Msg.GetPlayer().GetStatus())

	_, err = client.DisablePlayer(ctx, authed(t, f.admin.UserID, &tournamentv1.DisablePlayerRequest{TournamentId: tid, TournamentPlayerId: pid}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	enabled, err := client.EnablePlayer(ctx, authed(t, f.admin.UserID, &tournamentv1.EnablePlayerRequest{TournamentId: tid, TournamentPlayerId: pid}))
	require.NoError(t, err)
	assert.Equal(t, tournamentv1.PlayerStatus_PLAYER_STATUS_ENABLED, enabled.Msg.GetPlayer().GetStatus())

	historyReq := &tournamentv1.GetRankScoreHistoryRequest{TournamentId: tid, TournamentPlayerId: pid}
	history, err := client.GetRankScoreHistory(ctx, authed(t, f.playerUser[1].UserID, historyReq))
	require.NoError(t, err)
	assert.Empty(t, history.Msg.GetHistory())

	_, err = client.GetRankScoreHistory(ctx, authed(t, f.playerUser[0].UserID, historyReq))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}
