package gameday

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
	gamedayv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/gameday/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/gameday/v1/gamedayv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "gameday-test-secret"

type userDirectory map[uuid.UUID]*models.User

func (d userDirectory) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := d[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	return u, nil
}

type serviceFixture struct {
	*fixture
	client gamedayv1connect.GameDayServiceClient
	users  userDirectory
}

func newServiceFixture(t *testing.T, playerCount int) *serviceFixture {
	t.Helper()
	f := newFixture(t, playerCount)

	users := userDirectory{
		f.admin.UserID: {ID: f.admin.UserID, Username: f.admin.Username, Role: models.RoleAdmin},
	}
	for _, p := range f.players {
		users[p.UserID] = &models.User{ID: p.UserID, Username: p.DisplayName(), Role: models.RolePlayer}
	}

	interceptor := auth.NewInterceptor(auth.NewVerifier(testSecret), users)
	path, handler := gamedayv1connect.NewGameDayServiceHandler(NewService(f.app), connect.WithInterceptors(interceptor))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &serviceFixture{
		fixture: f,
		client:  gamedayv1connect.NewGameDayServiceClient(server.Client(), server.URL),
		users:   users,
	}
}

func (f *serviceFixture) playerIDStrings() []string {
	ids := f.playerIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func authed[T any](t *testing.T, userID uuid.UUID, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID, time.Now(), time.Hour)
	require.NoError(t, err)
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func score(n int32) *int32 { return &n }

func TestServiceGameDayFlow(t *testing.T) {
	f := newServiceFixture(t, 4)
	ctx := context.Background()
	tid := f.tournament.ID.String()

	created, err := f.client.CreateGameDay(ctx, authed(t, f.admin.UserID, &gamedayv1.CreateGameDayRequest{
		TournamentId: tid,
		GameDate:     "2026-03-12",
		PlayerIds:    f.playerIDStrings(),
	}))
	require.NoError(t, err)
	day := created.Msg.GetGameDay()
	require.NotNil(t, day)
	assert.Equal(t, gamedayv1.GameDayStatus_GAME_DAY_STATUS_PENDING, day.GetStatus())
	assert.Equal(t, "2026-03-12", day.GetGameDate())
	require.Len(t, day.GetGroups(), 1)
	players := day.Groups[0].GetPlayers()
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{
		players[0].GetLabel(), players[1].GetLabel(), players[2].GetLabel(), players[3].GetLabel(),
	})
	require.NotNil(t, players[0].RankScoreAtAssignment)
	assert.Equal(t, "1000.00", players[0].GetRankScoreAtAssignment())

	_, err = f.client.StartGameDay(ctx, authed(t, f.admin.UserID, &gamedayv1.StartGameDayRequest{TournamentId: tid, GameDayId: day.GetId()}))
	require.NoError(t, err)

	group := day.Groups[0]
	for i, m := range group.GetMatches() {
		_, err := f.client.SubmitMatchScore(ctx, authed(t, f.admin.UserID, &gamedayv1.SubmitMatchScoreRequest{
			TournamentId: tid,
			GameDayId:    day.GetId(),
			GroupId:      group.GetId(),
			MatchId:      m.GetId(),
			Team1Score:   score(21),
			Team2Score:   score(int32(10 + i)),
		}))
		require.NoError(t, err)
	}

	finished, err := f.client.FinishGameDay(ctx, authed(t, f.admin.UserID, &gamedayv1.FinishGameDayRequest{TournamentId: tid, GameDayId: day.GetId()}))
	require.NoError(t, err)
	assert.Equal(t, gamedayv1.GameDayStatus_GAME_DAY_STATUS_COMPLETED, finished.Msg.GetGameDay().GetStatus())
	for _, p := range finished.Msg.GetGameDay().Groups[0].GetPlayers() {
		require.NotNil(t, p.CurrentRankScore)
		assert.NotEqual(t, p.GetRankScoreAtAssignment(), p.GetCurrentRankScore())
	}

	listed, err := f.client.ListGameDaysForPlayer(ctx, authed(t, f.players[0].UserID, &gamedayv1.ListGameDaysForPlayerRequest{TournamentId: tid}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.GetGameDays(), 1)
	assert.Equal(t, gamedayv1.GameDayStatus_GAME_DAY_STATUS_COMPLETED, listed.Msg.GameDays[0].GetStatus())
}

func TestServiceMatchCarriesPlayerIdentities(t *testing.T) {
	f := newServiceFixture(t, 4)
	ctx := context.Background()
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]

	res, err := f.client.GetGameDay(ctx, authed(t, f.admin.UserID, &gamedayv1.GetGameDayRequest{
		TournamentId: f.tournament.ID.String(),
		GameDayId:    day.ID.String(),
	}))
	require.NoError(t, err)
	matches := res.Msg.GetGameDay().Groups[0].GetMatches()
	require.Len(t, matches, len(g.Matches))

	for i, m := range g.Matches {
		seats := []*gamedayv1.MatchPlayer{
			matches[i].GetTeam1Player1(), matches[i].GetTeam1Player2(),
			matches[i].GetTeam2Player1(), matches[i].GetTeam2Player2(),
		}
		for j, seatID := range m.PlayerIDs() {
			want := f.playerAt(t, g, seatID)
			require.NotNil(t, seats[j])
			assert.Equal(t, seatID.String(), seats[j].GetGroupPlayerId())
			assert.Equal(t, want.ID.String(), seats[j].GetTournamentPlayerId())
			assert.Equal(t, want.DisplayName(), seats[j].GetDisplayName())
			assert.NotEmpty(t, seats[j].GetDisplayName())
		}
	}
}

func TestServiceErrorCodes(t *testing.T) {
	f := newServiceFixture(t, 4)
	ctx := context.Background()
	ref := &gamedayv1.GetGameDayRequest{TournamentId: f.tournament.ID.String(), GameDayId: uuid.New().String()}

	t.Run("missing token", func(t *testing.T) {
		_, err := f.client.GetGameDay(ctx, connect.NewRequest(ref))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("bad token", func(t *testing.T) {
		req := connect.NewRequest(ref)
		req.Header().Set("Authorization", "Bearer not-a-jwt")
		_, err := f.client.GetGameDay(ctx, req)
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.client.GetGameDay(ctx, authed(t, uuid.New(), ref))
		var ce *connect.Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, connect.CodeUnauthenticated, ce.Code())
		assert.Equal(t, "Authenticated user not found", ce.Message())
	})

	t.Run("unknown game day", func(t *testing.T) {
		_, err := f.client.GetGameDay(ctx, authed(t, f.admin.UserID, ref))
		var ce *connect.Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, connect.CodeNotFound, ce.Code())
		assert.Equal(t, "Game day not found", ce.Message())
	})

	t.Run("malformed game day id", func(t *testing.T) {
		_, err := f.client.GetGameDay(ctx, authed(t, f.admin.UserID, &gamedayv1.GetGameDayRequest{
			TournamentId: f.tournament.ID.String(),
			GameDayId:    "day-1",
		}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("player calling an admin procedure", func(t *testing.T) {
		_, err := f.client.ListGameDays(ctx, authed(t, f.players[0].UserID, &gamedayv1.ListGameDaysRequest{TournamentId: f.tournament.ID.String()}))
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
	})

	t.Run("invalid selection", func(t *testing.T) {
		_, err := f.client.CreateGameDay(ctx, authed(t, f.admin.UserID, &gamedayv1.CreateGameDayRequest{
			TournamentId: f.tournament.ID.String(),
			GameDate:     "2026-03-12",
			PlayerIds:    f.playerIDStrings()[:3],
		}))
		var ce *connect.Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, connect.CodeInvalidArgument, ce.Code())
		assert.Equal(t, "Cannot create a game day with fewer than 4 players", ce.Message())
	})
}

func TestServicePlayerScoreConflict(t *testing.T) {
	f := newServiceFixture(t, 4)
	ctx := context.Background()
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]
	m := &g.Matches[0]
	first := f.playerAt(t, g, m.Team1Player1ID)
	second := f.playerAt(t, g, m.Team2Player2ID)

	submit := func(userID uuid.UUID, t1, t2 int32) error {
		_, err := f.client.SubmitMatchScoreAsPlayer(ctx, authed(t, userID, &gamedayv1.SubmitMatchScoreAsPlayerRequest{
			TournamentId: f.tournament.ID.String(),
			GameDayId:    day.ID.String(),
			GroupId:      g.ID.String(),
			MatchId:      m.ID.String(),
			Team1Score:   &t1,
			Team2Score:   &t2,
		}))
		return err
	}

	require.NoError(t, submit(first.UserID, 21, 12))

	err := submit(second.UserID, 12, 21)
	var ce *connect.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, connect.CodeAborted, ce.Code())
	assert.Equal(t, "Score was already submitted by another player", ce.Message())

	view, err := f.client.GetGameDayForPlayer(ctx, authed(t, second.UserID, &gamedayv1.GetGameDayForPlayerRequest{
		TournamentId: f.tournament.ID.String(),
		GameDayId:    day.ID.String(),
	}))
	require.NoError(t, err)
	got := view.Msg.GetGameDay().Groups[0].Matches[0]
	assert.Equal(t, int32(21), got.GetTeam1Score())
	assert.EqualValues(t, 1, got.GetVersion())
}

func TestPositionLabel(t *testing.T) {
	assert.Equal(t, "A", PositionLabel(0))
	assert.Equal(t, "E", PositionLabel(4))
	assert.Equal(t, "", PositionLabel(-1))
}
