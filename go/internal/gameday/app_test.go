package gameday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx         context.Context
	app         *App
	repo        *fakeRepo
	tournaments *fakeTournaments
	clock       *clockwork.FakeClock
	tournament  *models.Tournament
	admin       models.Caller
	players     []models.TournamentPlayer
}

func newFixture(t *testing.T, playerCount int) *fixture {
	t.Helper()

	repo := newFakeRepo()
	tournament := &models.Tournament{
		ID:      uuid.New(),
		Name:    "Tuesday League",
		Type:    models.TournamentTypeLeague,
		Enabled: true,
		OwnerID: uuid.New(),
	}
	tournaments := &fakeTournaments{
		repo:        repo,
		tournaments: map[uuid.UUID]*models.Tournament{tournament.ID: tournament},
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))

	f := &fixture{
		ctx:         context.Background(),
		repo:        repo,
		tournaments: tournaments,
		clock:       clock,
		tournament:  tournament,
		admin:       models.Caller{UserID: uuid.New(), Username: "admin", Role: models.RoleAdmin},
	}
	f.app = NewApp(repo, tournaments, WithClock(clock), WithRand(rand.New(rand.NewSource(7))))

	for i := 0; i < playerCount; i++ {
		f.addPlayer(fmt.Sprintf("%d", 1000-i*10), models.PlayerStatusEnabled)
	}
	(*repo.state).settings[tournament.ID] = &models.LeagueSettings{
		TournamentID: tournament.ID,
		RankingLogic: models.RankingLogicModifiedElo,
		RatingConfig: models.ModifiedEloConfig{K: 32, AbsenteeDemerit: 5},
	}
	return f
}

func (f *fixture) addPlayer(score string, status models.PlayerStatus) models.TournamentPlayer {
	p := models.TournamentPlayer{
		ID:           uuid.New(),
		TournamentID: f.tournament.ID,
		UserID:       uuid.New(),
		FirstName:    "Player",
		LastName:     fmt.Sprintf("%d", len(f.players)+1),
		Status:       status,
	}
	if score != "" {
		p.RankScore = decimal.NewNullDecimal(decimal.RequireFromString(score))
	}
	(*f.repo.state).players[p.ID] = p
	f.players = append(f.players, p)
	return p
}

func (f *fixture) playerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(f.players))
	for i, p := range f.players {
		ids[i] = p.ID
	}
	return ids
}

func (f *fixture) createDay(t *testing.T, date string) *models.GameDay {
	t.Helper()
	day, err := f.app.CreateGameDay(f.ctx, f.admin, f.tournament.ID, CreateGameDayRequest{
		GameDate:  date,
		PlayerIDs: f.playerIDs(),
	})
	require.NoError(t, err)
	return day
}

func (f *fixture) startDay(t *testing.T, date string) *models.GameDay {
	t.Helper()
	day := f.createDay(t, date)
	day, err := f.app.StartGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.NoError(t, err)
	return day
}

func (f *fixture) score(t *testing.T, day *models.GameDay, g *models.Group, m *models.Match, t1, t2 int) *models.GameDay {
	t.Helper()
	updated, err := f.app.SubmitMatchScore(f.ctx, f.admin, f.tournament.ID, day.ID, g.ID, m.ID, scores(t1, t2))
	require.NoError(t, err)
	return updated
}

func (f *fixture) playerCaller(p models.TournamentPlayer) models.Caller {
	return models.Caller{UserID: p.UserID, Username: p.DisplayName(), Role: models.RolePlayer}
}

// playerAt returns the tournament player sitting in the given seat.
func (f *fixture) playerAt(t *testing.T, g *models.Group, seatID uuid.UUID) models.TournamentPlayer {
	t.Helper()
	seat, ok := g.Player(seatID)
	require.True(t, ok, "seat %s not in group %d", seatID, g.GroupNumber)
	for _, p := range f.players {
		if p.ID == seat.TournamentPlayerID {
			return p
		}
	}
	t.Fatalf("no player for seat %s", seatID)
	return models.TournamentPlayer{}
}

func (f *fixture) outboxTypes() []events.EventType {
	var types []events.EventType
	for _, row := range f.repo.snapshot().outbox {
		types = append(types, row.Type)
	}
	return types
}

func scores(t1, t2 int) SubmitMatchScoreRequest {
	return SubmitMatchScoreRequest{Team1Score: &t1, Team2Score: &t2}
}

func requireAppError(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
	assert.Equal(t, message, apperrors.Message(err))
}

func TestCreateGameDay(t *testing.T) {
	f := newFixture(t, 9)

	day := f.createDay(t, "2026-03-12")

	assert.Equal(t, models.GameDayStatusPending, day.Status)
	assert.Equal(t, "2026-03-12", day.GameDate.Format(models.GameDateLayout))
	require.Len(t, day.Groups, 2)

	var sizes []int
	seen := map[uuid.UUID]bool{}
	var order []uuid.UUID
	matchCount := 0
	for i, g := range day.Groups {
		assert.Equal(t, i+1, g.GroupNumber)
		sizes = append(sizes, len(g.Players))
		for pos, p := range g.Players {
			assert.Equal(t, pos, p.Position)
			assert.False(t, seen[p.TournamentPlayerID], "player assigned twice")
			seen[p.TournamentPlayerID] = true
			order = append(order, p.TournamentPlayerID)
		}
		for _, m := range g.Matches {
			for _, id := range m.PlayerIDs() {
				_, ok := g.Player(id)
				assert.True(t, ok, "match references a seat outside its group")
			}
			assert.False(t, m.HasScore())
		}
		matchCount += len(g.Matches)
	}
	assert.ElementsMatch(t, []int{4, 5}, sizes)
	assert.Equal(t, 3+5, matchCount)

	// fixture ratings descend with registration order
	assert.Equal(t, f.playerIDs(), order)
	assert.Equal(t, []events.EventType{events.EventTypeGameDayCreated}, f.outboxTypes())

	var payload events.GameDayCreatedPayload
	require.NoError(t, json.Unmarshal(f.repo.snapshot().outbox[0].Payload, &payload))
	assert.Equal(t, 9, payload.PlayerCount)
	assert.Equal(t, "2026-03-12", payload.GameDate)
}

func TestCreateGameDaySortsUnratedLast(t *testing.T) {
	f := newFixture(t, 0)
	low := f.addPlayer("10", models.PlayerStatusEnabled)
	unrated := f.addPlayer("", models.PlayerStatusEnabled)
	high := f.addPlayer("900", models.PlayerStatusEnabled)
	mid := f.addPlayer("500", models.PlayerStatusEnabled)

	day := f.createDay(t, "2026-03-12")

	require.Len(t, day.Groups, 1)
	var got []uuid.UUID
	for _, p := range day.Groups[0].Players {
		got = append(got, p.TournamentPlayerID)
	}
	assert.Equal(t, []uuid.UUID{high.ID, mid.ID, low.ID, unrated.ID}, got)
	assert.False(t, day.Groups[0].Players[3].RankScoreAtAssignment.Valid)
}

func TestCreateGameDayValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fixture, req *CreateGameDayRequest, caller *models.Caller)
		kind    error
		message string
	}{
		{
			name: "one-off tournament",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				f.tournament.Type = models.TournamentTypeOneOff
			},
			kind:    apperrors.ErrValidation,
			message: "Game days can only be created for LEAGUE tournaments",
		},
		{
			name: "disabled tournament",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				f.tournament.Enabled = false
			},
			kind:    apperrors.ErrValidation,
			message: "Tournament is disabled",
		},
		{
			name: "tournament admin of another tournament",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				caller.Role = models.RoleTournyAdmin
			},
			kind:    apperrors.ErrForbidden,
			message: "Access denied: you are not an admin of this tournament",
		},
		{
			name: "missing date",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				req.GameDate = "  "
			},
			kind:    apperrors.ErrValidation,
			message: "Game date is required",
		},
		{
			name: "malformed date",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				req.GameDate = "12/03/2026"
			},
			kind:    apperrors.ErrValidation,
			message: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name: "empty selection",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				req.PlayerIDs = nil
			},
			kind:    apperrors.ErrValidation,
			message: "Player list is required",
		},
		{
			name: "infeasible count",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				req.PlayerIDs = req.PlayerIDs[:7]
			},
			kind:    apperrors.ErrValidation,
			message: "Player count of 7 cannot be split into groups of 4 or 5. Invalid counts: 6, 7, 11",
		},
		{
			name: "duplicate player",
			mutate: func(f *fixture, req *CreateGameDayRequest, caller *models.Caller) {
				req.PlayerIDs[1] = req.PlayerIDs[0]
			},
			kind:    apperrors.ErrValidation,
			message: "", // depends on the id; checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 8)
			req := CreateGameDayRequest{GameDate: "2026-03-12", PlayerIDs: f.playerIDs()}
			caller := f.admin
			tt.mutate(f, &req, &caller)

			_, err := f.app.CreateGameDay(f.ctx, caller, f.tournament.ID, req)

			message := tt.message
			if message == "" {
				message = fmt.Sprintf("Duplicate player in selection: %s", req.PlayerIDs[0])
			}
			requireAppError(t, err, tt.kind, message)
			assert.Empty(t, f.repo.snapshot().days)
			assert.Empty(t, f.outboxTypes())
		})
	}
}

func TestCreateGameDayPlayerChecks(t *testing.T) {
	t.Run("unknown player", func(t *testing.T) {
		f := newFixture(t, 7)
		missing := uuid.New()
		_, err := f.app.CreateGameDay(f.ctx, f.admin, f.tournament.ID, CreateGameDayRequest{
			GameDate:  "2026-03-12",
			PlayerIDs: append(f.playerIDs(), missing),
		})
		requireAppError(t, err, apperrors.ErrNotFound, fmt.Sprintf("Tournament player not found: %s", missing))
	})

	t.Run("player of another tournament", func(t *testing.T) {
		f := newFixture(t, 7)
		stranger := f.addPlayer("1000", models.PlayerStatusEnabled)
		stranger.TournamentID = uuid.New()
		(*f.repo.state).players[stranger.ID] = stranger

		_, err := f.app.CreateGameDay(f.ctx, f.admin, f.tournament.ID, CreateGameDayRequest{
			GameDate:  "2026-03-12",
			PlayerIDs: f.playerIDs(),
		})
		requireAppError(t, err, apperrors.ErrValidation, fmt.Sprintf("Player %s does not belong to this tournament", stranger.ID))
	})

	t.Run("disabled player", func(t *testing.T) {
		f := newFixture(t, 7)
		f.addPlayer("1000", models.PlayerStatusDisabled)

		_, err := f.app.CreateGameDay(f.ctx, f.admin, f.tournament.ID, CreateGameDayRequest{
			GameDate:  "2026-03-12",
			PlayerIDs: f.playerIDs(),
		})
		requireAppError(t, err, apperrors.ErrValidation, "Player Player 8 is DISABLED and cannot be added to a game day")
	})

	t.Run("unknown tournament", func(t *testing.T) {
		f := newFixture(t, 8)
		_, err := f.app.CreateGameDay(f.ctx, f.admin, uuid.New(), CreateGameDayRequest{
			GameDate:  "2026-03-12",
			PlayerIDs: f.playerIDs(),
		})
		requireAppError(t, err, apperrors.ErrNotFound, "Tournament not found")
	})
}

func TestCreateGameDayRejectsDuplicateDate(t *testing.T) {
	f := newFixture(t, 8)
	f.createDay(t, "2026-03-12")

	_, err := f.app.CreateGameDay(f.ctx, f.admin, f.tournament.ID, CreateGameDayRequest{
		GameDate:  "2026-03-12",
		PlayerIDs: f.playerIDs(),
	})

	requireAppError(t, err, apperrors.ErrValidation, "A game day already exists for 2026-03-12 in this tournament")
	assert.Len(t, f.repo.snapshot().days, 1)
}

func TestGetGameDay(t *testing.T) {
	f := newFixture(t, 4)
	day := f.createDay(t, "2026-03-12")

	first, err := f.app.GetGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.NoError(t, err)
	second, err := f.app.GetGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = f.app.GetGameDay(f.ctx, f.admin, f.tournament.ID, uuid.New())
	requireAppError(t, err, apperrors.ErrNotFound, "Game day not found")

	other := &models.Tournament{ID: uuid.New(), Type: models.TournamentTypeLeague, Enabled: true}
	f.tournaments.tournaments[other.ID] = other
	_, err = f.app.GetGameDay(f.ctx, f.admin, other.ID, day.ID)
	requireAppError(t, err, apperrors.ErrNotFound, "Game day not found")

	player := f.playerCaller(f.players[0])
	_, err = f.app.GetGameDay(f.ctx, player, f.tournament.ID, day.ID)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestTournamentAdminAccess(t *testing.T) {
	f := newFixture(t, 4)
	tournyAdmin := models.Caller{UserID: uuid.New(), Role: models.RoleTournyAdmin}
	f.tournament.AdminIDs = []uuid.UUID{tournyAdmin.UserID}

	_, err := f.app.CreateGameDay(f.ctx, tournyAdmin, f.tournament.ID, CreateGameDayRequest{
		GameDate:  "2026-03-12",
		PlayerIDs: f.playerIDs(),
	})
	require.NoError(t, err)
}

func TestLifecycle(t *testing.T) {
	f := newFixture(t, 4)
	day := f.createDay(t, "2026-03-12")

	f.clock.Advance(time.Hour)
	started, err := f.app.StartGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GameDayStatusOngoing, started.Status)
	assert.Equal(t, f.clock.Now().UTC(), started.UpdatedAt)

	_, err = f.app.StartGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrValidation, "Only PENDING game days can be started")

	err = f.app.DiscardGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrValidation, "Only PENDING game days can be discarded")

	require.NoError(t, f.app.CancelGameDay(f.ctx, f.admin, f.tournament.ID, day.ID))
	_, err = f.app.GetGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrNotFound, "Game day not found")

	assert.Equal(t, []events.EventType{
		events.EventTypeGameDayCreated,
		events.EventTypeGameDayStarted,
		events.EventTypeGameDayDeleted,
	}, f.outboxTypes())

	var deleted events.GameDayDeletedPayload
	st := f.repo.snapshot()
	require.NoError(t, json.Unmarshal(st.outbox[2].Payload, &deleted))
	assert.Equal(t, "cancelled", deleted.Reason)
}

func TestDiscardPendingGameDay(t *testing.T) {
	f := newFixture(t, 4)
	day := f.createDay(t, "2026-03-12")

	require.NoError(t, f.app.DiscardGameDay(f.ctx, f.admin, f.tournament.ID, day.ID))
	assert.Empty(t, f.repo.snapshot().days)

	// the date is free again
	f.createDay(t, "2026-03-12")
}

func TestSubmitMatchScore(t *testing.T) {
	f := newFixture(t, 5)
	pending := f.createDay(t, "2026-03-12")
	g, m := &pending.Groups[0], &pending.Groups[0].Matches[0]

	_, err := f.app.SubmitMatchScore(f.ctx, f.admin, f.tournament.ID, pending.ID, g.ID, m.ID, scores(21, 10))
	requireAppError(t, err, apperrors.ErrValidation, "Scores can only be submitted for ONGOING game days")

	day, err := f.app.StartGameDay(f.ctx, f.admin, f.tournament.ID, pending.ID)
	require.NoError(t, err)

	day = f.score(t, day, g, m, 21, 10)
	_, scored := day.FindMatch(m.ID)
	assert.Equal(t, 21, *scored.Team1Score)
	assert.Equal(t, 10, *scored.Team2Score)
	assert.EqualValues(t, 1, scored.Version)

	// admins may correct a score
	day = f.score(t, day, g, m, 18, 21)
	_, scored = day.FindMatch(m.ID)
	assert.Equal(t, 18, *scored.Team1Score)
	assert.EqualValues(t, 2, scored.Version)

	seven := 7
	tests := []struct {
		name    string
		groupID uuid.UUID
		matchID uuid.UUID
		req     SubmitMatchScoreRequest
		kind    error
		message string
	}{
		{"missing score", g.ID, m.ID, SubmitMatchScoreRequest{Team1Score: &seven}, apperrors.ErrValidation, "Both team1Score and team2Score are required"},
		{"negative score", g.ID, m.ID, scores(-1, 21), apperrors.ErrValidation, "Scores must be non-negative"},
		// 4294967317 wraps to 21 as an int32
		{"score beyond int32", g.ID, m.ID, scores(4294967317, 5), apperrors.ErrValidation, "Scores must not exceed 2147483647"},
		{"second score beyond int32", g.ID, m.ID, scores(21, math.MaxInt32+1), apperrors.ErrValidation, "Scores must not exceed 2147483647"},
		{"unknown match", g.ID, uuid.New(), scores(21, 10), apperrors.ErrNotFound, "Match not found"},
		{"wrong group", uuid.New(), m.ID, scores(21, 10), apperrors.ErrValidation, "Match does not belong to the specified group/day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.app.SubmitMatchScore(f.ctx, f.admin, f.tournament.ID, day.ID, tt.groupID, tt.matchID, tt.req)
			requireAppError(t, err, tt.kind, tt.message)
		})
	}

	_, stored := f.repo.snapshot().days[day.ID].FindMatch(m.ID)
	assert.Equal(t, 18, *stored.Team1Score)
	assert.Equal(t, 21, *stored.Team2Score)
	assert.EqualValues(t, 2, stored.Version)
}

func TestSubmitMatchScoreMatchFromAnotherDay(t *testing.T) {
	f := newFixture(t, 4)
	first := f.startDay(t, "2026-03-12")
	second := f.startDay(t, "2026-03-19")

	foreign := second.Groups[0].Matches[0]
	_, err := f.app.SubmitMatchScore(f.ctx, f.admin, f.tournament.ID, first.ID, first.Groups[0].ID, foreign.ID, scores(21, 3))
	requireAppError(t, err, apperrors.ErrValidation, "Match does not belong to the specified group/day")
}

func TestSubmitMatchScoreAsPlayer(t *testing.T) {
	f := newFixture(t, 5)
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]
	m := &g.Matches[0]

	// in a group of five, seat E sits out match 1
	benched := f.playerAt(t, g, g.Players[4].ID)
	_, err := f.app.SubmitMatchScoreAsPlayer(f.ctx, f.playerCaller(benched), f.tournament.ID, day.ID, g.ID, m.ID, scores(21, 15))
	requireAppError(t, err, apperrors.ErrForbidden, "You can only submit scores for your own matches")

	playerA := f.playerAt(t, g, m.Team1Player1ID)
	updated, err := f.app.SubmitMatchScoreAsPlayer(f.ctx, f.playerCaller(playerA), f.tournament.ID, day.ID, g.ID, m.ID, scores(21, 15))
	require.NoError(t, err)
	_, scored := updated.FindMatch(m.ID)
	assert.Equal(t, 21, *scored.Team1Score)
	assert.EqualValues(t, 1, scored.Version)

	_, err = f.app.SubmitMatchScoreAsPlayer(f.ctx, f.playerCaller(playerA), f.tournament.ID, day.ID, g.ID, m.ID, scores(15, 21))
	requireAppError(t, err, apperrors.ErrConflict, "Score was already submitted by another player")

	_, unchanged := f.repo.snapshot().days[day.ID].FindMatch(m.ID)
	assert.Equal(t, 21, *unchanged.Team1Score)

	var payload events.MatchScoreSubmittedPayload
	st := f.repo.snapshot()
	last := st.outbox[len(st.outbox)-1]
	require.Equal(t, events.EventTypeMatchScoreSubmitted, last.Type)
	require.NoError(t, json.Unmarshal(last.Payload, &payload))
	assert.True(t, payload.ByPlayer)
	assert.Equal(t, playerA.UserID.String(), payload.SubmittedBy)
}

func TestSubmitMatchScoreAsPlayerLosesRace(t *testing.T) {
	f := newFixture(t, 4)
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]
	m := &g.Matches[0]
	player := f.playerAt(t, g, m.Team2Player1ID)

	// a partner's submission commits between our read and our write
	f.repo.beforeVersionCAS = func(st *fakeState, matchID uuid.UUID) {
		for _, d := range st.days {
			if _, target := d.FindMatch(matchID); target != nil {
				t1, t2 := 21, 5
				target.Team1Score, target.Team2Score = &t1, &t2
				target.Version++
			}
		}
	}

	eventsBefore := len(f.repo.snapshot().outbox)
	_, err := f.app.SubmitMatchScoreAsPlayer(f.ctx, f.playerCaller(player), f.tournament.ID, day.ID, g.ID, m.ID, scores(5, 21))
	requireAppError(t, err, apperrors.ErrConflict, "Score was already submitted by another player")

	// the partner's 21-5 stands and our write left no trace
	after := f.repo.snapshot()
	_, stored := after.days[day.ID].FindMatch(m.ID)
	require.True(t, stored.HasScore())
	assert.Equal(t, 21, *stored.Team1Score)
	assert.Equal(t, 5, *stored.Team2Score)
	assert.EqualValues(t, 1, stored.Version)
	assert.Len(t, after.outbox, eventsBefore)
}

func TestSubmitMatchScoreAsPlayerStaleExpectedVersion(t *testing.T) {
	f := newFixture(t, 4)
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]
	m := &g.Matches[1]
	player := f.playerAt(t, g, m.Team1Player2ID)

	stale := int64(3)
	req := scores(21, 19)
	req.ExpectedVersion = &stale
	_, err := f.app.SubmitMatchScoreAsPlayer(f.ctx, f.playerCaller(player), f.tournament.ID, day.ID, g.ID, m.ID, req)
	requireAppError(t, err, apperrors.ErrConflict, "Score was already submitted by another player")
}

func TestSubmitMatchScoreAsPlayerRequiresRegistration(t *testing.T) {
	f := newFixture(t, 4)
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]

	outsider := models.Caller{UserID: uuid.New(), Role: models.RolePlayer}
	_, err := f.app.SubmitMatchScoreAsPlayer(f.ctx, outsider, f.tournament.ID, day.ID, g.ID, g.Matches[0].ID, scores(21, 10))
	requireAppError(t, err, apperrors.ErrForbidden, "You are not registered in this tournament")
}

func TestFinishGameDay(t *testing.T) {
	f := newFixture(t, 0)
	for i := 0; i < 4; i++ {
		f.addPlayer("", models.PlayerStatusEnabled)
	}
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]

	before := f.repo.snapshot()
	_, err := f.app.FinishGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrValidation,
		"All matches must have scores before finishing. Match #1 in Group 1 is missing a score.")
	rejected := f.repo.snapshot()
	assert.Equal(t, before.players, rejected.players)
	assert.Empty(t, rejected.history)
	assert.Equal(t, models.GameDayStatusOngoing, rejected.days[day.ID].Status)
	assert.Equal(t, before.days[day.ID].UpdatedAt, rejected.days[day.ID].UpdatedAt)
	assert.Len(t, rejected.outbox, len(before.outbox))

	// A,B v C,D / A,C v B,D / A,D v B,C
	f.score(t, day, g, &g.Matches[0], 21, 10)
	f.score(t, day, g, &g.Matches[1], 21, 15)
	f.score(t, day, g, &g.Matches[2], 10, 21)

	f.clock.Advance(2 * time.Hour)
	finished, err := f.app.FinishGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GameDayStatusCompleted, finished.Status)

	// unrated players start from zero and every match is even, so each result is worth 16
	expected := map[int]string{0: "16", 1: "16", 2: "16", 3: "-48"}
	st := f.repo.snapshot()
	for _, seat := range g.Players {
		got := st.players[seat.TournamentPlayerID]
		require.True(t, got.RankScore.Valid)
		assert.True(t, decimal.RequireFromString(expected[seat.Position]).Equal(got.RankScore.Decimal),
			"seat %d: got %s", seat.Position, got.RankScore.Decimal)
	}

	require.Len(t, st.history, 12)
	for _, h := range st.history {
		assert.True(t, h.PreviousScore.IsZero())
		assert.True(t, h.NewScore.Abs().Equal(decimal.NewFromInt(16)))
		assert.Equal(t, f.clock.Now().UTC(), h.ChangedAt)
	}

	types := f.outboxTypes()
	assert.Equal(t, events.EventTypeGameDayCompleted, types[len(types)-1])
	var completed events.GameDayCompletedPayload
	require.NoError(t, json.Unmarshal(st.outbox[len(st.outbox)-1].Payload, &completed))
	assert.Equal(t, 3, completed.MatchCount)
	assert.Len(t, completed.RatingChanges, 4)

	_, err = f.app.FinishGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrValidation, "Only ONGOING game days can be finished")

	_, err = f.app.SubmitMatchScore(f.ctx, f.admin, f.tournament.ID, day.ID, g.ID, g.Matches[0].ID, scores(1, 2))
	requireAppError(t, err, apperrors.ErrValidation, "Scores can only be submitted for ONGOING game days")

	err = f.app.CancelGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrValidation, "Completed game days cannot be cancelled")
}

func TestFinishGameDayIsZeroSum(t *testing.T) {
	f := newFixture(t, 13)
	day := f.startDay(t, "2026-03-12")

	before := decimal.Zero
	for _, p := range f.players {
		before = before.Add(p.Rating())
	}

	for gi := range day.Groups {
		g := &day.Groups[gi]
		for mi := range g.Matches {
			f.score(t, day, g, &g.Matches[mi], 21, 10+mi)
		}
	}
	_, err := f.app.FinishGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.NoError(t, err)

	after := decimal.Zero
	for _, p := range f.repo.snapshot().players {
		after = after.Add(p.Rating())
	}
	assert.True(t, before.Equal(after), "before %s after %s", before, after)
}

func TestFinishGameDayRollsBackOnFailure(t *testing.T) {
	f := newFixture(t, 4)
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]
	for i := range g.Matches {
		f.score(t, day, g, &g.Matches[i], 21, 17)
	}
	before := f.repo.snapshot()

	f.repo.failAdjustAfter = 1
	_, err := f.app.FinishGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrValidation))

	after := f.repo.snapshot()
	assert.Equal(t, before.players, after.players)
	assert.Empty(t, after.history)
	assert.Equal(t, models.GameDayStatusOngoing, after.days[day.ID].Status)
	assert.Equal(t, len(before.outbox), len(after.outbox))
}

func TestFinishGameDayRequiresSettings(t *testing.T) {
	f := newFixture(t, 4)
	delete((*f.repo.state).settings, f.tournament.ID)
	day := f.startDay(t, "2026-03-12")
	g := &day.Groups[0]
	for i := range g.Matches {
		f.score(t, day, g, &g.Matches[i], 21, 17)
	}

	_, err := f.app.FinishGameDay(f.ctx, f.admin, f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrValidation, "League ELO settings not found for this tournament")
}

func TestListGameDaysForPlayer(t *testing.T) {
	f := newFixture(t, 4)
	f.createDay(t, "2026-03-05")
	older := f.startDay(t, "2026-03-01")
	f.createDay(t, "2026-03-20")

	summaries, err := f.app.ListGameDaysForPlayer(f.ctx, f.playerCaller(f.players[0]), f.tournament.ID)
	require.NoError(t, err)

	var dates []string
	for _, s := range summaries {
		dates = append(dates, s.GameDate.Format(models.GameDateLayout))
	}
	assert.Equal(t, []string{"2026-03-01", "2026-03-20", "2026-03-05"}, dates)
	assert.Equal(t, older.ID, summaries[0].ID)

	_, err = f.app.ListGameDaysForPlayer(f.ctx, f.admin, f.tournament.ID)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	days, err := f.app.ListGameDays(f.ctx, f.admin, f.tournament.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2026-03-20", days[0].GameDate.Format(models.GameDateLayout))
}

func TestGetGameDayForPlayer(t *testing.T) {
	f := newFixture(t, 8)
	benchwarmer := f.addPlayer("1", models.PlayerStatusEnabled)
	day, err := f.app.CreateGameDay(f.ctx, f.admin, f.tournament.ID, CreateGameDayRequest{
		GameDate:  "2026-03-12",
		PlayerIDs: f.playerIDs()[:8],
	})
	require.NoError(t, err)

	last := f.players[7]
	view, err := f.app.GetGameDayForPlayer(f.ctx, f.playerCaller(last), f.tournament.ID, day.ID)
	require.NoError(t, err)
	require.Len(t, view.Groups, 1)
	found := false
	for _, p := range view.Groups[0].Players {
		found = found || p.TournamentPlayerID == last.ID
	}
	assert.True(t, found)

	_, err = f.app.GetGameDayForPlayer(f.ctx, f.playerCaller(benchwarmer), f.tournament.ID, day.ID)
	requireAppError(t, err, apperrors.ErrNotFound, "You are not part of this game day")
}
