package gameday

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/events"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/shopspring/decimal"
)

type outboxRow struct {
	GameDayID uuid.UUID
	Type      events.EventType
	Payload   []byte
}

type fakeState struct {
	days     map[uuid.UUID]*models.GameDay
	players  map[uuid.UUID]models.TournamentPlayer
	settings map[uuid.UUID]*models.LeagueSettings
	history  []models.RankScoreHistory
	outbox   []outboxRow
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		days:     make(map[uuid.UUID]*models.GameDay, len(s.days)),
		players:  make(map[uuid.UUID]models.TournamentPlayer, len(s.players)),
		settings: s.settings,
		history:  append([]models.RankScoreHistory(nil), s.history...),
		outbox:   append([]outboxRow(nil), s.outbox...),
	}
	for id, d := range s.days {
		c.days[id] = cloneDay(d)
	}
	for id, p := range s.players {
		c.players[id] = p
	}
	return c
}

func cloneDay(d *models.GameDay) *models.GameDay {
	c := *d
	c.Groups = make([]models.Group, len(d.Groups))
	for i, g := range d.Groups {
		cg := g
		cg.Players = append([]models.GroupPlayer{}, g.Players...)
		cg.Matches = make([]models.Match, len(g.Matches))
		for j, m := range g.Matches {
			cm := m
			if m.Team1Score != nil {
				v := *m.Team1Score
				cm.Team1Score = &v
			}
			if m.Team2Score != nil {
				v := *m.Team2Score
				cm.Team2Score = &v
			}
			cg.Matches[j] = cm
		}
		c.Groups[i] = cg
	}
	return &c
}

// fakeRepo is an in-memory Repository. Transactions are serialized and roll back
// to a snapshot when fn fails.
type fakeRepo struct {
	mu    *sync.Mutex
	state **fakeState
	inTx  bool

	failAdjustAfter  int
	adjustCalls      int
	beforeVersionCAS func(st *fakeState, matchID uuid.UUID)
	// writes made by other sessions during a transaction; they survive its rollback
	concurrent []func(st *fakeState)
}

var _ Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	st := &fakeState{
		days:     map[uuid.UUID]*models.GameDay{},
		players:  map[uuid.UUID]models.TournamentPlayer{},
		settings: map[uuid.UUID]*models.LeagueSettings{},
	}
	return &fakeRepo{mu: &sync.Mutex{}, state: &st, failAdjustAfter: -1}
}

func (r *fakeRepo) with(fn func(st *fakeState) error) error {
	if !r.inTx {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return fn(*r.state)
}

func (r *fakeRepo) snapshot() *fakeState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (*r.state).clone()
}

func (r *fakeRepo) InTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := (*r.state).clone()
	tx := *r
	tx.inTx = true
	err := fn(&tx)
	r.adjustCalls = tx.adjustCalls
	if err != nil {
		for _, w := range tx.concurrent {
			w(saved)
		}
		*r.state = saved
	}
	return err
}

func (r *fakeRepo) GameDayExists(ctx context.Context, tournamentID uuid.UUID, gameDate time.Time) (bool, error) {
	var exists bool
	err := r.with(func(st *fakeState) error {
		for _, d := range st.days {
			if d.TournamentID == tournamentID && d.GameDate.Equal(gameDate) {
				exists = true
			}
		}
		return nil
	})
	return exists, err
}

func (r *fakeRepo) CreateGameDay(ctx context.Context, params NewGameDayParams) (*models.GameDay, error) {
	var out *models.GameDay
	err := r.with(func(st *fakeState) error {
		for _, d := range st.days {
			if d.TournamentID == params.TournamentID && d.GameDate.Equal(params.GameDate) {
				return ErrDuplicateGameDate
			}
		}
		d := &models.GameDay{
			ID:           params.ID,
			TournamentID: params.TournamentID,
			GameDate:     params.GameDate,
			Status:       params.Status,
			CreatedAt:    params.CreatedAt,
			UpdatedAt:    params.CreatedAt,
		}
		st.days[d.ID] = d
		out = cloneDay(d)
		return nil
	})
	return out, err
}

func (r *fakeRepo) CreateGroup(ctx context.Context, gameDayID uuid.UUID, groupNumber int) (*models.Group, error) {
	var out *models.Group
	err := r.with(func(st *fakeState) error {
		d, ok := st.days[gameDayID]
		if !ok {
			return errors.New("no such game day")
		}
		g := models.Group{ID: uuid.New(), GameDayID: gameDayID, GroupNumber: groupNumber}
		d.Groups = append(d.Groups, g)
		out = &g
		return nil
	})
	return out, err
}

func (r *fakeRepo) findGroup(st *fakeState, groupID uuid.UUID) *models.Group {
	for _, d := range st.days {
		for i := range d.Groups {
			if d.Groups[i].ID == groupID {
				return &d.Groups[i]
			}
		}
	}
	return nil
}

func (r *fakeRepo) CreateGroupPlayer(ctx context.Context, params NewGroupPlayerParams) (*models.GroupPlayer, error) {
	var out *models.GroupPlayer
	err := r.with(func(st *fakeState) error {
		g := r.findGroup(st, params.GroupID)
		if g == nil {
			return errors.New("no such group")
		}
		gp := models.GroupPlayer{
			ID:                    uuid.New(),
			GroupID:               g.ID,
			TournamentPlayerID:    params.Player.ID,
			UserID:                params.Player.UserID,
			DisplayName:           params.Player.DisplayName(),
			Position:              params.Position,
			RankScoreAtAssignment: params.Player.RankScore,
			CurrentRankScore:      params.Player.RankScore,
		}
		g.Players = append(g.Players, gp)
		out = &gp
		return nil
	})
	return out, err
}

func (r *fakeRepo) CreateMatch(ctx context.Context, params NewMatchParams) (*models.Match, error) {
	var out *models.Match
	err := r.with(func(st *fakeState) error {
		g := r.findGroup(st, params.GroupID)
		if g == nil {
			return errors.New("no such group")
		}
		for _, id := range []uuid.UUID{params.Team1Player1ID, params.Team1Player2ID, params.Team2Player1ID, params.Team2Player2ID} {
			if _, ok := g.Player(id); !ok {
				return errors.New("match references a player outside the group")
			}
		}
		m := models.Match{
			ID:             uuid.New(),
			GroupID:        g.ID,
			MatchOrder:     params.MatchOrder,
			Team1Player1ID: params.Team1Player1ID,
			Team1Player2ID: params.Team1Player2ID,
			Team2Player1ID: params.Team2Player1ID,
			Team2Player2ID: params.Team2Player2ID,
		}
		g.Matches = append(g.Matches, m)
		out = &m
		return nil
	})
	return out, err
}

func (r *fakeRepo) GetGameDay(ctx context.Context, id uuid.UUID) (*models.GameDay, error) {
	var out *models.GameDay
	err := r.with(func(st *fakeState) error {
		d, ok := st.days[id]
		if !ok {
			return ErrGameDayNotFound
		}
		out = cloneDay(d)
		for gi := range out.Groups {
			for pi := range out.Groups[gi].Players {
				p := &out.Groups[gi].Players[pi]
				p.CurrentRankScore = st.players[p.TournamentPlayerID].RankScore
			}
		}
		return nil
	})
	return out, err
}

func (r *fakeRepo) LockGameDay(ctx context.Context, id uuid.UUID) (*models.GameDay, error) {
	return r.GetGameDay(ctx, id)
}

func (r *fakeRepo) ListGameDays(ctx context.Context, tournamentID uuid.UUID) ([]models.GameDay, error) {
	var out []models.GameDay
	err := r.with(func(st *fakeState) error {
		for _, d := range st.days {
			if d.TournamentID == tournamentID {
				c := *d
				c.Groups = nil
				out = append(out, c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].GameDate.After(out[j].GameDate) })
	return out, err
}

func (r *fakeRepo) UpdateGameDayStatus(ctx context.Context, id uuid.UUID, from, to models.GameDayStatus, at time.Time) error {
	return r.with(func(st *fakeState) error {
		d, ok := st.days[id]
		if !ok || d.Status != from {
			return ErrStatusChanged
		}
		d.Status = to
		d.UpdatedAt = at
		return nil
	})
}

func (r *fakeRepo) DeleteGameDay(ctx context.Context, id uuid.UUID) error {
	return r.with(func(st *fakeState) error {
		delete(st.days, id)
		return nil
	})
}

func (r *fakeRepo) findMatch(st *fakeState, id uuid.UUID) *models.Match {
	for _, d := range st.days {
		if _, m := d.FindMatch(id); m != nil {
			return m
		}
	}
	return nil
}

func (r *fakeRepo) MatchExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.with(func(st *fakeState) error {
		exists = r.findMatch(st, id) != nil
		return nil
	})
	return exists, err
}

func (r *fakeRepo) UpdateMatchScore(ctx context.Context, update ScoreUpdate) (*models.Match, error) {
	var out *models.Match
	err := r.with(func(st *fakeState) error {
		m := r.findMatch(st, update.MatchID)
		if m == nil {
			return errors.New("no such match")
		}
		t1, t2 := update.Team1Score, update.Team2Score
		m.Team1Score, m.Team2Score = &t1, &t2
		m.Version++
		c := *m
		out = &c
		return nil
	})
	return out, err
}

func (r *fakeRepo) UpdateMatchScoreIfVersion(ctx context.Context, update ScoreUpdate, version int64) (*models.Match, error) {
	var out *models.Match
	err := r.with(func(st *fakeState) error {
		if hook := r.beforeVersionCAS; hook != nil {
			matchID := update.MatchID
			hook(st, matchID)
			r.concurrent = append(r.concurrent, func(st *fakeState) { hook(st, matchID) })
		}
		m := r.findMatch(st, update.MatchID)
		if m == nil || m.Version != version {
			return ErrVersionConflict
		}
		t1, t2 := update.Team1Score, update.Team2Score
		m.Team1Score, m.Team2Score = &t1, &t2
		m.Version++
		c := *m
		out = &c
		return nil
	})
	return out, err
}

func (r *fakeRepo) GetTournamentPlayers(ctx context.Context, ids []uuid.UUID) ([]models.TournamentPlayer, error) {
	var out []models.TournamentPlayer
	err := r.with(func(st *fakeState) error {
		for _, id := range ids {
			if p, ok := st.players[id]; ok {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

func (r *fakeRepo) LockTournamentPlayers(ctx context.Context, ids []uuid.UUID) ([]models.TournamentPlayer, error) {
	return r.GetTournamentPlayers(ctx, ids)
}

func (r *fakeRepo) GetLeagueSettings(ctx context.Context, tournamentID uuid.UUID) (*models.LeagueSettings, error) {
	var out *models.LeagueSettings
	err := r.with(func(st *fakeState) error {
		s, ok := st.settings[tournamentID]
		if !ok {
			return ErrSettingsNotFound
		}
		out = s
		return nil
	})
	return out, err
}

func (r *fakeRepo) InsertRankScoreHistory(ctx context.Context, rows []models.RankScoreHistory) error {
	return r.with(func(st *fakeState) error {
		st.history = append(st.history, rows...)
		return nil
	})
}

func (r *fakeRepo) AdjustRankScore(ctx context.Context, tournamentPlayerID uuid.UUID, delta decimal.Decimal) error {
	return r.with(func(st *fakeState) error {
		if r.failAdjustAfter >= 0 && r.adjustCalls >= r.failAdjustAfter {
			return errors.New("connection reset")
		}
		r.adjustCalls++
		p, ok := st.players[tournamentPlayerID]
		if !ok {
			return errors.New("no such player")
		}
		p.RankScore = decimal.NewNullDecimal(p.Rating().Add(delta))
		st.players[tournamentPlayerID] = p
		return nil
	})
}

func (r *fakeRepo) InsertOutboxEvent(ctx context.Context, gameDayID uuid.UUID, eventType events.EventType, payload []byte) error {
	return r.with(func(st *fakeState) error {
		st.outbox = append(st.outbox, outboxRow{GameDayID: gameDayID, Type: eventType, Payload: payload})
		return nil
	})
}

// fakeTournaments resolves tournaments and registrations from the fake repo's players.
type fakeTournaments struct {
	repo        *fakeRepo
	tournaments map[uuid.UUID]*models.Tournament
}

var _ TournamentAccess = (*fakeTournaments)(nil)

func (f *fakeTournaments) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, apperrors.NotFound("Tournament not found")
	}
	c := *t
	return &c, nil
}

func (f *fakeTournaments) CheckAdminAccess(ctx context.Context, caller models.Caller, tournament *models.Tournament) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.Role == models.RoleTournyAdmin && tournament.HasAdmin(caller.UserID) {
		return nil
	}
	return apperrors.Forbidden("Access denied: you are not an admin of this tournament")
}

func (f *fakeTournaments) GetPlayerRegistration(ctx context.Context, caller models.Caller, tournamentID uuid.UUID) (*models.TournamentPlayer, error) {
	if caller.Role != models.RolePlayer {
		return nil, apperrors.Forbidden("Only players can access this resource")
	}
	st := f.repo.snapshot()
	for _, p := range st.players {
		if p.TournamentID == tournamentID && p.UserID == caller.UserID && p.Status == models.PlayerStatusEnabled {
			return &p, nil
		}
	}
	return nil, apperrors.Forbidden("You are not registered in this tournament")
}
