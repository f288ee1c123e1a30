package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/mcdev12/shuttleleague/go/internal/auth"
	"github.com/mcdev12/shuttleleague/go/internal/dbconfig"
	"github.com/mcdev12/shuttleleague/go/internal/models"
)

// SeedUser mirrors a user entry in the seed JSON
type SeedUser struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

type SeedPlayer struct {
	Username  string           `json:"username"`
	RankScore *decimal.Decimal `json:"rank_score"`
	Disabled  bool             `json:"disabled"`
}

type SeedTournament struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Owner           string       `json:"owner"`
	Admins          []string     `json:"admins"`
	K               int          `json:"k"`
	AbsenteeDemerit int          `json:"absentee_demerit"`
	Players         []SeedPlayer `json:"players"`
}

type SeedFile struct {
	Users      []SeedUser     `json:"users"`
	Tournament SeedTournament `json:"tournament"`
}

// parseSeed decodes the file and fills in generated ids
func parseSeed(data []byte) (*SeedFile, error) {
	var s SeedFile
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}

	byName := make(map[string]SeedUser, len(s.Users))
	for i := range s.Users {
		u := &s.Users[i]
		if u.Username == "" {
			return nil, fmt.Errorf("user %d has no username", i)
		}
		switch u.Role {
		case models.RoleAdmin, models.RoleTournyAdmin, models.RolePlayer:
		default:
			return nil, fmt.Errorf("user %s has unknown role %q", u.Username, u.Role)
		}
		if _, dup := byName[u.Username]; dup {
			return nil, fmt.Errorf("duplicate username %s", u.Username)
		}
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		byName[u.Username] = *u
	}

	t := &s.Tournament
	if t.Name == "" {
		return nil, errors.New("tournament name is required")
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.K <= 0 {
		return nil, errors.New("k must be a positive integer")
	}
	if t.AbsenteeDemerit < 0 {
		return nil, errors.New("absentee demerit must be non-negative")
	}
	if _, ok := byName[t.Owner]; !ok {
		return nil, fmt.Errorf("owner %q is not a seeded user", t.Owner)
	}
	for _, a := range t.Admins {
		if _, ok := byName[a]; !ok {
			return nil, fmt.Errorf("admin %q is not a seeded user", a)
		}
	}
	for _, p := range t.Players {
		u, ok := byName[p.Username]
		if !ok {
			return nil, fmt.Errorf("player %q is not a seeded user", p.Username)
		}
		if u.Role != models.RolePlayer {
			return nil, fmt.Errorf("player %q must have role PLAYER", p.Username)
		}
	}

	return &s, nil
}

func (s *SeedFile) userID(username string) uuid.UUID {
	for _, u := range s.Users {
		if u.Username == username {
			return u.ID
		}
	}
	return uuid.Nil
}

func seed(ctx context.Context, tx pgx.Tx, s *SeedFile, now time.Time) error {
	for _, u := range s.Users {
		if _, err := tx.Exec(ctx, `
            INSERT INTO users (id, username, first_name, last_name, email, role, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
        `, u.ID, u.Username, u.FirstName, u.LastName, u.Email, string(u.Role), now); err != nil {
			return fmt.Errorf("insert user %s: %w", u.Username, err)
		}
	}

	t := s.Tournament
	if _, err := tx.Exec(ctx, `
        INSERT INTO tournaments (id, name, type, enabled, owner_id, created_at, updated_at)
        VALUES ($1,$2,$3,TRUE,$4,$5,$5)
    `, t.ID, t.Name, string(models.TournamentTypeLeague), s.userID(t.Owner), now); err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}

	for _, a := range t.Admins {
		if _, err := tx.Exec(ctx, `INSERT INTO tournament_admins (tournament_id, user_id) VALUES ($1,$2)`,
			t.ID, s.userID(a)); err != nil {
			return fmt.Errorf("insert admin %s: %w", a, err)
		}
	}

	cfg, err := models.MarshalRatingConfig(models.ModifiedEloConfig{K: t.K, AbsenteeDemerit: t.AbsenteeDemerit})
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
        INSERT INTO league_settings (tournament_id, ranking_logic, rating_config, updated_at)
        VALUES ($1,$2,$3,$4)
    `, t.ID, string(models.RankingLogicModifiedElo), cfg, now); err != nil {
		return fmt.Errorf("insert league settings: %w", err)
	}

	for _, p := range t.Players {
		status := models.PlayerStatusEnabled
		if p.Disabled {
			status = models.PlayerStatusDisabled
		}
		var score decimal.NullDecimal
		if p.RankScore != nil {
			score = decimal.NewNullDecimal(*p.RankScore)
		}
		if _, err := tx.Exec(ctx, `
            INSERT INTO tournament_players (tournament_id, user_id, status, rank_score, status_changed_at)
            VALUES ($1,$2,$3,$4,$5)
        `, t.ID, s.userID(p.Username), string(status), score, now); err != nil {
			return fmt.Errorf("insert player %s: %w", p.Username, err)
		}
	}
	return nil
}

func main() {
	path := flag.String("file", "go/internal/assets/league.json", "seed file")
	ttl := flag.Duration("token-ttl", 30*24*time.Hour, "lifetime of printed tokens")
	flag.Parse()

	_ = godotenv.Load()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	s, err := parseSeed(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid seed file: %v\n", err)
		os.Exit(1)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()
	if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return seed(ctx, tx, s, now)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed, nothing written: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded tournament %s (%s): %d users, %d players\n",
		s.Tournament.Name, s.Tournament.ID, len(s.Users), len(s.Tournament.Players))
	for _, u := range s.Users {
		token, err := auth.IssueToken(secret, u.ID, now, *ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "issue token for %s: %v\n", u.Username, err)
			continue
		}
		fmt.Printf("%-16s %-13s %s\n", u.Username, u.Role, token)
	}
}
