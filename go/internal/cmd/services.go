package main

import (
	"database/sql"
	"math/rand"

	"github.com/mcdev12/shuttleleague/go/internal/auth"
	"github.com/mcdev12/shuttleleague/go/internal/gameday"
	"github.com/mcdev12/shuttleleague/go/internal/tournaments"
	"github.com/mcdev12/shuttleleague/go/internal/users"
	usersdb "github.com/mcdev12/shuttleleague/go/internal/users/db"
)

type Services struct {
	GameDays    *gameday.Service
	Tournaments *tournaments.Service
	Users       *users.Service

	// for the auth interceptor
	UserLookup auth.UserLookup
	Verifier   *auth.Verifier
}

func setupServices(database *sql.DB, config *Config, jwtSecret string) *Services {
	// Database layer → Repository layer → App layer → Service layer

	// Users
	userRepo := users.NewRepository(usersdb.New(database))
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp)

	// Tournaments
	tournamentRepo := tournaments.NewRepository(database)
	tournamentApp := tournaments.NewApp(tournamentRepo, nil)
	tournamentService := tournaments.NewService(tournamentApp)

	// Game days
	var opts []gameday.Option
	if config.GameDay.ShuffleSeed != 0 {
		opts = append(opts, gameday.WithRand(rand.New(rand.NewSource(config.GameDay.ShuffleSeed))))
	}
	gameDayRepo := gameday.NewRepository(database)
	gameDayApp := gameday.NewApp(gameDayRepo, tournamentApp, opts...)
	gameDayService := gameday.NewService(gameDayApp)

	return &Services{
		GameDays:    gameDayService,
		Tournaments: tournamentService,
		Users:       userService,
		UserLookup:  userApp,
		Verifier:    auth.NewVerifier(jwtSecret),
	}
}
