package main

import (
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"connectrpc.com/grpcreflect"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/shuttleleague/go/internal/auth"
	"github.com/mcdev12/shuttleleague/go/internal/connectutil"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/gameday/v1/gamedayv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1/tournamentv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1/userv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/tournaments"
)

func setupServer(services *Services, config *Config) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.Port),
		Handler: newHandler(services, config),
	}
}

func newHandler(services *Services, config *Config) http.Handler {
	mux := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	registerServices(mux, services)
	setupReflection(mux)
	setupHealthCheck(mux)

	return h2c.NewHandler(c.Handler(mux), &http2.Server{})
}

func registerServices(mux *http.ServeMux, services *Services) {
	// logging runs outermost so it sees authentication failures too
	interceptors := connect.WithInterceptors(
		connectutil.NewLoggingInterceptor(),
		auth.NewInterceptor(services.Verifier, services.UserLookup, tournaments.PublicProcedures...),
	)

	gameDayPath, gameDayHandler := gamedayv1connect.NewGameDayServiceHandler(services.GameDays, interceptors)
	mux.Handle(gameDayPath, gameDayHandler)

	tournamentPath, tournamentHandler := tournamentv1connect.NewTournamentServiceHandler(services.Tournaments, interceptors)
	mux.Handle(tournamentPath, tournamentHandler)

	userPath, userHandler := userv1connect.NewUserServiceHandler(services.Users, interceptors)
	mux.Handle(userPath, userHandler)
}

func setupReflection(mux *http.ServeMux) {
	reflector := grpcreflect.NewStaticReflector(
		gamedayv1connect.GameDayServiceName,
		tournamentv1connect.TournamentServiceName,
		userv1connect.UserServiceName,
	)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
