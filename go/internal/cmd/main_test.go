package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"connectrpc.com/grpcreflect"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/gameday/v1/gamedayv1connect"
	tournamentv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/tournament/v1/tournamentv1connect"
	userv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1/userv1connect"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, []string{"MODIFIED_ELO"}, cfg.Rating.EnabledAlgorithms)
		assert.Zero(t, cfg.GameDay.ShuffleSeed)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := loadConfig(writeConfig(t, "server:\n  port: 9090\n  allowed_origins: [\"https://league.example.com\"]\ngameday:\n  shuffle_seed: 42\n"))
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, []string{"https://league.example.com"}, cfg.Server.AllowedOrigins)
		assert.EqualValues(t, 42, cfg.GameDay.ShuffleSeed)
	})

	t.Run("PORT wins over the file", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		cfg, err := loadConfig(writeConfig(t, "server:\n  port: 9090\n"))
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "rating:\n  enabled_algorithms: [GLICKO2]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"GLICKO2" is not available`)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "server: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}

func newTestServer(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	cfg := defaultConfig()
	srv := httptest.NewServer(newHandler(setupServices(database, cfg, "server-secret"), cfg))
	t.Cleanup(srv.Close)
	return srv, mock
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestProceduresRequireToken(t *testing.T) {
	srv, mock := newTestServer(t)

	_, err := userv1connect.NewUserServiceClient(srv.Client(), srv.URL).GetMe(context.Background(), connect.NewRequest(&userv1.GetMeRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicRankingsSkipAuthentication(t *testing.T) {
	srv, _ := newTestServer(t)

	// no rows are mocked, so the call fails past the auth layer
	_, err := tournamentv1connect.NewTournamentServiceClient(srv.Client(), srv.URL).GetPublicRankings(context.Background(),
		connect.NewRequest(&tournamentv1.GetPublicRankingsRequest{TournamentId: uuid.New().String()}))
	require.Error(t, err)
	assert.NotEqual(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+userv1connect.UserServiceGetMeProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://league.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestReflectionListsServices(t *testing.T) {
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	cfg := defaultConfig()
	srv := httptest.NewUnstartedServer(newHandler(setupServices(database, cfg, "server-secret"), cfg))
	srv.EnableHTTP2 = true
	srv.StartTLS()
	t.Cleanup(srv.Close)

	stream := grpcreflect.NewClient(srv.Client(), srv.URL, connect.WithGRPC()).NewStream(context.Background())
	t.Cleanup(func() { _, _ = stream.Close() })

	names, err := stream.ListServices()
	require.NoError(t, err)
	assert.ElementsMatch(t, []protoreflect.FullName{
		gamedayv1connect.GameDayServiceName,
		tournamentv1connect.TournamentServiceName,
		userv1connect.UserServiceName,
	}, names)

	files, err := stream.FileContainingSymbol(gamedayv1connect.GameDayServiceName)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "shuttleleague/gameday/v1/gameday.proto", files[0].GetName())
}
