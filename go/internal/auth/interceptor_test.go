package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	userv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1/userv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[uuid.UUID]*models.User

func (s stubUsers) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("User not found")
}

// echoService answers GetMe with whoever the interceptor put in the context.
type echoService struct {
	userv1connect.UnimplementedUserServiceHandler
}

func (echoService) GetMe(ctx context.Context, _ *connect.Request[userv1.GetMeRequest]) (*connect.Response[userv1.GetMeResponse], error) {
	caller, ok := CallerFromContext(ctx)
	if !ok {
		return connect.NewResponse(&userv1.GetMeResponse{User: &userv1.User{Username: "anonymous"}}), nil
	}
	return connect.NewResponse(&userv1.GetMeResponse{User: &userv1.User{Username: caller.Username}}), nil
}

func newEchoClient(t *testing.T, interceptor connect.Interceptor) userv1connect.UserServiceClient {
	t.Helper()
	path, handler := userv1connect.NewUserServiceHandler(echoService{}, connect.WithInterceptors(interceptor))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return userv1connect.NewUserServiceClient(server.Client(), server.URL)
}

func TestInterceptor(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "kim", Role: models.RoleTournyAdmin}
	users := stubUsers{user.ID: user}
	private := newEchoClient(t, NewInterceptor(NewVerifier("secret"), users))
	public := newEchoClient(t, NewInterceptor(NewVerifier("secret"), users, userv1connect.UserServiceGetMeProcedure))

	token, err := IssueToken("secret", user.ID, time.Now(), time.Hour)
	require.NoError(t, err)
	withToken := func(token string) *connect.Request[userv1.GetMeRequest] {
		req := connect.NewRequest(&userv1.GetMeRequest{})
		if token != "" {
			req.Header().Set("Authorization", "Bearer "+token)
		}
		return req
	}
	ctx := context.Background()

	resp, err := private.GetMe(ctx, withToken(token))
	require.NoError(t, err)
	assert.Equal(t, "kim", resp.Msg.GetUser().GetUsername())

	_, err = private.GetMe(ctx, withToken(""))
	var ce *connect.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, connect.CodeUnauthenticated, ce.Code())
	assert.Equal(t, "Authentication required", ce.Message())

	_, err = private.GetMe(ctx, withToken("junk"))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Invalid or expired token", ce.Message())

	stranger, err := IssueToken("secret", uuid.New(), time.Now(), time.Hour)
	require.NoError(t, err)
	_, err = private.GetMe(ctx, withToken(stranger))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Authenticated user not found", ce.Message())

	resp, err = public.GetMe(ctx, withToken(""))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", resp.Msg.GetUser().GetUsername())

	resp, err = public.GetMe(ctx, withToken(token))
	require.NoError(t, err)
	assert.Equal(t, "kim", resp.Msg.GetUser().GetUsername())
}

func TestRequireCaller(t *testing.T) {
	_, err := RequireCaller(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))

	caller := models.Caller{UserID: uuid.New(), Role: models.RolePlayer}
	got, err := RequireCaller(WithCaller(context.Background(), caller))
	require.NoError(t, err)
	assert.Equal(t, caller, got)
}
