package auth

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/rs/zerolog/log"
)

// UserLookup resolves the user a token was issued for
type UserLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// NewInterceptor authenticates every unary call except the listed public procedures.
// Public procedures still get a caller when a valid token is sent.
func NewInterceptor(verifier *Verifier, users UserLookup, publicProcedures ...string) connect.UnaryInterceptorFunc {
	public := make(map[string]bool, len(publicProcedures))
	for _, p := range publicProcedures {
		public[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			token := bearerToken(req.Header().Get("Authorization"))

			if public[procedure] && token == "" {
				return next(ctx, req)
			}

			caller, err := resolveCaller(ctx, verifier, users, token)
			if err != nil {
				log.Debug().Err(err).Str("procedure", procedure).Msg("authentication failed")
				return nil, apperrors.ToConnect(err)
			}
			return next(WithCaller(ctx, caller), req)
		}
	}
}

func resolveCaller(ctx context.Context, verifier *Verifier, users UserLookup, token string) (models.Caller, error) {
	userID, err := verifier.Verify(token)
	if errors.Is(err, ErrMissingToken) {
		return models.Caller{}, apperrors.Unauthenticated("Authentication required")
	}
	if err != nil {
		return models.Caller{}, apperrors.Unauthenticated("Invalid or expired token")
	}

	user, err := users.GetUser(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return models.Caller{}, apperrors.Unauthenticated("Authenticated user not found")
	}
	if err != nil {
		return models.Caller{}, err
	}

	return models.Caller{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
