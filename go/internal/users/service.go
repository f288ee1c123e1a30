package users

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/auth"
	userv1 "github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1"
	"github.com/mcdev12/shuttleleague/go/internal/genproto/shuttleleague/user/v1/userv1connect"
	"github.com/mcdev12/shuttleleague/go/internal/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service implements the UserService connect handlers
type Service struct {
	app UsersApp
}

// NewService creates a new users service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

// Verify that Service implements the UserServiceHandler interface
var _ userv1connect.UserServiceHandler = (*Service)(nil)

// GetMe returns the authenticated user
func (s *Service) GetMe(ctx context.Context, req *connect.Request[userv1.GetMeRequest]) (*connect.Response[userv1.GetMeResponse], error) {
	caller, err := auth.RequireCaller(ctx)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}

	user, err := s.app.GetUser(ctx, caller.UserID)
	if err != nil {
		return nil, apperrors.ToConnect(err)
	}

	return connect.NewResponse(&userv1.GetMeResponse{
		User: s.userToProto(user),
	}), nil
}

func (s *Service) userToProto(user *models.User) *userv1.User {
	return &userv1.User{
		Id:        user.ID.String(),
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      s.roleToProto(user.Role),
		CreatedAt: timestamppb.New(user.CreatedAt),
	}
}

func (s *Service) roleToProto(role models.Role) userv1.UserRole {
	switch role {
	case models.RoleAdmin:
		return userv1.UserRole_USER_ROLE_ADMIN
	case models.RoleTournyAdmin:
		return userv1.UserRole_USER_ROLE_TOURNY_ADMIN
	case models.RolePlayer:
		return userv1.UserRole_USER_ROLE_PLAYER
	default:
		return userv1.UserRole_USER_ROLE_UNSPECIFIED
	}
}
