package service

import (
	"context"

	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/ws"
	"go-wholesale-console/pkg/validator"

	"github.com/rs/zerolog"
)

// UserAPI is the part of the external API the user screens use.
type UserAPI interface {
	ListUsers(ctx context.Context, token string) ([]model.User, error)
	RegisterUser(ctx context.Context, token string, req model.RegisterUserPayload) (*model.User, error)
}

// UserListing is a filtered user table.
type UserListing struct {
	Users []model.User `json:"users"`
	Total int          `json:"total"`
	Shown int          `json:"shown"`
}

type UserService interface {
	ListUsers(ctx context.Context, sess *Session, q UserQuery) (*UserListing, error)
	CreateUser(ctx context.Context, sess *Session, req *model.CreateUserRequest) (*model.User, error)
	// Roles returns the roles actor may give to a new user.
	Roles(actor model.Role) []model.RoleInfo
}

type userService struct {
	api    UserAPI
	events EventPublisher
	logger zerolog.Logger
}

func NewUserService(api UserAPI, events EventPublisher, logger zerolog.Logger) UserService {
	if events == nil {
		events = noopPublisher{}
	}
	return &userService{
		api:    api,
		events: events,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) ListUsers(ctx context.Context, sess *Session, q UserQuery) (*UserListing, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	users, err := s.api.ListUsers(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, err
	}

	filtered := FilterUsers(users, q)
	return &UserListing{Users: filtered, Total: len(users), Shown: len(filtered)}, nil
}

func (s *userService) CreateUser(ctx context.Context, sess *Session, req *model.CreateUserRequest) (*model.User, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	// 1. Validate request (presence, email shape, password length and confirmation, role)
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	// 2. The actor may only hand out roles listed for it
	if !model.CanAssign(sess.Role(), req.Role) {
		s.logger.Warn().Str("actor", sess.Actor()).Str("role", string(req.Role)).Msg("role not assignable")
		return nil, ErrForbidden
	}

	// 3. Register upstream without the confirmation field
	user, err := s.api.RegisterUser(ctx, sess.UpstreamToken, req.Payload())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Str("actor", sess.Actor()).Msg("user created")
	s.events.Publish(ws.EventUserCreated, sess.Actor(), user)
	return user, nil
}

func (s *userService) Roles(actor model.Role) []model.RoleInfo {
	roles := make([]model.RoleInfo, 0, len(model.DefaultRoles))
	for _, info := range model.DefaultRoles {
		if model.CanAssign(actor, info.Code) {
			roles = append(roles, info)
		}
	}
	return roles
}
