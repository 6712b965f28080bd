package service

import (
	"context"
	"errors"

	"go-wholesale-console/internal/model"
	"go-wholesale-console/pkg/validator"

	"github.com/rs/zerolog"
)

var ErrSessionIssue = errors.New("failed to start session")

// AuthAPI checks credentials against the external API.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error)
}

// LoginResponse carries the new session blob and the identity it holds.
type LoginResponse struct {
	Blob     string
	Identity model.Identity
}

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*LoginResponse, error)
}

type authService struct {
	api      AuthAPI
	sessions SessionService
	logger   zerolog.Logger
}

func NewAuthService(api AuthAPI, sessions SessionService, logger zerolog.Logger) AuthService {
	return &authService{
		api:      api,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResponse, error) {
	// 1. Validate request
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	// 2. Credentials are checked by the API
	result, err := s.api.Login(ctx, *req)
	if err != nil {
		return nil, err
	}

	// 3. Normalize the role; unknown roles are kept as-is and resolve like the default role
	identity := result.User
	if role, ok := model.ParseRole(string(identity.Role)); ok {
		identity.Role = role
	} else {
		s.logger.Warn().Str("role", string(identity.Role)).Str("email", identity.Email).Msg("unknown role from API")
	}
	if identity.Email == "" {
		identity.Email = req.Email
	}

	// 4. Issue session blob
	blob, err := s.sessions.Issue(identity, result.Token)
	if err != nil {
		s.logger.Error().Err(err).Msg("issue session")
		return nil, ErrSessionIssue
	}

	s.logger.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("signed in")
	return &LoginResponse{Blob: blob, Identity: identity}, nil
}
