package service

import (
	"time"

	"go-wholesale-console/internal/i18n"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/pkg/jwt"
)

// Session is the explicit per-request context of the console: who is signed in (if anyone)
// and how the shell should be presented. Middleware builds it; handlers pass it down.
type Session struct {
	Identity      *model.Identity
	UpstreamToken string
	Language      string
	Theme         model.Theme
}

// Authenticated reports whether an identity is attached.
func (s *Session) Authenticated() bool {
	return s != nil && s.Identity != nil
}

// Role of the session; anonymous sessions get the least-privileged role.
func (s *Session) Role() model.Role {
	if !s.Authenticated() || s.Identity.Role == "" {
		return model.DefaultRole
	}
	return s.Identity.Role
}

// Actor names the session in events and logs.
func (s *Session) Actor() string {
	if !s.Authenticated() {
		return "anonymous"
	}
	return s.Identity.Email
}

// AnonymousSession returns a session without identity using the default presentation.
func AnonymousSession() *Session {
	return &Session{Language: i18n.DefaultLanguage, Theme: model.DefaultTheme}
}

// SessionState is what the session blob holds.
type SessionState struct {
	Identity      model.Identity
	UpstreamToken string
}

// SessionService resolves and issues session blobs. It is the console's Role Resolver.
type SessionService interface {
	// Resolve returns the identity in blob, or nil when there is no usable session.
	// Malformed, expired or tampered blobs are treated as "no session".
	Resolve(blob string) *model.Identity
	// Read is Resolve plus the upstream API token.
	Read(blob string) *SessionState
	// Issue creates the blob for a fresh login.
	Issue(identity model.Identity, upstreamToken string) (string, error)
	TTL() time.Duration
}

type sessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret string, ttl time.Duration) SessionService {
	return &sessionService{secret: []byte(secret), ttl: ttl}
}

func (s *sessionService) Resolve(blob string) *model.Identity {
	state := s.Read(blob)
	if state == nil {
		return nil
	}
	return &state.Identity
}

func (s *sessionService) Read(blob string) *SessionState {
	if blob == "" {
		return nil
	}
	claims, err := jwt.ValidateToken(s.secret, blob)
	if err != nil {
		return nil
	}
	if claims.Email == "" || claims.UpstreamToken == "" {
		return nil
	}
	return &SessionState{
		Identity: model.Identity{
			Name:    claims.Name,
			Email:   claims.Email,
			Role:    model.Role(claims.Role),
			StoreID: claims.StoreID,
		},
		UpstreamToken: claims.UpstreamToken,
	}
}

func (s *sessionService) Issue(identity model.Identity, upstreamToken string) (string, error) {
	return jwt.GenerateToken(s.secret, jwt.Claims{
		Name:          identity.Name,
		Email:         identity.Email,
		Role:          string(identity.Role),
		StoreID:       identity.StoreID,
		UpstreamToken: upstreamToken,
	}, s.ttl)
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}
