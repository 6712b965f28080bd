package service

import (
	"strings"
	"testing"
	"time"

	"go-wholesale-console/internal/model"
	"go-wholesale-console/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func TestSessionService_IssueThenResolve(t *testing.T) {
	svc := NewSessionService(testSecret, time.Hour)
	id := model.Identity{Name: "Ravi", Email: "ravi@wholesale.test", Role: model.RoleSalesMan, StoreID: "s3"}

	blob, err := svc.Issue(id, "upstream-1")
	require.NoError(t, err)

	got := svc.Resolve(blob)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	state := svc.Read(blob)
	require.NotNil(t, state)
	assert.Equal(t, "upstream-1", state.UpstreamToken)
}

func TestSessionService_MalformedFailsOpen(t *testing.T) {
	svc := NewSessionService(testSecret, time.Hour)
	other := NewSessionService("another-secret", time.Hour)
	expired := NewSessionService(testSecret, -time.Minute)

	foreign, err := other.Issue(model.Identity{Email: "a@b.co", Role: model.RoleAdmin}, "t")
	require.NoError(t, err)
	old, err := expired.Issue(model.Identity{Email: "a@b.co", Role: model.RoleAdmin}, "t")
	require.NoError(t, err)
	valid, err := svc.Issue(model.Identity{Email: "a@b.co", Role: model.RoleAdmin}, "t")
	require.NoError(t, err)

	for name, blob := range map[string]string{
		"empty":    "",
		"garbage":  "%%%not-a-token",
		"foreign":  foreign,
		"expired":  old,
		"tampered": valid[:strings.LastIndex(valid, ".")] + ".c2lnbmF0dXJl",
	} {
		assert.NotPanics(t, func() {
			assert.Nil(t, svc.Resolve(blob), name)
		})
	}
}

func TestSessionService_RejectsIncompleteClaims(t *testing.T) {
	svc := NewSessionService(testSecret, time.Hour)
	blob, err := jwt.GenerateToken([]byte(testSecret), jwt.Claims{Email: "a@b.co", Role: "ADMIN"}, time.Hour)
	require.NoError(t, err)

	assert.Nil(t, svc.Resolve(blob), "no upstream token means no usable session")
}

func TestSessionService_KeepsUnknownRole(t *testing.T) {
	svc := NewSessionService(testSecret, time.Hour)
	blob, err := svc.Issue(model.Identity{Email: "a@b.co", Role: "OWNER"}, "t")
	require.NoError(t, err)

	id := svc.Resolve(blob)
	require.NotNil(t, id)
	assert.Equal(t, model.Role("OWNER"), id.Role)
}

func TestSession_RoleAndActor(t *testing.T) {
	var nilSess *Session
	assert.False(t, nilSess.Authenticated())
	assert.Equal(t, model.RoleUser, nilSess.Role())

	anon := AnonymousSession()
	assert.False(t, anon.Authenticated())
	assert.Equal(t, model.RoleUser, anon.Role())
	assert.Equal(t, "anonymous", anon.Actor())
	assert.Equal(t, "en", anon.Language)
	assert.Equal(t, model.ThemeLight, anon.Theme)

	sess := &Session{Identity: &model.Identity{Email: "m@w.in", Role: model.RoleManager}}
	assert.Equal(t, model.RoleManager, sess.Role())
	assert.Equal(t, "m@w.in", sess.Actor())
}
