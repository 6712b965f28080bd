package service

import (
	"context"
	"errors"
	"testing"

	"go-wholesale-console/internal/apiclient"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/ws"
	"go-wholesale-console/pkg/validator"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserRequest() *model.CreateUserRequest {
	return &model.CreateUserRequest{
		Name:            "Kiran Patel",
		Email:           "kiran@wholesale.test",
		Phone:           "98400",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            model.RoleSalesMan,
		StoreID:         "s1",
	}
}

func TestCreateUser_Validation(t *testing.T) {
	cases := map[string]func(r *model.CreateUserRequest){
		"five char password":   func(r *model.CreateUserRequest) { r.Password, r.ConfirmPassword = "abcde", "abcde" },
		"mismatched confirm":   func(r *model.CreateUserRequest) { r.ConfirmPassword = "secreT" },
		"bad email":            func(r *model.CreateUserRequest) { r.Email = "not-an-email" },
		"role outside the set": func(r *model.CreateUserRequest) { r.Role = "OWNER" },
		"missing name":         func(r *model.CreateUserRequest) { r.Name = "" },
		"missing phone":        func(r *model.CreateUserRequest) { r.Phone = "" },
		"missing role":         func(r *model.CreateUserRequest) { r.Role = "" },
		"missing confirmation": func(r *model.CreateUserRequest) { r.ConfirmPassword = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			api := &fakeAPI{}
			svc := NewUserService(api, nil, zerolog.Nop())
			req := validUserRequest()
			mutate(req)

			_, err := svc.CreateUser(context.Background(), adminSession(), req)
			var verr *validator.ValidationError
			assert.True(t, errors.As(err, &verr), "want validation error, got %v", err)
			assert.Zero(t, api.calls(), "no upstream call on invalid input")
		})
	}
}

func TestCreateUser_SixCharPasswordAccepted(t *testing.T) {
	api := &fakeAPI{}
	pub := &fakePublisher{}
	svc := NewUserService(api, pub, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), adminSession(), validUserRequest())
	require.NoError(t, err)
	assert.Equal(t, "new-user", user.ID)

	require.Len(t, api.registerCalls, 1)
	sent := api.registerCalls[0]
	assert.Equal(t, "secret", sent.Password)
	assert.Equal(t, model.RoleSalesMan, sent.Role)
	assert.Equal(t, "s1", sent.StoreID)
	assert.Equal(t, []string{ws.EventUserCreated}, pub.types())
}

func TestCreateUser_APIMessageVerbatim(t *testing.T) {
	api := &fakeAPI{err: &apiclient.APIError{Status: 409, Message: "User with this email already exists"}}
	svc := NewUserService(api, nil, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), adminSession(), validUserRequest())
	require.Error(t, err)
	assert.Equal(t, "User with this email already exists", err.Error())
}

func TestCreateUser_RequiresSession(t *testing.T) {
	api := &fakeAPI{}
	svc := NewUserService(api, nil, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), nil, validUserRequest())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, api.calls())
}

func TestListUsers_RoleAndSearch(t *testing.T) {
	api := &fakeAPI{users: sampleUsers()}
	svc := NewUserService(api, nil, zerolog.Nop())

	listing, err := svc.ListUsers(context.Background(), adminSession(), UserQuery{Role: model.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, len(sampleUsers()), listing.Total)
	for _, u := range listing.Users {
		assert.Equal(t, model.RoleManager, u.Role)
	}
	assert.Equal(t, len(listing.Users), listing.Shown)
}

func TestRoles_FilteredByActor(t *testing.T) {
	svc := NewUserService(&fakeAPI{}, nil, zerolog.Nop())

	codes := func(role model.Role) []model.Role {
		var out []model.Role
		for _, info := range svc.Roles(role) {
			out = append(out, info.Code)
		}
		return out
	}

	assert.Equal(t, model.AllRoles, codes(model.RoleSuperAdmin))
	assert.NotContains(t, codes(model.RoleAdmin), model.RoleSuperAdmin)
	assert.NotContains(t, codes(model.RoleAdmin), model.RoleAdmin)
	assert.Equal(t, []model.Role{model.RoleSalesMan, model.RolePurchaseMan, model.RoleUser}, codes(model.RoleManager))
	assert.Empty(t, codes(model.RoleSalesMan))
	assert.Empty(t, codes("WAREHOUSE"))

	roles := svc.Roles(model.RoleSuperAdmin)
	roles[0].Code = "MUTATED"
	assert.NotEqual(t, model.Role("MUTATED"), svc.Roles(model.RoleSuperAdmin)[0].Code)
}

func TestCreateUser_RoleAboveActorForbidden(t *testing.T) {
	tests := []struct {
		actor  model.Role
		target model.Role
		want   error
	}{
		{model.RoleManager, model.RoleSuperAdmin, ErrForbidden},
		{model.RoleManager, model.RoleAdmin, ErrForbidden},
		{model.RoleManager, model.RoleManager, ErrForbidden},
		{model.RoleManager, model.RoleSalesMan, nil},
		{model.RoleAdmin, model.RoleSuperAdmin, ErrForbidden},
		{model.RoleAdmin, model.RoleManager, nil},
		{model.RoleSuperAdmin, model.RoleSuperAdmin, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.actor)+"->"+string(tt.target), func(t *testing.T) {
			api := &fakeAPI{}
			svc := NewUserService(api, nil, zerolog.Nop())
			sess := adminSession()
			sess.Identity.Role = tt.actor
			req := validUserRequest()
			req.Role = tt.target

			_, err := svc.CreateUser(context.Background(), sess, req)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Zero(t, api.calls())
				return
			}
			require.NoError(t, err)
			assert.Len(t, api.registerCalls, 1)
		})
	}
}
