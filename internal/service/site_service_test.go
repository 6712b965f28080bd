package service

import (
	"context"
	"errors"
	"testing"

	"go-wholesale-console/internal/model"
	"go-wholesale-console/pkg/validator"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContact(t *testing.T) {
	api := &fakeAPI{}
	svc := NewSiteService(api, zerolog.Nop())

	err := svc.SubmitContact(context.Background(), &model.ContactMessage{Name: "Neha", Email: "a@b.co", Message: "Need a bulk quote for rice"})
	require.NoError(t, err)
	require.Len(t, api.contactCalls, 1)
	assert.Equal(t, "a@b.co", api.contactCalls[0].Email)

	err = svc.SubmitContact(context.Background(), &model.ContactMessage{Name: "Neha", Email: "not-an-email", Message: "Need a bulk quote for rice"})
	var verr *validator.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Len(t, api.contactCalls, 1)
}

func TestSiteContent_Copies(t *testing.T) {
	svc := NewSiteService(&fakeAPI{}, zerolog.Nop())

	cats := svc.Categories()
	require.NotEmpty(t, cats)
	cats[0].Slug = "mutated"
	assert.NotEqual(t, "mutated", svc.Categories()[0].Slug)

	about := svc.About()
	about.Highlights[0] = "mutated"
	assert.NotEqual(t, "mutated", svc.About().Highlights[0])
}

func TestDashboard_ForRole(t *testing.T) {
	svc := NewDashboardService()

	for _, role := range model.AllRoles {
		dash := svc.ForRole(role)
		assert.Equal(t, role, dash.Role)
		assert.NotEmpty(t, dash.KPIs, role)
	}

	unknown := svc.ForRole("WAREHOUSE")
	assert.Equal(t, model.RoleUser, unknown.Role)
	assert.Equal(t, svc.ForRole(model.RoleUser), unknown)
}

func TestDashboard_PanelsForEveryPageRoute(t *testing.T) {
	svc := NewDashboardService()
	nav, err := NewDefaultNavigationService()
	require.NoError(t, err)

	for _, route := range nav.Routes() {
		if route == model.RouteDashboard || route == model.RouteStores || route == model.RouteUsers {
			continue
		}
		assert.NotEmpty(t, svc.Panels(route), route)
	}
}
