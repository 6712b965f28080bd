package service

import (
	"testing"

	"go-wholesale-console/internal/model"

	"github.com/stretchr/testify/assert"
)

func sampleStores() []model.Store {
	return []model.Store{
		{ID: "s1", Name: "Delhi Wholesale Mart", Email: "delhi@mart.in", Phone: "011-4000",
			Address: model.Address{Street: "Chandni Chowk", City: "Delhi", State: "DL", ZipCode: "110006"}, IsActive: true},
		{ID: "s2", Name: "Pune Depot", Email: "ops@punedepot.in", Phone: "020-5555",
			Address: model.Address{Street: "FC Road", City: "Pune", State: "Maharashtra", ZipCode: "411004"}, IsActive: false},
		{ID: "s3", Name: "Capital Grocers", Email: "hello@capital.in", Phone: "011-9000",
			Address: model.Address{Street: "Karol Bagh", City: "New Delhi", State: "DL", ZipCode: "110005"}, IsActive: true},
	}
}

func ids(stores []model.Store) []string {
	out := make([]string, len(stores))
	for i, s := range stores {
		out[i] = s.ID
	}
	return out
}

func TestFilterStores_CaseInsensitive(t *testing.T) {
	stores := sampleStores()
	upper := FilterStoresBySearch(stores, "DELHI")
	lower := FilterStoresBySearch(stores, "delhi")

	assert.Equal(t, lower, upper)
	assert.Equal(t, []string{"s1", "s3"}, ids(upper))
}

func TestFilterStores_SearchFields(t *testing.T) {
	stores := sampleStores()
	assert.Equal(t, []string{"s2"}, ids(FilterStoresBySearch(stores, "punedepot")), "email")
	assert.Equal(t, []string{"s1", "s3"}, ids(FilterStoresBySearch(stores, "011-")), "phone")
	assert.Equal(t, []string{"s2"}, ids(FilterStoresBySearch(stores, "maharash")), "state")
	assert.Equal(t, []string{"s3"}, ids(FilterStoresBySearch(stores, "capital")), "name")
	assert.Empty(t, FilterStoresBySearch(stores, "karol bagh"), "street is not searched")
	assert.Len(t, FilterStoresBySearch(stores, "   "), 3, "blank search keeps everything")
}

func TestFilterStores_InactiveStatus(t *testing.T) {
	got := FilterStores(sampleStores(), StoreQuery{Status: model.StoreStatusInactive})
	assert.Equal(t, []string{"s2"}, ids(got))
}

func TestFilterStores_SearchCommutesWithStatus(t *testing.T) {
	stores := sampleStores()
	for _, search := range []string{"", "delhi", "DL", "in", "pune", "nothing"} {
		for _, status := range []model.StoreStatus{model.StoreStatusAll, model.StoreStatusActive, model.StoreStatusInactive} {
			a := FilterStoresByStatus(FilterStoresBySearch(stores, search), status)
			b := FilterStoresBySearch(FilterStoresByStatus(stores, status), search)
			assert.Equal(t, a, b, "search=%q status=%s", search, status)
			assert.Equal(t, a, FilterStores(stores, StoreQuery{Search: search, Status: status}))
		}
	}
}

func TestParseStoreStatus(t *testing.T) {
	assert.Equal(t, model.StoreStatusActive, model.ParseStoreStatus("active"))
	assert.Equal(t, model.StoreStatusInactive, model.ParseStoreStatus("inactive"))
	assert.Equal(t, model.StoreStatusAll, model.ParseStoreStatus(""))
	assert.Equal(t, model.StoreStatusAll, model.ParseStoreStatus("archived"))
}

func sampleUsers() []model.User {
	return []model.User{
		{ID: "u1", Name: "Asha Rao", Email: "asha@w.in", Phone: "98100", Role: model.RoleManager},
		{ID: "u2", Name: "Ravi Kumar", Email: "ravi@w.in", Phone: "98200", Role: model.RoleSalesMan},
		{ID: "u3", Name: "Meera Shah", Email: "meera@w.in", Phone: "98300", Role: model.RoleManager},
	}
}

func TestFilterUsers(t *testing.T) {
	users := sampleUsers()

	got := FilterUsers(users, UserQuery{Role: model.RoleManager})
	assert.Len(t, got, 2)

	got = FilterUsers(users, UserQuery{Search: "RAVI"})
	assert.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	got = FilterUsers(users, UserQuery{Search: "983", Role: model.RoleManager})
	assert.Len(t, got, 1)
	assert.Equal(t, "u3", got[0].ID)

	assert.Empty(t, FilterUsers(users, UserQuery{Search: "ravi", Role: model.RoleManager}))
}

func TestFilterUsers_SearchCommutesWithRole(t *testing.T) {
	users := sampleUsers()
	for _, search := range []string{"", "a", "W.IN", "meera"} {
		for _, role := range []model.Role{"", model.RoleManager, model.RoleSalesMan, model.RoleAdmin} {
			a := FilterUsersByRole(FilterUsersBySearch(users, search), role)
			b := FilterUsersBySearch(FilterUsersByRole(users, role), search)
			assert.Equal(t, a, b, "search=%q role=%s", search, role)
		}
	}
}
