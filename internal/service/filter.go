package service

import (
	"strings"

	"go-wholesale-console/internal/model"
)

// StoreQuery filters a store listing.
type StoreQuery struct {
	Search string
	Status model.StoreStatus
}

// UserQuery filters a user listing. An empty Role matches every role.
type UserQuery struct {
	Search string
	Role   model.Role
}

func containsFold(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

func normalizeSearch(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// StoreMatchesSearch is the case-insensitive substring match over name, email, phone,
// city and state.
func StoreMatchesSearch(s model.Store, search string) bool {
	q := normalizeSearch(search)
	if q == "" {
		return true
	}
	return containsFold(s.Name, q) ||
		containsFold(s.Email, q) ||
		containsFold(s.Phone, q) ||
		containsFold(s.Address.City, q) ||
		containsFold(s.Address.State, q)
}

// UserMatchesSearch matches name, email and phone.
func UserMatchesSearch(u model.User, search string) bool {
	q := normalizeSearch(search)
	if q == "" {
		return true
	}
	return containsFold(u.Name, q) ||
		containsFold(u.Email, q) ||
		containsFold(u.Phone, q)
}

// FilterStoresBySearch keeps stores matching search.
func FilterStoresBySearch(stores []model.Store, search string) []model.Store {
	out := make([]model.Store, 0, len(stores))
	for _, s := range stores {
		if StoreMatchesSearch(s, search) {
			out = append(out, s)
		}
	}
	return out
}

// FilterStoresByStatus keeps stores passing the status filter.
func FilterStoresByStatus(stores []model.Store, status model.StoreStatus) []model.Store {
	out := make([]model.Store, 0, len(stores))
	for _, s := range stores {
		if status.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterStores applies both filters; they are independent predicates so the order does not matter.
func FilterStores(stores []model.Store, q StoreQuery) []model.Store {
	return FilterStoresByStatus(FilterStoresBySearch(stores, q.Search), q.Status)
}

// FilterUsersBySearch keeps users matching search.
func FilterUsersBySearch(users []model.User, search string) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if UserMatchesSearch(u, search) {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsersByRole keeps users with role; an empty role keeps everyone.
func FilterUsersByRole(users []model.User, role model.Role) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsers applies both filters.
func FilterUsers(users []model.User, q UserQuery) []model.User {
	return FilterUsersByRole(FilterUsersBySearch(users, q.Search), q.Role)
}
