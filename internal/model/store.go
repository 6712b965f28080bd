package model

// Address of a store.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

// Store is a wholesale outlet owned by the external API. The console only keeps
// request-scoped copies.
type Store struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	IsActive bool    `json:"isActive"`
}

// StoreStatus filters store listings by activity.
type StoreStatus string

const (
	StoreStatusAll      StoreStatus = "all"
	StoreStatusActive   StoreStatus = "active"
	StoreStatusInactive StoreStatus = "inactive"
)

// ParseStoreStatus maps a query value to a StoreStatus; anything unknown means "all".
func ParseStoreStatus(s string) StoreStatus {
	switch StoreStatus(s) {
	case StoreStatusActive, StoreStatusInactive:
		return StoreStatus(s)
	default:
		return StoreStatusAll
	}
}

// Matches reports whether the store passes the status filter.
func (s StoreStatus) Matches(store Store) bool {
	switch s {
	case StoreStatusActive:
		return store.IsActive
	case StoreStatusInactive:
		return !store.IsActive
	default:
		return true
	}
}
