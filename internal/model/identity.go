package model

// Identity is the signed-in user as seen by the console. It is created at login,
// destroyed at logout and never mutated in between.
type Identity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	StoreID string `json:"storeId,omitempty"`
}
