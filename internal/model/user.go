package model

// User is a management-domain account owned by the external API.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    Role   `json:"role"`
	StoreID string `json:"storeId,omitempty"`
}
