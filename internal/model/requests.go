package model

// CreateStoreRequest is the body of the create-store form.
type CreateStoreRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=120"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone" validate:"required,notblank,max=20"`
	Email    string  `json:"email" validate:"required,simple_email"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateStoreRequest is the body of the edit-store form. It always carries the whole store.
type UpdateStoreRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=120"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone" validate:"required,notblank,max=20"`
	Email    string  `json:"email" validate:"required,simple_email"`
	IsActive bool    `json:"isActive"`
}

// UpdateRequest is the edit form holding s, used to check a snapshot before it is sent back.
func (s Store) UpdateRequest() UpdateStoreRequest {
	return UpdateStoreRequest{
		Name:     s.Name,
		Address:  s.Address,
		Phone:    s.Phone,
		Email:    s.Email,
		IsActive: s.IsActive,
	}
}

// CreateUserRequest is the body of the create-user form. ConfirmPassword never leaves
// the console.
type CreateUserRequest struct {
	Name            string `json:"name" validate:"required,notblank,max=120"`
	Email           string `json:"email" validate:"required,simple_email"`
	Phone           string `json:"phone" validate:"required,notblank,max=20"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            Role   `json:"role" validate:"required,role"`
	StoreID         string `json:"storeId,omitempty"`
}

// RegisterUserPayload is what the external API receives for a new user.
type RegisterUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	StoreID  string `json:"storeId,omitempty"`
}

// Payload strips the confirmation field.
func (r CreateUserRequest) Payload() RegisterUserPayload {
	return RegisterUserPayload{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		Role:     r.Role,
		StoreID:  r.StoreID,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is what the external API returns on a successful login.
type LoginResult struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}
