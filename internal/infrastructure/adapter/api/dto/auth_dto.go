package dto

// LoginRequest represents the credentials for admin or client login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the authenticated identity
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of an authenticated account. ClientID
// is only set for tenant-scoped principals.
type UserResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	ClientID uint64 `json:"clientId,omitempty"`
}
