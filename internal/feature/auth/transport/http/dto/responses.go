package dto

// UserResponse is the client-facing view of a registered user.
// The password hash is deliberately absent.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token   string `json:"token"`
	Subject string `json:"subject"`
	Role    string `json:"role"`
}
