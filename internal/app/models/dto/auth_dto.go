package dto

// LoginRequest carries the credentials for token issuance.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Role  string `json:"role"`
}

// TokenResponse is the successful login body.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
