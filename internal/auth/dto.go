package auth

// LoginRequest carries the credentials for token issuance
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token on success
type LoginResponse struct {
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
}

// TokenRequest carries a token to introspect or revoke
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// IntrospectResponse reports whether a token is currently usable
type IntrospectResponse struct {
	Valid bool `json:"valid"`
}
