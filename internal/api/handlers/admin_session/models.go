package admin_session

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Success bool `json:"success"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
