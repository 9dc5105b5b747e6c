package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30" example:"jane_doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"jane@example.com"` // Can be email or username
	Password        string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"` // seconds
}
