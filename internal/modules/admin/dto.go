package admin

// LoginDTO is the form-encoded login request. Username carries the
// admin email, matching the OAuth2 password grant field names.
type LoginDTO struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterDTO is the request body for creating the admin account.
type RegisterDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname"`
}

// tokenResponse is the login response shape.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// meResponse identifies the authenticated admin.
type meResponse struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}
