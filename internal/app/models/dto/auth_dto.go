package dto

// RegisterRequest creates a staff account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Ravi Menon"`
	Email    string `json:"email" binding:"required,email" example:"ravi@admissions.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
}

// LoginRequest authenticates a staff account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"` // seconds
	TokenType    string `json:"tokenType" example:"Bearer"`
}
