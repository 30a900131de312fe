package request

import (
	"service-broker/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}

// RefreshRequest falls back to the refresh cookie when the body omits the token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
