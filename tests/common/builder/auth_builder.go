//go:build unit || e2e

package builder

import (
	reqdto "service-broker/internal/handler/dto/request"
	"service-broker/internal/usecase/commands"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildInput() commands.LoginInput {
	return commands.LoginInput{Email: a.Email, Password: a.Password}
}
