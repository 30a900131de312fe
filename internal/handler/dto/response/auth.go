package response

import (
	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	AgencyID *uuid.UUID `json:"agency_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
