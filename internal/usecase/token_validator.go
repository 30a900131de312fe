package usecase

import (
	"service-broker/internal/domain/user"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/pkg/jwt"
	"service-broker/internal/usecase/shared"
)

var ErrNotAccessToken = errs.Wrap(errs.ErrUnauthorized, "refresh token used as access token")

// TokenValidator turns an access token into the caller identity for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, errs.Wrap(errs.ErrUnauthorized, err.Error())
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Wrap(errs.ErrUnauthorized, err.Error())
	}
	actor := shared.Actor{UserID: claims.UserID, Role: role}
	if role == user.RoleAgency {
		actor.AgencyID = claims.AgencyID
	}
	return actor, nil
}
