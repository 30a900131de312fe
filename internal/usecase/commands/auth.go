package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"service-broker/internal/domain/user"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/pkg/jwt"
	"service-broker/internal/pkg/password"
	"service-broker/internal/usecase/queries"
	"service-broker/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.Wrap(errs.ErrUnauthorized, "user not found")
	ErrInvalidCredentials   = errs.Wrap(errs.ErrUnauthorized, "invalid credentials")
	ErrUserInactive         = errs.Wrap(errs.ErrUnauthorized, "user inactive")
	ErrAuthenticationFailed = errs.Wrap(errs.ErrUnauthorized, "authentication failed")
	ErrTokenValidation      = errs.Wrap(errs.ErrUnauthorized, "token validation failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Wrap(ErrAuthenticationFailed, err.Error())
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(view)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Wrap(ErrTokenValidation, err.Error())
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// role or agency membership may have changed since the token was issued
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issue(view)
}

func (a *authCommandsImpl) issue(view *queries.AuthorizedUserView) (*TokenPair, error) {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(ErrAuthenticationFailed, err.Error())
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role, view.AgencyID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(view.ID, role, view.AgencyID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		// same answer as a bad password so emails cannot be enumerated
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	ok, err := password.Matches(hashedPassword, credentials.Password().Value())
	if err != nil {
		slog.Error("password check failed", "user_id", view.ID, "error", err.Error())
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
