//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"service-broker/internal/domain/user"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/pkg/jwt"
	"service-broker/internal/pkg/password"
	"service-broker/internal/usecase/commands"
	"service-broker/tests/common/builder"
	"service-broker/tests/common/memuow"
	queriesmock "service-broker/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	creds := builder.NewAuthBuilder()
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = bcrypt.DefaultCost })
	hash, err := password.Hash(creds.Password)
	require.NoError(t, err)

	agencyID := uuid.New()
	tests := []struct {
		name    string
		input   commands.LoginInput
		stub    func(rs *queriesmock.MockUserReadStore, ub *builder.UserBuilder)
		errIs   error
		logins  int
		checkFn func(t *testing.T, jwtSvc *jwt.Service, res *commands.LoginResult, ub *builder.UserBuilder)
	}{
		{
			name:  "agency user gets tokens carrying the agency",
			input: creds.BuildInput(),
			stub: func(rs *queriesmock.MockUserReadStore, ub *builder.UserBuilder) {
				ub.AsAgency(agencyID)
				rs.EXPECT().FindByEmail(gomock.Any(), creds.Email).Return(ub.BuildReadModel(), hash, nil)
			},
			logins: 1,
			checkFn: func(t *testing.T, jwtSvc *jwt.Service, res *commands.LoginResult, ub *builder.UserBuilder) {
				assert.Equal(t, ub.ID, res.UserID)
				claims, err := jwtSvc.ValidateToken(res.TokenPair.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
				assert.Equal(t, string(user.RoleAgency), claims.Role)
				require.NotNil(t, claims.AgencyID)
				assert.Equal(t, agencyID, *claims.AgencyID)

				refresh, err := jwtSvc.ValidateToken(res.TokenPair.RefreshToken)
				require.NoError(t, err)
				assert.Equal(t, jwt.TokenTypeRefresh, refresh.TokenType)
			},
		},
		{
			name:  "email is matched case-insensitively",
			input: commands.LoginInput{Email: "  TEST@Example.com", Password: creds.Password},
			stub: func(rs *queriesmock.MockUserReadStore, ub *builder.UserBuilder) {
				rs.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(ub.BuildReadModel(), hash, nil)
			},
			logins: 1,
		},
		{
			name:  "wrong password",
			input: commands.LoginInput{Email: creds.Email, Password: "wrong-password"},
			stub: func(rs *queriesmock.MockUserReadStore, ub *builder.UserBuilder) {
				rs.EXPECT().FindByEmail(gomock.Any(), creds.Email).Return(ub.BuildReadModel(), hash, nil)
			},
			errIs: commands.ErrInvalidCredentials,
		},
		{
			name:  "unknown email looks like a wrong password",
			input: creds.BuildInput(),
			stub: func(rs *queriesmock.MockUserReadStore, _ *builder.UserBuilder) {
				rs.EXPECT().FindByEmail(gomock.Any(), creds.Email).Return(nil, "", errors.New("no rows"))
			},
			errIs: commands.ErrInvalidCredentials,
		},
		{
			name:  "inactive user",
			input: creds.BuildInput(),
			stub: func(rs *queriesmock.MockUserReadStore, ub *builder.UserBuilder) {
				ub.AsInactive()
				rs.EXPECT().FindByEmail(gomock.Any(), creds.Email).Return(ub.BuildReadModel(), hash, nil)
			},
			errIs: commands.ErrUserInactive,
		},
		{
			name:  "malformed email never reaches the store",
			input: commands.LoginInput{Email: "not-an-email", Password: creds.Password},
			errIs: commands.ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			readStore := queriesmock.NewMockUserReadStore(ctrl)
			store := memuow.New()
			jwtSvc := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
			ub := builder.NewUserBuilder()
			if tt.stub != nil {
				tt.stub(readStore, ub)
			}

			res, err := commands.NewAuthCommands(store, readStore, jwtSvc).Login(ctx, tt.input)

			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrUnauthorized))
				assert.Nil(t, res)
				assert.Zero(t, store.LastLoginUpdates(ub.ID))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.TokenPair.AccessToken)
			assert.NotEmpty(t, res.TokenPair.RefreshToken)
			assert.Equal(t, tt.logins, store.LastLoginUpdates(ub.ID))
			if tt.checkFn != nil {
				tt.checkFn(t, jwtSvc, res, ub)
			}
		})
	}
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()
	jwtSvc := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	ub := builder.NewUserBuilder()

	refresh, err := jwtSvc.GenerateRefreshToken(ub.ID, user.RoleApplicant, nil)
	require.NoError(t, err)
	access, err := jwtSvc.GenerateAccessToken(ub.ID, user.RoleApplicant, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		stub  func(rs *queriesmock.MockUserReadStore)
		errIs error
	}{
		{
			name:  "current role is re-read",
			token: refresh,
			stub: func(rs *queriesmock.MockUserReadStore) {
				promoted := builder.NewUserBuilder().WithID(ub.ID).AsAdmin().BuildReadModel()
				rs.EXPECT().FindByID(gomock.Any(), ub.ID).Return(promoted, nil)
			},
		},
		{
			name:  "access token is not a refresh token",
			token: access,
			errIs: commands.ErrTokenValidation,
		},
		{
			name:  "garbage token",
			token: "not-a-jwt",
			errIs: commands.ErrTokenValidation,
		},
		{
			name:  "user gone",
			token: refresh,
			stub: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), ub.ID).Return(nil, errors.New("no rows"))
			},
			errIs: commands.ErrUserNotFound,
		},
		{
			name:  "user deactivated",
			token: refresh,
			stub: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), ub.ID).Return(builder.NewUserBuilder().WithID(ub.ID).AsInactive().BuildReadModel(), nil)
			},
			errIs: commands.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			readStore := queriesmock.NewMockUserReadStore(ctrl)
			if tt.stub != nil {
				tt.stub(readStore)
			}

			pair, err := commands.NewAuthCommands(memuow.New(), readStore, jwtSvc).RefreshToken(ctx, tt.token)

			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			claims, err := jwtSvc.ValidateToken(pair.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, string(user.RoleAdmin), claims.Role)
		})
	}
}
