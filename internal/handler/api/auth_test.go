//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"service-broker/internal/handler/api"
	resdto "service-broker/internal/handler/dto/response"
	"service-broker/internal/handler/middleware"
	"service-broker/internal/pkg/config"
	"service-broker/internal/pkg/cookie"
	"service-broker/internal/pkg/jwt"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/queries"
	"service-broker/tests/common/builder"
	"service-broker/tests/common/httptest"
	"service-broker/tests/common/testutil"
	commandsmock "service-broker/tests/mock/commands"
	queriesmock "service-broker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stands in for RequireAuth
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, builder.NewUserBuilder().AsApplicant().BuildActor())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       testutil.Edit
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	input := builder.NewAuthBuilder().BuildInput()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"
	expectedRefresh := "test-refresh-token"

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), input).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				TokenPair: &commands.TokenPair{AccessToken: expectedToken, RefreshToken: expectedRefresh},
			}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal(expectedToken, response.AccessToken)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(access)
		s.Require().NotNil(refresh)
		s.True(access.HttpOnly)
		s.Equal(expectedRefresh, refresh.Value)
		s.Equal("/api/auth", refresh.Path)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.Set("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.Set("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Set("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Set("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Drop("email"), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Drop("password"), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.Set("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Set("password", ""), expectCode: http.StatusBadRequest},
		}

		allValidationTestCases := [][]testCaseAuth{bound, missing, empty}

		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.BodyMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						email, _ := requestMap["email"].(string)
						password, _ := requestMap["password"].(string)
						expectedInput := (&builder.AuthBuilder{Email: email, Password: password}).BuildInput()
						s.mockCommands.EXPECT().Login(gomock.Any(), expectedInput).
							Return(&commands.LoginResult{
								UserID:    returnUser.ID,
								TokenPair: &commands.TokenPair{AccessToken: expectedToken, RefreshToken: expectedRefresh},
							}, nil)
						s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
							Return(returnUser, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), input).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("success: token from the body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "old-refresh"}, "")
		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
		s.Equal("new-refresh", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})

	s.Run("success: token from the cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-refresh").Return(pair, nil)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: no token at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: rejected token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "stale"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and expires both cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
			c := httptest.ExtractCookie(rec, name)
			s.Require().NotNil(c, name)
			s.Empty(c.Value)
			s.Negative(c.MaxAge)
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
	})

	s.Run("error: returns 401 when no caller is in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user not found",
				commandsError:  queries.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "user not found",
			},
			{
				name:           "user inactive",
				commandsError:  queries.ErrUserInactive,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "user inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
