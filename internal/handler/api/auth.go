package api

import (
	"net/http"

	reqdto "service-broker/internal/handler/dto/request"
	resdto "service-broker/internal/handler/dto/response"
	"service-broker/internal/handler/httperr"
	"service-broker/internal/pkg/config"
	"service-broker/internal/pkg/cookie"
	"service-broker/internal/pkg/jwt"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary User login
// @Description Login with email and password; tokens are also set as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		if status := httperr.StatusOf(err); status == http.StatusUnauthorized {
			httperr.AbortWithError(c, status, err, "Invalid email or password", nil)
			return
		}
		httperr.Abort(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	view, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	user, err := resdto.FromUserView(view)
	render(c, http.StatusOK, resdto.LoginResponse{AccessToken: result.TokenPair.AccessToken, User: user}, err)
}

// @Summary Refresh tokens
// @Description Exchange a refresh token (body or cookie) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}
	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clears the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; clients holding a bearer token simply drop it
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	user, err := resdto.FromUserView(view)
	render(c, http.StatusOK, user, err)
}
