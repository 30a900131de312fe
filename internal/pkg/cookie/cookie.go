package cookie

import (
	"net/http"
	"time"

	"service-broker/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessTokenPath = "/"
	// the refresh token is only ever sent to the auth endpoints
	refreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, accessTokenPath, int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, refreshToken, refreshTokenPath, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", accessTokenPath, -1)
	set(c, cfg, RefreshTokenCookieName, "", refreshTokenPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// set always marks the cookie HttpOnly.
func set(c *gin.Context, cfg config.CookieConfig, name, value, path string, maxAge int) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(name, value, maxAge, path, cfg.Domain, cfg.Secure, true)
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
