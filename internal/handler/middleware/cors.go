package middleware

import (
	"log/slog"
	"slices"

	"service-broker/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if !slices.Contains(corsCfg.ExposeHeaders, RequestIDHeader) {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), RequestIDHeader)
	}
	// auth cookies need the caller's origin echoed back, never a literal "*"
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
