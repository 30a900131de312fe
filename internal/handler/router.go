package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"service-broker/internal/domain/user"
	"service-broker/internal/handler/api"
	"service-broker/internal/handler/middleware"
	"service-broker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Request *api.RequestHandler
	Quote   *api.QuoteHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	applicant := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleApplicant)}
	agency := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAgency)}
	owner := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleApplicant, user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Request.Create, Mw: applicant},
				{Method: http.MethodGet, Path: "", Handler: h.Request.ListMine, Mw: applicant},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.Get},
				{Method: http.MethodGet, Path: "/:id/eligible-agencies", Handler: h.Request.EligibleAgencies, Mw: owner},
				{Method: http.MethodGet, Path: "/:id/quotes", Handler: h.Quote.ListByRequest},
				{Method: http.MethodPost, Path: "/:id/quotes", Handler: h.Quote.Submit, Mw: agency},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Request.Cancel, Mw: applicant},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Request.Start, Mw: agency},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Request.Complete, Mw: agency},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Quote.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Quote.Accept, Mw: applicant},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Quote.Reject, Mw: applicant},
			})
		}

		agencyGroup := apiGroup.Group("/agency")
		agencyGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAgency))
		{
			addRoutes(agencyGroup, []route{
				{Method: http.MethodGet, Path: "/quotes", Handler: h.Quote.ListForAgency},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/quotes/sweep", Handler: h.Quote.Sweep},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
