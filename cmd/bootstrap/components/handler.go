package components

import (
	"service-broker/internal/handler"
	"service-broker/internal/handler/api"
	"service-broker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRequestHandler,
		api.NewQuoteHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, req *api.RequestHandler, quote *api.QuoteHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Request: req, Quote: quote}
		},
	),
	fx.Invoke(handler.NewRouter),
)
