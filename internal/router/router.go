package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/ace-ify/Blud-Dona/api/handler"
)

type Handlers struct {
	Dashboard *apiHandler.DashboardHandler
	Request   *apiHandler.RequestHandler
	Profile   *apiHandler.ProfileHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Screen routes; identity comes from the session token.
	r.GET("/api/v1/dashboard", authMiddleware(handlers.Dashboard.Overview))

	r.GET("/api/v1/requests", authMiddleware(handlers.Request.List))
	r.POST("/api/v1/requests", authMiddleware(handlers.Request.Create))

	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.Get))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.Update))

	return r
}
