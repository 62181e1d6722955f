package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-stadium-api/internal/handler"
)

// RegisterRoutes registers the health check.  db may be nil when the
// service runs on the memory backend.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/healthz", handler.Health(db))
}

// RegisterClubs registers the /club endpoints.  Static segments such as
// /club/all take precedence over /club/:clubId in echo's router.
func RegisterClubs(e *echo.Echo, h *handler.ClubHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/club", mw...)
	g.POST("/create", h.Create)
	g.GET("/all", h.List)
	g.GET("/:clubId", h.Get)
	g.PUT("/:clubId", h.Update)
	g.DELETE("/:clubId", h.Delete)
}

// RegisterStadiums registers the /stadium endpoints, including the listing
// of stadiums by owning club name.
func RegisterStadiums(e *echo.Echo, h *handler.StadiumHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/stadium", mw...)
	g.POST("/create", h.Create)
	g.GET("/all", h.List)
	g.GET("/club/:clubName", h.ListByClub)
	g.GET("/:stadiumsId", h.Get)
	g.PUT("/:stadiumsId", h.Update)
	g.DELETE("/:stadiumsId", h.Delete)
}
