package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/gatehouse/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.homeHandler.HomeGet)

	s.E.GET("/login", s.loginHandler.LoginGet)
	s.E.POST("/login/field", s.loginHandler.FieldPost)
	s.E.POST("/login/submit", s.loginHandler.SubmitPost, rateLimiter)
	s.E.GET("/login/state", s.loginHandler.StateGet)
	s.E.GET("/logout", s.loginHandler.Logout)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
