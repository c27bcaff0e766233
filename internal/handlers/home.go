package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/gatehouse/internal/rendering"
	"github.com/nfrund/gatehouse/internal/views"
)

// HomeHandler serves the signed-in landing page.
type HomeHandler struct {
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// HomeGet handles GET /. Visitors without an auth cookie are sent to the
// login screen; validating the token itself belongs to the session
// collaborator behind the Authenticator, not to this surface.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	cookie, err := c.Cookie("auth_token")
	if err != nil || cookie.Value == "" {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return h.renderer.RenderPage(c, http.StatusOK, views.HomePage())
}
