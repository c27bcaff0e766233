package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/gatehouse/internal/domain"
	"github.com/nfrund/gatehouse/internal/login"
	"github.com/nfrund/gatehouse/internal/presenter"
	"github.com/nfrund/gatehouse/internal/pubsub"
	"github.com/nfrund/gatehouse/internal/rendering"
	"github.com/nfrund/gatehouse/internal/views"
)

const (
	screenSessionName = "screen-session"
	screenSessionKey  = "screen_id"
)

// LoginHandler wires the login screen to HTTP. A cookie session binds each
// browser to one mounted screen; htmx requests raise events into that
// screen's controller and render the form region from its state.
type LoginHandler struct {
	validator     domain.FieldValidator
	authenticator domain.Authenticator
	publisher     pubsub.Publisher
	renderer      rendering.Renderer
	screens       *ScreenStore
}

// NewLoginHandler creates a LoginHandler. The publisher may be nil when no
// bus is attached.
func NewLoginHandler(validator domain.FieldValidator, authenticator domain.Authenticator, publisher pubsub.Publisher, renderer rendering.Renderer) *LoginHandler {
	return &LoginHandler{
		validator:     validator,
		authenticator: authenticator,
		publisher:     publisher,
		renderer:      renderer,
		screens:       NewScreenStore(),
	}
}

// Screens exposes the screen store, useful for testing.
func (h *LoginHandler) Screens() *ScreenStore {
	return h.screens
}

// LoginGet renders the login page (GET /login), mounting a screen for the
// session if it does not already have one.
func (h *LoginHandler) LoginGet(c echo.Context) error {
	scr := h.screenFor(c)
	return h.renderer.RenderPage(c, http.StatusOK, views.Page(scr.Controller.State()))
}

// FieldPost handles an htmx field-change request (POST /login/field). The
// posted form carries the changed field(s); validation completes before the
// fragment is rendered, so the response always reflects the new error and
// submit state.
func (h *LoginHandler) FieldPost(c echo.Context) error {
	scr := h.screenFor(c)

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	for _, field := range domain.Fields {
		if form.Has(string(field)) {
			scr.Controller.OnFieldChange(field, form.Get(string(field)))
		}
	}

	return h.renderFragment(c, views.FormRegion(scr.Controller.State(), nil))
}

// SubmitPost handles the submit request (POST /login/submit). The
// controller decides whether anything happens; the response is the region
// in its post-transition state, which starts polling while Submitting.
func (h *LoginHandler) SubmitPost(c echo.Context) error {
	scr := h.screenFor(c)
	scr.Controller.OnSubmit()
	return h.stateResponse(c, scr)
}

// StateGet serves the htmx poll while a submission is in flight
// (GET /login/state).
func (h *LoginHandler) StateGet(c echo.Context) error {
	return h.stateResponse(c, h.screenFor(c))
}

// Logout clears the auth cookie (GET /logout).
func (h *LoginHandler) Logout(c echo.Context) error {
	setAuthCookie(c, "")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// stateResponse renders the current outcome of the screen: a redirect once
// signed in, the failure dialog when one is pending, or the form region
// as-is (spinner included while loading).
func (h *LoginHandler) stateResponse(c echo.Context, scr *Screen) error {
	if token := scr.Token(); token != "" {
		setAuthCookie(c, token)
		h.unmount(c, scr)
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}

	var dlg *views.Dialog
	if title, description, ok := scr.Dialog.Consume(); ok {
		dlg = &views.Dialog{Title: title, Description: description}
	}
	return h.renderFragment(c, views.FormRegion(scr.Controller.State(), dlg))
}

func (h *LoginHandler) renderFragment(c echo.Context, component any) error {
	data, err := h.renderer.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, data)
}

// screenFor returns the session's mounted screen, mounting a fresh one when
// the session is new or its screen is gone (e.g. after a restart).
func (h *LoginHandler) screenFor(c echo.Context) *Screen {
	sess, _ := session.Get(screenSessionName, c)
	if id, ok := sess.Values[screenSessionKey].(string); ok && id != "" {
		if scr, found := h.screens.Get(id); found {
			return scr
		}
	}

	scr := h.mountScreen()
	sess.Values[screenSessionKey] = scr.ID
	sess.Options.Path = "/"
	sess.Options.HttpOnly = true
	_ = sess.Save(c.Request(), c.Response())
	return scr
}

// mountScreen builds a screen and its controller with the handler's
// collaborators.
func (h *LoginHandler) mountScreen() *Screen {
	scr := &Screen{ID: NewID(), Dialog: presenter.NewDialog()}
	scr.Controller = login.New(h.validator, h.authenticator, scr.Dialog,
		login.WithPublisher(h.publisher),
		login.WithScreenID(scr.ID),
		login.WithOnSuccess(scr.completeSignIn),
	)
	h.screens.Put(scr)
	return scr
}

// unmount tears the screen down and detaches it from the session.
func (h *LoginHandler) unmount(c echo.Context, scr *Screen) {
	h.screens.Remove(scr.ID)
	sess, _ := session.Get(screenSessionName, c)
	delete(sess.Values, screenSessionKey)
	_ = sess.Save(c.Request(), c.Response())
}

// setAuthCookie creates or clears the authentication cookie.
func setAuthCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = "auth_token"
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(24 * time.Hour)
	}
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}
