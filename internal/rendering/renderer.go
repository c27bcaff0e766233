// Package rendering bridges view components to HTTP responses. It accepts
// both templ components and gomponents nodes so handlers are free to mix
// the two.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders any supported component type.
type Renderer interface {
	// RenderComponent renders a component to bytes, for HTMX fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full-page response through Echo's context.
	RenderPage(c echo.Context, status int, component any) error
}

// gomponentNode matches gomponents.Node structurally, so this package does
// not depend on the gomponents module directly.
type gomponentNode interface {
	Render(w io.Writer) error
}

// Universal is the concrete Renderer handling templ and gomponents
// components.
type Universal struct{}

// NewUniversal creates a Universal renderer.
func NewUniversal() *Universal {
	return &Universal{}
}

func (r *Universal) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (r *Universal) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface.
func (r *Universal) RenderPage(c echo.Context, status int, component any) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return r.render(c.Request().Context(), component, c.Response().Writer)
}

// Render implements echo.Renderer; the component is passed as data.
func (r *Universal) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
