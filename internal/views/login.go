// Package views holds the gomponents components for the login screen. The
// components are a pure function of login.State plus an optional dialog;
// they contain no business rules.
package views

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gatehouse/internal/domain"
	"github.com/nfrund/gatehouse/internal/login"
)

// Page renders the full login page.
func Page(st login.State) gomponents.Node {
	return shell("Sign in",
		h.Div(
			h.Class("container"),
			h.H1(gomponents.Text("Sign in")),
			FormRegion(st, nil),
		),
	)
}

// FormRegion renders the swap target for every htmx interaction on the
// screen: the two fields, the submit button, the spinner while a
// submission is in flight, and the failure dialog once one is pending.
// While loading, the region polls /login/state until the submission
// resolves.
func FormRegion(st login.State, dialog *Dialog) gomponents.Node {
	return h.Div(
		h.ID("login-form"),
		gomponents.If(st.Loading,
			gomponents.Group([]gomponents.Node{
				hx.Get("/login/state"),
				hx.Trigger("load delay:400ms"),
				hx.Swap("outerHTML"),
			}),
		),
		gomponents.Iff(dialog != nil, func() gomponents.Node {
			return dialogBox(*dialog)
		}),
		fieldRow(st, domain.FieldEmail, "E-mail", "email"),
		fieldRow(st, domain.FieldPassword, "Password", "password"),
		h.Button(
			h.Type("button"),
			h.Class("submit"),
			hx.Post("/login/submit"),
			hx.Target("#login-form"),
			hx.Swap("outerHTML"),
			gomponents.If(!st.CanSubmit(), h.Disabled()),
			gomponents.Text("Sign in"),
		),
		gomponents.If(st.Loading, spinner()),
	)
}

// fieldRow renders one labeled input with its error caption. Each keystroke
// posts the field back so the caption and submit state stay current.
func fieldRow(st login.State, field domain.Field, label, inputType string) gomponents.Node {
	caption := st.ErrorFor(field)
	return h.Div(
		h.Class("field"),
		h.Label(h.For(string(field)), gomponents.Text(label)),
		h.Input(
			h.ID(string(field)),
			h.Type(inputType),
			h.Name(string(field)),
			h.Value(st.Values.Get(field)),
			hx.Post("/login/field"),
			hx.Trigger("keyup changed delay:300ms"),
			hx.Target("#login-form"),
			hx.Swap("outerHTML"),
			gomponents.If(st.Loading, h.Disabled()),
		),
		gomponents.If(caption != "", h.P(h.Class("field-error"), gomponents.Text(caption))),
	)
}

func dialogBox(d Dialog) gomponents.Node {
	return h.Div(
		h.Class("dialog"),
		gomponents.Attr("role", "alertdialog"),
		h.Strong(gomponents.Text(d.Title)),
		h.P(gomponents.Text(d.Description)),
	)
}

func spinner() gomponents.Node {
	return h.Div(
		h.Class("spinner"),
		gomponents.Attr("aria-busy", "true"),
		gomponents.Text("Signing in…"),
	)
}
