package views

import (
	"maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// shell wraps page content in the HTML document boilerplate.
func shell(title string, body ...gomponents.Node) gomponents.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(gomponents.Text(title)),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12")),
				h.StyleEl(gomponents.Raw(baseCSS)),
			),
			h.Body(body...),
		),
	)
}

const baseCSS = `
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 24rem; }
.field { margin-bottom: 1rem; }
.field label { display: block; margin-bottom: .25rem; }
.field input { width: 100%; padding: .5rem; }
.field-error { color: #b91c1c; margin: .25rem 0 0; font-size: .875rem; }
.dialog { border: 1px solid #b91c1c; background: #fef2f2; padding: 1rem; margin-bottom: 1rem; }
.spinner { margin-top: 1rem; color: #6b7280; }
button.submit { padding: .5rem 1.5rem; }
button.submit[disabled] { opacity: .5; }
`

// HomePage renders the signed-in landing page.
func HomePage() gomponents.Node {
	return shell("Home",
		h.Div(
			h.Class("container"),
			h.H1(gomponents.Text("Welcome back")),
			h.P(gomponents.Text("You are signed in.")),
			h.A(h.Href("/logout"), gomponents.Text("Sign out")),
		),
	)
}
