package views_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/gatehouse/internal/domain"
	"github.com/nfrund/gatehouse/internal/login"
	"github.com/nfrund/gatehouse/internal/views"
)

func renderRegion(t *testing.T, st login.State, dialog *views.Dialog) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, views.FormRegion(st, dialog).Render(&sb))
	return sb.String()
}

func TestFormRegionIdle(t *testing.T) {
	st := login.State{
		Values: domain.Credentials{Email: "user@example.com"},
		Errors: login.Errors{},
	}

	html := renderRegion(t, st, nil)

	assert.Contains(t, html, `id="login-form"`)
	assert.Contains(t, html, `value="user@example.com"`)
	assert.NotContains(t, html, "disabled")
	assert.NotContains(t, html, "spinner")
	assert.NotContains(t, html, "hx-trigger=\"load")
}

func TestFormRegionShowsFieldError(t *testing.T) {
	st := login.State{
		Values: domain.Credentials{Email: "bad"},
		Errors: login.Errors{domain.FieldEmail: "Invalid E-mail"},
	}

	html := renderRegion(t, st, nil)

	assert.Contains(t, html, `class="field-error"`)
	assert.Contains(t, html, "Invalid E-mail")
	assert.Contains(t, html, "disabled", "submit is disabled while a field is invalid")
}

func TestFormRegionLoading(t *testing.T) {
	st := login.State{Errors: login.Errors{}, Loading: true}

	html := renderRegion(t, st, nil)

	assert.Contains(t, html, `class="spinner"`)
	assert.Contains(t, html, `hx-get="/login/state"`, "a loading region polls for resolution")
	// Everything is inert while the submission is in flight.
	assert.Equal(t, 3, strings.Count(html, "disabled"), "both inputs and the button are disabled")
}

func TestFormRegionDialog(t *testing.T) {
	st := login.State{Errors: login.Errors{}}

	html := renderRegion(t, st, &views.Dialog{Title: "Oops!", Description: "Invalid credentials"})

	assert.Contains(t, html, `role="alertdialog"`)
	assert.Contains(t, html, "Oops!")
	assert.Contains(t, html, "Invalid credentials")
	assert.NotContains(t, html, "spinner", "the dialog never shares the region with the spinner")
}

func TestPageWrapsRegionInDocument(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, views.Page(login.State{Errors: login.Errors{}}).Render(&sb))
	html := sb.String()

	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "<title>Sign in</title>")
	assert.Contains(t, html, `id="login-form"`)
}
