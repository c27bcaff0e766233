package domain

import "context"

// FieldValidator computes the error caption for a single form field.
// Implementations must be pure: no side effects, deterministic for the
// same values. An empty string means the field is valid.
type FieldValidator interface {
	Validate(field Field, values Credentials) string
}

// Authenticator exchanges credentials for an identity token. It is the only
// asynchronous collaborator of the login controller; the controller
// guarantees at most one call is in flight at a time. Implementations do
// not retry; retry policy, if any, belongs to the transport underneath.
//
// A failed sign-in returns ErrInvalidCredentials (possibly wrapped). Every
// other error is treated as an unexpected failure.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (token string, err error)
}

// Presenter surfaces a titled message to the user, decoupled from any
// specific dialog or toast implementation. Show is fire-and-forget: it must
// return promptly and must not call back into the controller.
type Presenter interface {
	Show(title, description string)
}
