package domain

import "errors"

// User-facing strings for authentication failures. Each failure kind
// carries a fixed display message; the dialog title is shared.
const (
	DialogTitle           = "Oops!"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUnexpected         = "Something went wrong. Please try again soon."
)

// FailureMessage maps an authentication error to its display message.
func FailureMessage(err error) string {
	if errors.Is(err, ErrInvalidCredentials) {
		return MsgInvalidCredentials
	}
	return MsgUnexpected
}
