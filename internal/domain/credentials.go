package domain

// Field identifies a single input on the login form.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists every form field in render order.
var Fields = []Field{FieldEmail, FieldPassword}

// Known reports whether f is one of the login form's fields.
func (f Field) Known() bool {
	return f == FieldEmail || f == FieldPassword
}

// Credentials holds the current form values. The struct is treated as an
// immutable value: updates go through With, which returns a fresh copy.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Get returns the value of the given field, or "" for an unknown field.
func (c Credentials) Get(f Field) string {
	switch f {
	case FieldEmail:
		return c.Email
	case FieldPassword:
		return c.Password
	}
	return ""
}

// With returns a copy of the credentials with the given field replaced.
// Unknown fields are ignored.
func (c Credentials) With(f Field, value string) Credentials {
	switch f {
	case FieldEmail:
		c.Email = value
	case FieldPassword:
		c.Password = value
	}
	return c
}
