// Package validation implements the login form's field validator on top of
// go-playground/validator. Rules run per field, in order; the first failing
// rule supplies the caption.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/nfrund/gatehouse/internal/domain"
)

// Default validation captions.
const (
	MsgRequired     = "Required field"
	MsgInvalidEmail = "Invalid E-mail"
)

// Rule pairs a validator tag with the caption shown when it fails.
type Rule struct {
	Tag     string
	Message string
}

// FieldValidator validates individual form fields. It is pure and safe for
// concurrent use: the underlying validator instance caches tag parsing and
// has no per-call state.
type FieldValidator struct {
	validate *validator.Validate
	rules    map[domain.Field][]Rule
}

// Option configures a FieldValidator.
type Option func(*FieldValidator)

// WithRules replaces the rule set for a field.
func WithRules(field domain.Field, rules ...Rule) Option {
	return func(v *FieldValidator) {
		v.rules[field] = rules
	}
}

// New creates a validator with the default login rules: both fields are
// required and the email must be well formed.
func New(opts ...Option) *FieldValidator {
	v := &FieldValidator{
		validate: validator.New(),
		rules: map[domain.Field][]Rule{
			domain.FieldEmail: {
				{Tag: "required", Message: MsgRequired},
				{Tag: "email", Message: MsgInvalidEmail},
			},
			domain.FieldPassword: {
				{Tag: "required", Message: MsgRequired},
			},
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate implements domain.FieldValidator. It returns the caption for the
// first failing rule, or "" when the field is valid. Fields without rules
// are always valid.
func (v *FieldValidator) Validate(field domain.Field, values domain.Credentials) string {
	value := values.Get(field)
	for _, rule := range v.rules[field] {
		if err := v.validate.Var(value, rule.Tag); err != nil {
			return rule.Message
		}
	}
	return ""
}
