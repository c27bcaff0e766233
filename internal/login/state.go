package login

import (
	"encoding/json"

	"github.com/nfrund/gatehouse/internal/domain"
)

// Errors maps a form field to its current error caption. A missing entry
// means the field is valid. Entries are derived, recomputed per field on
// every change to that field, and never persisted independently.
type Errors map[domain.Field]string

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for f, msg := range e {
		out[f] = msg
	}
	return out
}

// with returns a copy of the error map with the entry for f replaced.
// An empty message clears the entry.
func (e Errors) with(f domain.Field, msg string) Errors {
	out := e.clone()
	if msg == "" {
		delete(out, f)
	} else {
		out[f] = msg
	}
	return out
}

// State is the single source of truth for rendering the login screen.
// Loading discriminates the controller's two states: false is Idle, true
// is Submitting.
type State struct {
	Values  domain.Credentials
	Errors  Errors
	Loading bool
}

// newState seeds the mount-time state: empty values and no errors. By
// convention the empty form counts as valid until the user interacts.
func newState() State {
	return State{Errors: Errors{}}
}

// ErrorFor returns the current caption for a field, or "" when valid.
func (s State) ErrorFor(f domain.Field) string {
	return s.Errors[f]
}

// Valid reports whether every field is individually valid.
func (s State) Valid() bool {
	for _, f := range domain.Fields {
		if s.Errors[f] != "" {
			return false
		}
	}
	return true
}

// CanSubmit reports whether the submit affordance is enabled.
func (s State) CanSubmit() bool {
	return s.Valid() && !s.Loading
}

func (s State) clone() State {
	s.Errors = s.Errors.clone()
	return s
}

// MarshalJSON encodes the state for publication on the bus. The password
// is deliberately excluded from the snapshot.
func (s State) MarshalJSON() ([]byte, error) {
	errs := make(map[string]string, len(s.Errors))
	for f, msg := range s.Errors {
		errs[string(f)] = msg
	}
	return json.Marshal(struct {
		Email     string            `json:"email"`
		Errors    map[string]string `json:"errors,omitempty"`
		Loading   bool              `json:"loading"`
		CanSubmit bool              `json:"canSubmit"`
	}{
		Email:     s.Values.Email,
		Errors:    errs,
		Loading:   s.Loading,
		CanSubmit: s.CanSubmit(),
	})
}
