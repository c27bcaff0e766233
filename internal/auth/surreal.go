// Package auth provides the SurrealDB-backed implementation of the
// domain.Authenticator port.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/gatehouse/internal/domain"
)

// signInClient is the slice of the SurrealDB client the authenticator
// needs. *surrealdb.DB satisfies it; tests substitute a fake.
type signInClient interface {
	SignIn(ctx context.Context, credentials any) (string, error)
}

// Surreal authenticates credentials through SurrealDB's record access
// sign-in, which verifies the password server-side and returns a record
// token on success.
type Surreal struct {
	db     signInClient
	ns     string
	dbName string
	access string
	logger *slog.Logger
}

// NewSurreal creates a SurrealDB authenticator bound to a namespace,
// database, and access method.
func NewSurreal(db signInClient, ns, dbName, access string) *Surreal {
	return &Surreal{
		db:     db,
		ns:     ns,
		dbName: dbName,
		access: access,
		logger: slog.Default().With("component", "auth"),
	}
}

// Authenticate implements domain.Authenticator. A rejected sign-in maps to
// domain.ErrInvalidCredentials; transport and server failures are wrapped
// and surface as the unexpected kind.
func (s *Surreal) Authenticate(ctx context.Context, creds domain.Credentials) (string, error) {
	// Key casing matches the SurrealDB JS SDK's sign-in payload.
	token, err := s.db.SignIn(ctx, map[string]any{
		"ns":       s.ns,
		"db":       s.dbName,
		"ac":       s.access,
		"email":    creds.Email,
		"password": creds.Password,
	})
	if err != nil {
		if isAuthRejection(err) {
			s.logger.Debug("sign-in rejected", "email", creds.Email)
			return "", fmt.Errorf("surreal sign-in: %w", domain.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("surreal sign-in: %w", err)
	}
	return token, nil
}

// isAuthRejection distinguishes a credential rejection from infrastructure
// failures. SurrealDB reports rejections as authentication problems in the
// error text rather than as a typed error.
func isAuthRejection(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "authentication") || strings.Contains(msg, "invalid auth")
}
