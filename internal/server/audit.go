package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nfrund/gatehouse/internal/login"
	"github.com/nfrund/gatehouse/internal/pubsub"
)

// subscribeAudit logs every sign-in outcome announced on the bus. The
// subscriptions live for the lifetime of the bus.
func (s *Server) subscribeAudit() {
	ctx := context.Background()
	logger := slog.Default().With("component", "audit")

	logOutcome := func(outcome string) pubsub.Handler {
		return func(ctx context.Context, msg pubsub.Message) error {
			var payload struct {
				Email  string `json:"email"`
				Reason string `json:"reason"`
			}
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				return err
			}
			attrs := []any{"screen_id", msg.ScreenID, "email", payload.Email}
			if payload.Reason != "" {
				attrs = append(attrs, "reason", payload.Reason)
			}
			logger.Info("sign-in "+outcome, attrs...)
			return nil
		}
	}

	if err := s.Bus.Subscribe(ctx, login.TopicSignInSucceeded, logOutcome("succeeded")); err != nil {
		logger.Error("failed to subscribe", "topic", login.TopicSignInSucceeded, "error", err)
	}
	if err := s.Bus.Subscribe(ctx, login.TopicSignInFailed, logOutcome("failed")); err != nil {
		logger.Error("failed to subscribe", "topic", login.TopicSignInFailed, "error", err)
	}
}
