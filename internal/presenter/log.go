package presenter

import "log/slog"

// Log writes presented messages to the structured log. Useful for headless
// runs and as a fallback when no rendering surface is attached.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a logging presenter. A nil logger uses the default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger.With("component", "presenter")}
}

// Show implements domain.Presenter.
func (l *Log) Show(title, description string) {
	l.logger.Info("message presented", "title", title, "description", description)
}
