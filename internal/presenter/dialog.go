// Package presenter provides implementations of the domain.Presenter port.
package presenter

import "sync"

// Dialog buffers the most recent message for a single screen until the
// rendering layer collects it. Show is fire-and-forget from the caller's
// point of view; a later Show before the previous message was consumed
// replaces it.
type Dialog struct {
	mu          sync.Mutex
	title       string
	description string
	pending     bool
}

// NewDialog creates an empty dialog buffer.
func NewDialog() *Dialog {
	return &Dialog{}
}

// Show implements domain.Presenter.
func (d *Dialog) Show(title, description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
	d.description = description
	d.pending = true
}

// Consume returns the buffered message and clears it. ok is false when no
// message is pending.
func (d *Dialog) Consume() (title, description string, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending {
		return "", "", false
	}
	d.pending = false
	return d.title, d.description, true
}
