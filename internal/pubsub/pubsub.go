package pubsub

import "context"

// Message is the envelope passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "login.form.state").
	Topic string
	// ScreenID identifies the mounted screen that produced the message.
	ScreenID string
	// Payload contains the raw message data, usually JSON.
	Payload []byte
}

// Handler processes a single received message. Returning an error nacks
// the message.
type Handler func(ctx context.Context, msg Message) error

// Publisher is the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber is the contract for receiving messages from the bus.
// Subscribe returns once the subscription is active; handling happens in
// the background until the context is canceled or the bus is closed.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
