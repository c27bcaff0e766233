package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// metaKeyScreenID carries the originating screen through watermill metadata.
const metaKeyScreenID = "screen_id"

// Bus implements Publisher and Subscriber on top of watermill's in-memory
// GoChannel transport. A single Bus is shared by the whole process.
type Bus struct {
	pub message.Publisher
	sub message.Subscriber
}

// NewBus initializes the in-process pub/sub bus.
func NewBus() *Bus {
	ch := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	return &Bus{pub: ch, sub: ch}
}

// Publish implements the Publisher interface.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wm.SetContext(ctx)
	wm.Metadata.Set(metaKeyScreenID, msg.ScreenID)
	return b.pub.Publish(msg.Topic, wm)
}

// Subscribe implements the Subscriber interface. The handler runs on a
// dedicated goroutine, processing messages strictly in arrival order.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			msg := Message{
				Topic:    topic,
				ScreenID: wm.Metadata.Get(metaKeyScreenID),
				Payload:  wm.Payload,
			}
			if err := handler(ctx, msg); err != nil {
				slog.Error("message handler failed", "topic", topic, "msg_id", wm.UUID, "error", err)
				wm.Nack()
				continue
			}
			wm.Ack()
		}
		slog.Debug("subscription loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bus down, ending all subscription loops.
func (b *Bus) Close() error {
	return b.sub.Close()
}
