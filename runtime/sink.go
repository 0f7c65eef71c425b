package runtime

import (
	"coachchat/domain"
	"context"
)

// ChannelSink bridges the notifier to a consumer that prefers reading from a
// channel, typically a websocket or gRPC streaming handler.
type ChannelSink struct {
	Messages chan domain.Message
}

func NewChannelSink(bufferSize int) *ChannelSink {
	return &ChannelSink{Messages: make(chan domain.Message, bufferSize)}
}

// Consume forwards the message to the channel owner. A full channel means
// the consumer is behind; the message is dropped rather than blocking the
// drain goroutine, and the consumer refetches on reconnect.
func (s *ChannelSink) Consume(ctx context.Context, msg domain.Message) error {
	select {
	case s.Messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
