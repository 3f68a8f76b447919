package payments

import (
	"context"

	"krishak-delivery/internal/logx"
)

// LogPublisher writes payment messages to the log instead of a broker.
type LogPublisher struct {
	logger logx.Logger
}

// NewLogPublisher returns a LogPublisher.
func NewLogPublisher(logger logx.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the message.
func (p *LogPublisher) Publish(_ context.Context, key, messageID, kind string, body []byte) error {
	p.logger.Info("payment message",
		logx.String("event", "payment_message_logged"),
		logx.String("key", key),
		logx.String("message_id", messageID),
		logx.String("kind", kind),
		logx.String("body", string(body)),
	)
	return nil
}
