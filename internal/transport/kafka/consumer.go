package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/service/jobs"
)

var newConsumerGroup = sarama.NewConsumerGroup

// HandleFunc processes a single jobs.Event from Kafka
type HandleFunc func(context.Context, jobs.Event) error

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
}

// NewConsumer creates a new Kafka consumer. It returns nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if logger == nil {
		logger = logx.Nop()
	}
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		logger.Info("kafka consumer disabled", logx.String("topic", topic))
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer group: %w", err)
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger.With(logx.String("component", "kafka_consumer"), logx.String("topic", topic)),
	}, nil
}

// Run consumes until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks undecodable messages and moves on. A handler error ends the
// claim without marking so the message is consumed again after the rebalance.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		ev, err := decode(msg.Offset, msg.Value)
		if err != nil {
			if IsPoison(err) {
				h.c.logger.Warn("kafka message skipped",
					logx.Int64("offset", msg.Offset),
					logx.Any("partition", msg.Partition),
					logx.Err(err),
				)
				sess.MarkMessage(msg, "")
				continue
			}
			return err
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			h.c.logger.Error("kafka handle failed, will retry",
				logx.String("name", ev.Name),
				logx.String("order_id", ev.OrderID),
				logx.Err(err),
			)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}

func decode(offset int64, value []byte) (jobs.Event, error) {
	var dto JobEventDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return jobs.Event{}, &PoisonMessageError{Offset: offset, Err: fmt.Errorf("bad json: %w", err)}
	}
	ev := ToDomain(dto)
	if ev.Name == "" {
		return jobs.Event{}, &PoisonMessageError{Offset: offset, Err: errEmptyEvent}
	}
	if ev.OrderID == "" {
		return jobs.Event{}, &PoisonMessageError{Offset: offset, Err: errEmptyOrderID}
	}
	return ev, nil
}
