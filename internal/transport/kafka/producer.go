package kafka

import (
	"context"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes payment messages to a single topic
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects a synchronous producer to brokers
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka producer: brokers and topic are required")
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 5
	cfg.Net.MaxOpenRequests = 1

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Producer{producer: p, topic: topic}, nil
}

// Publish sends body keyed by key; kind and messageID travel as headers.
func (p *Producer) Publish(ctx context.Context, key, messageID, kind string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(kind)},
			{Key: []byte("message_id"), Value: []byte(messageID)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka send to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the producer
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
