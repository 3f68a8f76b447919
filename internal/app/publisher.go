package app

import (
	"fmt"

	"krishak-delivery/internal/config"
	"krishak-delivery/internal/gateway/payments"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/transport/amqp"
	"krishak-delivery/internal/transport/kafka"
)

// publisherCloser releases the payment transport.
type publisherCloser func() error

var (
	newKafkaProducer = func(brokers []string, topic string) (payments.Publisher, func() error, error) {
		p, err := kafka.NewProducer(brokers, topic)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
	newAMQPPublisher = func(url, exchange string) (payments.Publisher, func() error, error) {
		p, err := amqp.NewPublisher(url, exchange)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
)

func newPaymentPublisher(cfg *config.Config, logger logx.Logger) (payments.Publisher, publisherCloser, error) {
	switch cfg.Payments.Transport {
	case config.TransportKafka:
		pub, closeFn, err := newKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka payment producer: %w", err)
		}
		logger.Info("payment transport selected", logx.String("transport", config.TransportKafka), logx.String("topic", cfg.Kafka.PaymentsTopic))
		return pub, publisherCloser(closeFn), nil
	case config.TransportAMQP:
		pub, closeFn, err := newAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return nil, nil, fmt.Errorf("amqp payment publisher: %w", err)
		}
		logger.Info("payment transport selected", logx.String("transport", config.TransportAMQP), logx.String("exchange", cfg.AMQP.Exchange))
		return pub, publisherCloser(closeFn), nil
	case config.TransportLog, "":
		logger.Info("payment transport selected", logx.String("transport", config.TransportLog))
		return payments.NewLogPublisher(logger), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown payment transport %q", cfg.Payments.Transport)
	}
}
