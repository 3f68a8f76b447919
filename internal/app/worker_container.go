package app

import (
	"go.uber.org/dig"

	"krishak-delivery/internal/config"
	"krishak-delivery/internal/gateway/payments"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/repository"
	"krishak-delivery/internal/service/assignment"
	"krishak-delivery/internal/service/jobs"
	"krishak-delivery/internal/service/payout"
	"krishak-delivery/internal/transport/kafka"
)

func registerPayments(container *dig.Container) error {
	notifierProvider := func(pub payments.Publisher, cfg *config.Config, m *appMetrics, logger logx.Logger) payout.Notifier {
		return payments.NewRetryingNotifier(
			payments.NewPublishingNotifier(pub),
			logger,
			m.notifyRetries,
			payments.RetryConfig{
				MaxAttempts: cfg.Payments.MaxAttempts,
				BaseDelay:   cfg.Payments.BaseDelay,
				MaxDelay:    cfg.Payments.MaxDelay,
			},
		)
	}
	return provideAll(container,
		newPaymentPublisher,
		notifierProvider,
	)
}

func registerWorker(container *dig.Container) error {
	relayProvider := func(
		store *repository.OutboxRepo,
		notifier payout.Notifier,
		cfg *config.Config,
		m *appMetrics,
		logger logx.Logger,
	) *payout.Relay {
		return payout.NewRelay(store, notifier, payout.RelayConfig{
			BatchSize:   cfg.Outbox.BatchSize,
			MaxAttempts: cfg.Outbox.MaxAttempts,
			Timeout:     cfg.Outbox.Timeout,
		}, m.outboxRelayed, logger)
	}
	relayJobProvider := func(relay *payout.Relay, cfg *config.Config, logger logx.Logger) *payout.RelayJob {
		return payout.NewRelayJob(relay, cfg.Outbox.Schedule, logger)
	}
	processorProvider := func(svc *assignment.Service, m *appMetrics, logger logx.Logger) *jobs.Processor {
		return jobs.NewProcessor(svc, m.jobEvents, logger)
	}
	consumerProvider := func(cfg *config.Config, p *jobs.Processor, logger logx.Logger) (*kafka.Consumer, error) {
		return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.JobsTopic, p.Handle)
	}
	return provideAll(container,
		repository.NewOutboxRepo,
		relayProvider,
		relayJobProvider,
		processorProvider,
		consumerProvider,
	)
}
