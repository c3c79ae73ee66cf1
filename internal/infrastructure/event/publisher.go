package event

import (
	"context"

	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/clinicfinder/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// LogPublisher logs events instead of shipping them. Used when no brokers are configured.
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher creates a LogPublisher
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each event at debug level
func (p *LogPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	for _, ev := range events {
		p.logger.Debug("domain event",
			zap.String("event_type", ev.EventType()),
			zap.String("event_id", ev.EventID().String()),
			zap.String("aggregate_id", ev.AggregateID().String()),
		)
	}
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error { return nil }

var _ shared.EventPublisher = (*LogPublisher)(nil)

// NewPublisher returns a Kafka publisher when brokers are configured, otherwise a LogPublisher
func NewPublisher(cfg config.MessagingConfig, logger *zap.Logger) (shared.EventPublisher, error) {
	if len(cfg.Brokers) == 0 {
		logger.Info("no kafka brokers configured, domain events are only logged")
		return NewLogPublisher(logger), nil
	}
	p, err := NewKafkaPublisher(cfg.Brokers, cfg.Topic, cfg.WriteTimeout, logger.Named("kafka"))
	if err != nil {
		return nil, err
	}
	logger.Info("publishing domain events to kafka",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic),
	)
	return p, nil
}
