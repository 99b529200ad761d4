// Package send relays committed outbox rows to Kafka. State changes never
// wait on the broker: a failed relay is logged and retried on the next
// tick, and rows are deleted only after the producer acknowledged them.
package send

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/marcheferme/marketplace_service/internal/config"
	"github.com/marcheferme/marketplace_service/internal/domain/models"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type outboxGetter interface {
	FetchUnprocessedMessages(ctx context.Context) ([]models.OutboxMessage, error)
}

type outboxRemover interface {
	Delete(ctx context.Context, eventIDs []int) error
}

type Service struct {
	log         logger.Logger
	kafkaConfig config.KafkaConfig
	producer    sarama.SyncProducer

	outboxGetter  outboxGetter
	outboxRemover outboxRemover
}

func New(
	log logger.Logger,
	kafkaConfig config.KafkaConfig,
	producer sarama.SyncProducer,
	outboxGetter outboxGetter,
	outboxRemover outboxRemover,
) *Service {
	return &Service{
		log:           log,
		kafkaConfig:   kafkaConfig,
		producer:      producer,
		outboxGetter:  outboxGetter,
		outboxRemover: outboxRemover,
	}
}

func (s *Service) Send(ctx context.Context) error {
	messages, err := s.outboxGetter.FetchUnprocessedMessages(ctx)
	if err != nil {
		return fmt.Errorf("fetch unprocessed messages: %w", err)
	}

	if len(messages) == 0 {
		return nil
	}

	saramaMessages := make([]*sarama.ProducerMessage, 0, len(messages))
	processedIDs := make([]int, 0, len(messages))

	for _, msg := range messages {
		saramaMessages = append(saramaMessages, &sarama.ProducerMessage{
			Topic: s.kafkaConfig.OrderEventTopic,
			Key:   sarama.StringEncoder(msg.EventType),
			Value: sarama.ByteEncoder(msg.Payload),
		})

		processedIDs = append(processedIDs, msg.ID)
	}

	if err = s.producer.SendMessages(saramaMessages); err != nil {
		return fmt.Errorf("send messages: %w", err)
	}

	if err = s.outboxRemover.Delete(ctx, processedIDs); err != nil {
		return fmt.Errorf("remove messages: %w", err)
	}

	s.log.InfoContext(ctx, "outbox relay", logger.Int("sent", len(processedIDs)))

	return nil
}
