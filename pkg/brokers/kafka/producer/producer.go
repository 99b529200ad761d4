package producer

import (
	"github.com/IBM/sarama"
)

// NewSyncProducer builds the producer used by the outbox relay. The relay
// deletes outbox rows only after SendMessages returns, so acks from all
// in-sync replicas are required.
func NewSyncProducer(brokerList []string) (sarama.SyncProducer, error) {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForAll
	producerConfig.Producer.Compression = sarama.CompressionNone
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Return.Errors = true

	return sarama.NewSyncProducer(brokerList, producerConfig)
}
