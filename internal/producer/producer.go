// Package producer publishes validated TrustChain JSON (and error
// reports) to Kafka, adapted from the teacher's
// internal/producer/producer.go with the same SyncProducer shape.
package producer

import (
	"fmt"

	"github.com/IBM/sarama"

	"github.com/jacksonbarreto/dnssec-chain-validator/config"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/logservice"
)

// Producer publishes string-encoded messages to Kafka topics via a
// synchronous sarama producer.
type Producer struct {
	syncProducer sarama.SyncProducer
	log          logservice.Logger
}

// New builds a Producer against brokers, retrying up to maxRetry times
// per send, matching the teacher's Producer.Retry.Max wiring.
func New(brokers []string, maxRetry int, log logservice.Logger) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = maxRetry

	syncProducer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("producer: failed to create Kafka producer: %w", err)
	}

	return &Producer{syncProducer: syncProducer, log: log}, nil
}

// NewDefault builds a Producer from the currently loaded Kafka
// configuration.
func NewDefault(log logservice.Logger) (*Producer, error) {
	kafkaCfg := config.Kafka()
	return New(kafkaCfg.Brokers, kafkaCfg.MaxRetry, log)
}

// SendMessage publishes message to topic and returns the partition and
// offset it landed at.
func (p *Producer) SendMessage(topic, message string) (partition int32, offset int64, err error) {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.StringEncoder(message),
	}

	partition, offset, err = p.syncProducer.SendMessage(msg)
	if err != nil {
		p.log.Error("failed to send message to topic %s: %v", topic, err)
		return 0, 0, fmt.Errorf("producer: send to %s failed: %w", topic, err)
	}

	return partition, offset, nil
}

// Close releases the underlying sarama producer.
func (p *Producer) Close() error {
	if err := p.syncProducer.Close(); err != nil {
		return fmt.Errorf("producer: failed to close: %w", err)
	}
	return nil
}
