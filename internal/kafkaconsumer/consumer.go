// Package kafkaconsumer wraps a sarama consumer group for the
// asynchronous validation pipeline (spec §12 "Kafka-driven batch
// validation"). The teacher's original main.go drove its consumer
// through an unpublished sibling module
// (github.com/jacksonbarreto/WebGateScanner-kafka) with no source in
// the retrieval pack; this package absorbs that role directly on top
// of IBM/sarama, which the sibling module itself wrapped.
package kafkaconsumer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// Consumer drives a sarama consumer group against a fixed topic set,
// handing each claim's messages to a caller-supplied
// sarama.ConsumerGroupHandler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
	ctx     context.Context
}

// New builds a Consumer for the given brokers/groupID/topics, using a
// handler that receives claimed messages (the pipeline package's
// Handler in this module). Mirrors the teacher's
// NewConsumer(brokers, groupID, topics, handler, ctx) constructor shape.
func New(brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler, ctx context.Context) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafkaconsumer: failed to create consumer group: %w", err)
	}

	return &Consumer{group: group, topics: topics, handler: handler, ctx: ctx}, nil
}

// Consume runs the consumer group's claim loop until ctx is cancelled
// or a non-rebalance error occurs. It blocks the calling goroutine,
// matching the teacher's "consumeErr := kafkaConsumer.Consume()" usage
// from cmd/dnssecanalyzer/main.go.
func (c *Consumer) Consume() error {
	for {
		if err := c.group.Consume(c.ctx, c.topics, c.handler); err != nil {
			return fmt.Errorf("kafkaconsumer: consume loop failed: %w", err)
		}
		if c.ctx.Err() != nil {
			return c.ctx.Err()
		}
	}
}

// Close releases the underlying consumer group's resources.
func (c *Consumer) Close() error {
	return c.group.Close()
}
