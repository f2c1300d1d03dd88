// Package pipeline consumes domain names from a Kafka input topic,
// validates each one's DNSSEC chain of trust, and republishes the
// result as JSON — renamed and retargeted from the teacher's
// internal/groupHandler, which did the same dispatch shape (consume a
// work item, scan, produce, handle errors) for ad-hoc record scanning.
package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/jacksonbarreto/dnssec-chain-validator/config"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/domainextractor"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/producer"
	"github.com/jacksonbarreto/dnssec-chain-validator/internal/validator"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/logservice"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models"
)

// Handler is a sarama.ConsumerGroupHandler that validates each consumed
// domain name and republishes the resulting TrustChain, matching the
// teacher's AnalysisConsumerGroupHandler shape.
type Handler struct {
	validator   *validator.Validator
	producer    *producer.Producer
	topics      []string
	topicsError []string
	log         logservice.Logger
}

// New builds a Handler bound to v (for validation) and p (for
// publishing results), sending successes to topics and failures to
// topicsError.
func New(v *validator.Validator, p *producer.Producer, topics, topicsError []string, log logservice.Logger) *Handler {
	return &Handler{validator: v, producer: p, topics: topics, topicsError: topicsError, log: log}
}

// NewDefault builds a Handler using the currently loaded Kafka
// configuration's producer topics/error topics.
func NewDefault(v *validator.Validator, p *producer.Producer) *Handler {
	kafkaCfg := config.Kafka()
	log := logservice.NewLogServiceDefault()
	return New(v, p, kafkaCfg.TopicsProducer, kafkaCfg.TopicsError, log)
}

// Setup is called once a new session starts; this handler keeps no
// per-session state.
func (h *Handler) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup is called once a session ends; this handler keeps no
// per-session state to tear down.
func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim validates each claimed message's domain name and
// publishes the resulting TrustChain, matching the teacher's
// ConsumeClaim loop shape (log, scan, produce, mark message).
func (h *Handler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		domain := string(message.Value)
		if normalized, extractErr := domainextractor.ExtractDomain(domain); extractErr == nil {
			domain = normalized
		}
		h.log.Info("message claimed: domain=%s topic=%s offset=%d", domain, message.Topic, message.Offset)

		chain, err := h.validator.Validate(session.Context(), domain)
		if err != nil {
			h.handleError(domain, err)
			session.MarkMessage(message, "")
			continue
		}

		payload, marshalErr := json.Marshal(chain.ExportView())
		if marshalErr != nil {
			h.handleError(domain, fmt.Errorf("pipeline: failed to marshal result: %w", marshalErr))
			session.MarkMessage(message, "")
			continue
		}

		for _, topic := range h.topics {
			if _, _, sendErr := h.producer.SendMessage(topic, string(payload)); sendErr != nil {
				h.handleError(domain, sendErr)
			}
		}

		session.MarkMessage(message, "")
	}
	return nil
}

func (h *Handler) handleError(domain string, cause error) {
	h.log.Error("validation failed for domain %s: %v", domain, cause)

	errMsg := models.KafkaErrorMessage{
		Origin: config.App().Id,
		Domain: domain,
		Error:  cause.Error(),
	}
	payload, marshalErr := json.Marshal(errMsg)
	if marshalErr != nil {
		h.log.Error("failed to marshal error message for domain %s: %v", domain, marshalErr)
		return
	}

	for _, topic := range h.topicsError {
		if _, _, sendErr := h.producer.SendMessage(topic, string(payload)); sendErr != nil {
			h.log.Error("failed to send error message to topic %s: %v", topic, sendErr)
		}
	}
}
