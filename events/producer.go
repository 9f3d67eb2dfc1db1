// Package events publishes analysis lifecycle events to Kafka for
// downstream consumers. Publishing is a best-effort side channel: the
// caller-visible analysis result never depends on it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"credcheck/types"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "credcheck.analyses"

// AnalysisEvent is the wire format for one completed analysis. OwnerID is
// empty for anonymous submissions.
type AnalysisEvent struct {
	OwnerID    string    `json:"owner_id,omitempty"`
	Article    string    `json:"article"`
	Structure  string    `json:"structure"`
	Confidence int       `json:"confidence"`
	Verdict    string    `json:"verdict"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// ProducerConfig holds Kafka producer configuration.
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// Producer publishes analysis events through a sarama sync producer.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects a sync producer to the given brokers.
func NewProducer(cfg ProducerConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	return &Producer{producer: producer, topic: topic}, nil
}

// AnalysisCompleted publishes one event for a finished analysis. Events for
// authenticated callers are keyed by owner so per-owner ordering holds.
func (p *Producer) AnalysisCompleted(ctx context.Context, ownerID, article string, result types.AnalysisResult) error {
	event := AnalysisEvent{
		OwnerID:    ownerID,
		Article:    article,
		Structure:  result.Structure,
		Confidence: result.Confidence,
		Verdict:    result.FactCheck.Verdict,
		AnalyzedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	}
	if ownerID != "" {
		msg.Key = sarama.StringEncoder(ownerID)
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
