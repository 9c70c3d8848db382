package broker

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/hospice/hospital-locator-api/messages"
	jsoniter "github.com/json-iterator/go"
)

func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	config := sarama.NewConfig()
	// Return success is required for sync producer.
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return sarama.NewSyncProducer(brokers, config)
}

// InboundPublisher sends inbound messages to the relay topic, keyed by
// message id so redeliveries land on the same partition.
type InboundPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewInboundPublisher(producer sarama.SyncProducer, topic string) *InboundPublisher {
	return &InboundPublisher{producer: producer, topic: topic}
}

func (p *InboundPublisher) PublishInbound(_ context.Context, inbound messages.Inbound) error {
	bytes, err := jsoniter.Marshal(inbound)
	if err != nil {
		return fmt.Errorf("failed to encode inbound message: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(inbound.ID),
		Value: sarama.ByteEncoder(bytes),
	})
	if err != nil {
		return fmt.Errorf("failed to send inbound message: %w", err)
	}

	return nil
}
