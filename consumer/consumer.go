package consumer

import (
	"context"
	"time"

	"github.com/Shopify/sarama"
	"github.com/hospice/hospital-locator-api/messages"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	InboundTopicName = "topic.messages.inbound"

	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 500 * time.Millisecond
)

type Persister interface {
	Persist(inbound messages.Inbound) error
}

// Consumer stores doctor replies published by the api.
type Consumer struct {
	Ready     chan bool
	topic     string
	persister Persister
	consumer  sarama.ConsumerGroup
	Counter   *prometheus.CounterVec

	// A message that still fails after MaxAttempts is dropped: committing a
	// later offset in the partition would skip it anyway.
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewConsumer(group sarama.ConsumerGroup, topic string, persister Persister, counter *prometheus.CounterVec) *Consumer {
	if topic == "" {
		topic = InboundTopicName
	}
	return &Consumer{
		Ready:     make(chan bool),
		topic:     topic,
		persister: persister,
		consumer:  group,
		Counter:   counter,

		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Start joins the group and blocks until the first session is set up.
func (consumer *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			if err := consumer.consumer.Consume(ctx, []string{consumer.topic}, consumer); err != nil {
				log.Logger().Error("Error from consumer:", zap.Error(err))
			}
			// check if context was cancelled, signaling that the consumer should stop
			if ctx.Err() != nil {
				return
			}
			consumer.Ready = make(chan bool)
		}
	}()
	<-consumer.Ready
	log.Logger().Info("Sarama consumer up and running!...")
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the c as Ready
	close(consumer.Ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if consumer.handle(session.Context(), message) {
				session.MarkMessage(message, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle reports whether the message may be marked: stored, undecodable, or
// dropped after MaxAttempts. It returns false only when ctx ends mid-retry, so
// the message is redelivered to the next session.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) bool {
	var inbound messages.Inbound
	if err := jsoniter.Unmarshal(message.Value, &inbound); err != nil {
		consumer.count(message.Topic, "malformed")
		log.Logger().Error("inbound message deserialization error",
			zap.Int32("partition", message.Partition),
			zap.Int64("offset", message.Offset),
			zap.Int("size", len(message.Value)),
			zap.Error(err),
		)
		return true
	}

	attempts := consumer.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(consumer.RetryDelay):
			}
		}

		if err = consumer.persister.Persist(inbound); err == nil {
			consumer.count(message.Topic, "stored")
			return true
		}
		consumer.count(message.Topic, "failed")
		log.Logger().Warn("error storing inbound message", zap.String("id", inbound.ID), zap.Int("attempt", attempt), zap.Error(err))
	}

	consumer.count(message.Topic, "dropped")
	log.Logger().Error("inbound message dropped", zap.String("id", inbound.ID), zap.Error(err))
	return true
}

func (consumer *Consumer) count(topic, outcome string) {
	if consumer.Counter == nil {
		return
	}
	consumer.Counter.With(prometheus.Labels{
		"topic":   topic,
		"outcome": outcome,
	}).Inc()
}
