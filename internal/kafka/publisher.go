package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"partner-trx-api/internal/config"
	"partner-trx-api/internal/domain"
)

//go:generate mockgen -destination=mocks/sarama_mock.go -package=mocks github.com/IBM/sarama AsyncProducer

var (
	publishedEventsCounter prometheus.Counter
	publishErrorsCounter   prometheus.Counter
	droppedEventsCounter   prometheus.Counter
)

func init() {
	publishedEventsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outcome_publisher_published_events_total",
		Help: "Total number of validation outcome events delivered to Kafka",
	})

	publishErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outcome_publisher_errors_total",
		Help: "Total number of validation outcome events that failed to deliver",
	})

	droppedEventsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outcome_publisher_dropped_events_total",
		Help: "Total number of validation outcome events dropped because the producer buffer was full",
	})
}

// Publisher is the best-effort side channel for validation outcomes. It
// never blocks the request path: when the producer buffer is full the
// event is counted as dropped and forgotten.
type Publisher struct {
	topic    string
	logger   *slog.Logger
	producer sarama.AsyncProducer
	wg       sync.WaitGroup
}

func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger, producer sarama.AsyncProducer) *Publisher {
	p := &Publisher{
		topic:    cfg.Topic,
		logger:   logger,
		producer: producer,
	}

	p.wg.Add(2)
	go p.drainSuccesses()
	go p.drainErrors()

	return p
}

func (p *Publisher) Publish(ctx context.Context, event domain.OutcomeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal outcome event", slog.String("error", err.Error()))
		publishErrorsCounter.Inc()
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartnerRefNo),
		Value: sarama.ByteEncoder(payload),
	}

	select {
	case p.producer.Input() <- msg:
	case <-ctx.Done():
		droppedEventsCounter.Inc()
	default:
		p.logger.Warn("outcome event dropped, producer buffer full",
			slog.String("partnerrefno", event.PartnerRefNo))
		droppedEventsCounter.Inc()
	}
}

func (p *Publisher) drainSuccesses() {
	defer p.wg.Done()
	for range p.producer.Successes() {
		publishedEventsCounter.Inc()
	}
}

func (p *Publisher) drainErrors() {
	defer p.wg.Done()
	for perr := range p.producer.Errors() {
		p.logger.Warn("failed to publish outcome event", slog.String("error", perr.Err.Error()))
		publishErrorsCounter.Inc()
	}
}

// Close flushes the producer and waits for the drain goroutines.
func (p *Publisher) Close() error {
	p.producer.AsyncClose()
	p.wg.Wait()
	return nil
}
