package event

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/telemetry"
)

// TransactionRegistered is the payload published after a successful
// income/expense registration.
type TransactionRegistered struct {
	Event         string   `json:"event"`
	TransactionID string   `json:"transaction_id"`
	Kind          string   `json:"kind"` // receita | despesa
	Description   string   `json:"description"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	TagIDs        []string `json:"tag_ids,omitempty"`
	RegisteredAt  string   `json:"registered_at"`
}

func NewTransactionRegistered(tx domain.Transaction, kind string) TransactionRegistered {
	tagIDs := make([]string, 0, len(tx.Tags))
	for _, t := range tx.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	return TransactionRegistered{
		Event:         "transaction_registered",
		TransactionID: tx.ID,
		Kind:          kind,
		Description:   tx.Description,
		Amount:        tx.Amount.Value(),
		Date:          tx.Date.Time().Format("2006-01-02"),
		TagIDs:        tagIDs,
		RegisteredAt:  tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Publisher drains registered-transaction events to Kafka off the request
// path. A full queue drops the event; registration itself never blocks on it.
type Publisher struct {
	log       *zap.Logger
	producer  *Producer
	validator *Validator
	ch        chan TransactionRegistered
}

func NewPublisher(log *zap.Logger, producer *Producer, validator *Validator, queueSize int) *Publisher {
	return &Publisher{
		log:       log,
		producer:  producer,
		validator: validator,
		ch:        make(chan TransactionRegistered, queueSize),
	}
}

func (p *Publisher) Enqueue(ev TransactionRegistered) {
	select {
	case p.ch <- ev:
		telemetry.SetPublisherQueue(len(p.ch))
	default:
		p.log.Warn("event queue full; dropping event", zap.String("tx_id", ev.TransactionID))
		telemetry.IncEventsFailed("queue")
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.log.Info("event publisher started")
	for {
		select {
		case <-ctx.Done():
			p.log.Info("event publisher stopped")
			return
		case ev := <-p.ch:
			telemetry.SetPublisherQueue(len(p.ch))
			if err := p.validator.Validate(ev); err != nil {
				p.log.Error("event failed schema validation", zap.Error(err), zap.String("tx_id", ev.TransactionID))
				telemetry.IncEventsFailed("schema")
				continue
			}
			pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := p.producer.Publish(pubCtx, ev.TransactionID, ev)
			cancel()
			if err != nil {
				p.log.Error("failed to publish event", zap.Error(err), zap.String("tx_id", ev.TransactionID))
				telemetry.IncEventsFailed("kafka")
				continue
			}
			telemetry.IncEventsPublished()
			p.log.Info("event published", zap.String("tx_id", ev.TransactionID), zap.String("kind", ev.Kind))
		}
	}
}
