package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

// DeliveryIngestor runs intake for one order event. Satisfied by
// commands.IngestDeliveryCommandHandler.
type DeliveryIngestor interface {
	Handle(ctx context.Context, cmd commands.IngestDeliveryCommand) error
}

// EventHandler decodes order events and feeds matching ones to intake.
// Split from the consumer loop so the decode-and-ingest path is testable
// without a broker.
type EventHandler struct {
	ingestor DeliveryIngestor
	logger   *slog.Logger
}

// NewEventHandler creates a handler that feeds events into the ingestor.
func NewEventHandler(ingestor DeliveryIngestor, logger *slog.Logger) (*EventHandler, error) {
	if ingestor == nil {
		return nil, errs.NewValueIsRequiredError("ingestor")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &EventHandler{ingestor: ingestor, logger: logger}, nil
}

// HandleMessage processes one raw event payload.
//
// Returns nil for everything the consumer should acknowledge: successfully
// ingested events, events of other types, redelivered duplicates and
// malformed payloads (logged, not retried; a payload that does not parse
// now will not parse on redelivery either). A non-nil return means intake
// failed for a retryable reason, typically store unavailability.
func (h *EventHandler) HandleMessage(ctx context.Context, payload []byte) error {
	// Order IDs repeat on redelivery; the intake id ties together the log
	// lines of one processing attempt.
	logger := h.logger.With("intakeId", uuid.NewString())

	var event OrderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Error("drop malformed order event", "error", err)
		return nil
	}

	if event.EventType != commands.EventOrderOutForDelivery {
		logger.Debug("ignore order event", "eventType", event.EventType, "orderId", event.OrderID)
		return nil
	}

	address, err := kernel.NewAddress(event.Street, event.City, event.State, event.PostalCode)
	if err != nil {
		logger.Error("drop order event with invalid address", "orderId", event.OrderID, "error", err)
		return nil
	}

	items := make([]commands.OrderLine, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, commands.OrderLine{Name: item.Name, Quantity: item.Quantity})
	}

	cmd, err := commands.NewIngestDeliveryCommand(
		event.OrderID,
		event.UserID.String(),
		event.ContactName,
		event.ContactPhone,
		event.RestaurantID,
		address,
		items,
		event.Total,
	)
	if err != nil {
		logger.Error("drop invalid order event", "orderId", event.OrderID, "error", err)
		return nil
	}

	if err := h.ingestor.Handle(ctx, cmd); err != nil {
		if errors.Is(err, ports.ErrDuplicateOrder) {
			logger.Info("drop redelivered order event", "orderId", event.OrderID)
			return nil
		}
		return err
	}

	logger.Info("delivery record created", "orderId", event.OrderID, "city", event.City)
	return nil
}

// Consumer runs a Kafka consumer group feeding order events into intake.
type Consumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler *EventHandler
	logger  *slog.Logger
}

// NewConsumer connects a consumer group to the given brokers.
// Offsets start from the oldest available message so records are not lost
// when the consumer group is first created after the producer.
func NewConsumer(
	brokers []string,
	groupID string,
	topic string,
	handler *EventHandler,
	logger *slog.Logger,
) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if groupID == "" {
		return nil, errs.NewValueIsRequiredError("groupID")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if handler == nil {
		return nil, errs.NewValueIsRequiredError("handler")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topics:  []string{topic},
		handler: handler,
		logger:  logger,
	}, nil
}

// Start consumes until ctx is cancelled. It blocks; run it in a goroutine.
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for err := range c.group.Errors() {
			c.logger.Error("consumer group error", "error", err)
		}
	}()

	for {
		if err := c.group.Consume(ctx, c.topics, &groupHandler{c.handler}); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			c.logger.Error("consume session ended", "error", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// Close shuts the consumer group down.
func (c *Consumer) Close() error {
	return c.group.Close()
}

// groupHandler adapts EventHandler to sarama's session lifecycle.
type groupHandler struct {
	handler *EventHandler
}

func (groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (g *groupHandler) ConsumeClaim(
	session sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for message := range claim.Messages() {
		if err := g.handler.HandleMessage(session.Context(), message.Value); err != nil {
			// leave the offset unmarked so the message is redelivered
			return err
		}
		session.MarkMessage(message, "")
	}
	return nil
}
