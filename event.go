package storefront

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"goflare.io/storefront/cart"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

const cartEventSubjectPrefix = "storefront.cart.events."

type EventHandler func(context.Context, *models.CartEvent) error

// EventManager fans cart-change events out over NATS so out-of-process
// consumers (header badge, analytics) observe every completed mutation, and
// dispatches consumed events to registered handlers. A nil connection turns
// both directions into no-ops.
type EventManager struct {
	natsConn *nats.Conn
	handlers map[enum.CartEventType]EventHandler
	logger   *zap.Logger
}

var _ cart.EventSink = (*EventManager)(nil)

func NewEventManager(natsConn *nats.Conn, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		handlers: make(map[enum.CartEventType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType enum.CartEventType, handler EventHandler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType enum.CartEventType) (EventHandler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

func (em *EventManager) SubscribeToEvents(wp *WorkerPool) error {
	if em.natsConn == nil {
		return nil
	}

	_, err := em.natsConn.Subscribe(cartEventSubjectPrefix+">", func(msg *nats.Msg) {
		var event models.CartEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal cart event", zap.Error(err))
			return
		}

		wp.Submit(context.Background(), &event)
	})

	return err
}

// CartChanged publishes the event after a completed mutation. Publish
// failures are logged and never block the mutation.
func (em *EventManager) CartChanged(_ context.Context, event *models.CartEvent) {
	if em.natsConn == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		em.logger.Error("Failed to marshal cart event", zap.Error(err))
		return
	}

	if err = em.natsConn.Publish(cartEventSubjectPrefix+string(event.Type), data); err != nil {
		em.logger.Error("Failed to publish cart event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}

func (s *service) registerEventHandlers() {
	eventHandlers := map[enum.CartEventType]EventHandler{
		enum.CartEventTypeItemAdded:       s.handleCartChanged,
		enum.CartEventTypeItemRemoved:     s.handleCartChanged,
		enum.CartEventTypeQuantityUpdated: s.handleCartChanged,
		enum.CartEventTypeCartCleared:     s.handleCartCleared,
	}

	for eventType, handler := range eventHandlers {
		s.eventManager.RegisterHandler(eventType, handler)
	}
}

// handleCartChanged represents the badge consumers: the event already
// carries the derived values, so handling is a structured record of the new
// badge state.
func (s *service) handleCartChanged(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Cart badge updated",
		zap.String("event_type", string(event.Type)),
		zap.String("product_id", string(event.ProductID)),
		zap.Int("item_count", event.ItemCount),
		zap.Float64("total", event.Total))
	return nil
}

func (s *service) handleCartCleared(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Cart cleared", zap.String("event_id", event.ID))
	return nil
}
