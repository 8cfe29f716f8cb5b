package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"sitara.io/store/models"
)

type EventHandler func(context.Context, *models.BackendEvent) error

// EventManager routes backend change events to their handlers. Every handler
// evicts the cached queries the changed entity feeds, so the next read goes
// back to the gateway.
type EventManager struct {
	natsConn *nats.Conn
	handlers map[string]EventHandler
	logger   *zap.Logger
}

func NewEventManager(natsConn *nats.Conn, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		handlers: make(map[string]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType string, handler EventHandler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType string) (EventHandler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

func (em *EventManager) SubscribeToEvents(wp *WorkerPool) error {
	_, err := em.natsConn.Subscribe("backend.event.>", func(msg *nats.Msg) {
		var event models.BackendEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal event", zap.Error(err))
			return
		}

		wp.Submit(context.Background(), &event)
	})

	return err
}

func (s *service) registerEventHandlers() {
	eventHandlers := map[string]EventHandler{
		// Order events also touch the dashboard numbers and the bell badge.
		"order.created": s.handleOrderChanged,
		"order.updated": s.handleOrderChanged,

		// Product events
		"product.created": s.handleProductChanged,
		"product.updated": s.handleProductChanged,
		"product.deleted": s.handleProductChanged,

		// Category events
		"category.created": s.handleCategoryChanged,
		"category.updated": s.handleCategoryChanged,
		"category.deleted": s.handleCategoryChanged,

		// Customer events
		"customer.created": s.handleCustomerChanged,
		"customer.updated": s.handleCustomerChanged,

		// Contact and notification events
		"message.created":      s.handleMessageCreated,
		"notification.created": s.handleNotificationCreated,

		// Settings events
		"settings.updated": s.handleSettingsUpdated}

	for eventType, handler := range eventHandlers {
		s.eventManager.RegisterHandler(eventType, handler)
	}
}

func (s *service) handleOrderChanged(ctx context.Context, event *models.BackendEvent) error {
	s.cache.InvalidatePrefix(ctx, "admin-orders")
	s.cache.Invalidate(ctx,
		fmt.Sprintf("order:%d", event.EntityID),
		"admin-stats", "admin-notifications")
	return nil
}

func (s *service) handleProductChanged(ctx context.Context, event *models.BackendEvent) error {
	s.cache.InvalidatePrefix(ctx, "products?")
	s.cache.Invalidate(ctx,
		"admin-products", "products", "home",
		fmt.Sprintf("product:%d", event.EntityID))
	return nil
}

func (s *service) handleCategoryChanged(ctx context.Context, event *models.BackendEvent) error {
	// Category changes reshape product listings filtered by category too.
	s.cache.InvalidatePrefix(ctx, "products?")
	s.cache.Invalidate(ctx, "admin-categories", "categories", "home")
	return nil
}

func (s *service) handleCustomerChanged(ctx context.Context, event *models.BackendEvent) error {
	s.cache.Invalidate(ctx,
		"admin-customers",
		fmt.Sprintf("customer:%d", event.EntityID),
		"admin-stats")
	return nil
}

func (s *service) handleMessageCreated(ctx context.Context, event *models.BackendEvent) error {
	s.cache.InvalidatePrefix(ctx, "admin-messages")
	return nil
}

func (s *service) handleNotificationCreated(ctx context.Context, event *models.BackendEvent) error {
	s.cache.Invalidate(ctx, "admin-notifications")
	return nil
}

func (s *service) handleSettingsUpdated(ctx context.Context, event *models.BackendEvent) error {
	s.cache.Invalidate(ctx, "admin-settings")
	return nil
}

// ProcessEvent applies one backend event at most once. NATS redelivery and
// overlapping subscriptions make duplicates routine, not errors.
func (s *service) ProcessEvent(ctx context.Context, event *models.BackendEvent) error {
	first, err := s.events.MarkProcessed(ctx, event.ID)
	if err != nil {
		return err
	}
	if !first {
		s.logger.Info("Event already processed", zap.String("event_id", event.ID))
		return nil
	}

	handler, exists := s.eventManager.GetHandler(event.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type: %s", event.Type)
	}

	if err := handler(ctx, event); err != nil {
		s.logger.Error("Failed to handle event",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Backend event processed", zap.String("event_id", event.ID))

	return nil
}
