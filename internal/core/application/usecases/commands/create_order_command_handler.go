package commands

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/queue"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Prices the requested lines against the live menu, computes taxes, persists
// the order in Pending status, and appends online orders to the restaurant's
// ready queue, all within one transaction. Notifications go out only after
// the transaction has committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, pricing, rates, 30*time.Minute, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory      CreateOrderUoWFactory
	publisher       ports.EventPublisher
	pricing         services.PricingService
	taxRates        billing.TaxRates
	defaultLeadTime time.Duration
	logger          *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// defaultLeadTime is the preparation window assumed for online orders whose
// requested pickup time already lies in the past.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	publisher ports.EventPublisher,
	pricing services.PricingService,
	taxRates billing.TaxRates,
	defaultLeadTime time.Duration,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		publisher:       publisher,
		pricing:         pricing,
		taxRates:        taxRates,
		defaultLeadTime: defaultLeadTime,
		logger:          logger,
	}
}

// Handle processes the order placement command.
// Prices run against menu state read inside the transaction, so an item
// toggled unavailable concurrently either prices before the toggle or fails,
// never half-and-half. Returns pricing errors (unknown, unavailable, or
// cross-restaurant items) unwrapped for the caller to map.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines := cmd.Lines()
	menuItems, err := uow.MenuItemRepository().GetByIDs(ctx, menuItemIDs(lines))
	if err != nil {
		return err
	}

	items, subtotal, err := h.pricing.Price(cmd.RestaurantID(), lines, menuItems)
	if err != nil {
		return err
	}

	breakdown, err := billing.CalculateTaxes(subtotal, cmd.Tip(), h.taxRates)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RestaurantID(),
		cmd.CustomerID(),
		cmd.OrderType(),
		cmd.TableNumber(),
		cmd.RequestedTime(),
		items,
		order.Totals{
			Subtotal: breakdown.Subtotal,
			TaxA:     breakdown.TaxA,
			TaxB:     breakdown.TaxB,
			Tip:      cmd.Tip().Round2(),
			Total:    breakdown.Total,
		},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Type() == order.Online {
		readyTime := queue.ResolveReadyTime(cmd.RequestedTime(), now, h.defaultLeadTime)
		if _, err = uow.QueueRepository().Enqueue(ctx, aggregate.RestaurantID(), aggregate.ID(), readyTime); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate)
	return nil
}

// notify publishes post-commit events. Failures are logged and swallowed:
// the order is already durable, subscribers catch up on their next read.
func (h *CreateOrderCommandHandler) notify(ctx context.Context, aggregate *order.Order) {
	event := NewOrderEvent{
		Type:         eventTypeNewOrder,
		OrderID:      aggregate.ID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		OrderType:    aggregate.Type().String(),
		Total:        aggregate.Totals().Total.String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
	if err := h.publisher.Publish(ctx, ports.RestaurantTopic(aggregate.RestaurantID()), event); err != nil {
		h.logger.Warn("failed to publish new order event",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}

	if aggregate.Type() != order.Online {
		return
	}

	queueEvent := QueueChangedEvent{
		Type:         eventTypeQueueChanged,
		RestaurantID: aggregate.RestaurantID().String(),
	}
	if err := h.publisher.Publish(ctx, ports.QueueTopic(aggregate.RestaurantID()), queueEvent); err != nil {
		h.logger.Warn("failed to publish queue change event",
			slog.String("restaurant_id", aggregate.RestaurantID().String()),
			slog.Any("error", err))
	}
}

func menuItemIDs(lines []services.RequestedLine) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}
