package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions.
// Enforces who may move an order, applies the state machine, records the
// financial transaction on completion, and releases the order's queue slot on
// terminal states. Everything commits atomically; notifications follow the
// commit.
//
// Permission rules:
//   - An owner may transition any order belonging to their restaurant.
//   - A customer may only cancel an order they placed themselves.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UpdateOrderStatusUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UpdateOrderStatusUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status transition command.
// Reads the order inside the transaction, so two racing transitions resolve
// to one winner and one ErrInvalidStatusTransition. Recording the completion
// transaction is idempotent: a record that already exists is kept as-is.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorize(ctx, uow, cmd, aggregate); err != nil {
		return err
	}

	if err = aggregate.AdvanceTo(cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == order.Completed {
		if err = h.recordTransaction(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	dequeued := false
	if aggregate.Status().IsTerminal() {
		if dequeued, err = uow.QueueRepository().Dequeue(ctx, aggregate.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate, dequeued)
	return nil
}

func (h *UpdateOrderStatusCommandHandler) authorize(
	ctx context.Context,
	uow UpdateOrderStatusUoW,
	cmd UpdateOrderStatusCommand,
	aggregate *order.Order,
) error {
	actor := cmd.Actor()

	switch actor.Role {
	case Owner:
		ownerID, err := uow.RestaurantRepository().GetOwnerID(ctx, aggregate.RestaurantID())
		if err != nil {
			return err
		}
		if !ownerID.IsEqual(actor.UserID) {
			return errs.NewPermissionDeniedError("order", actor.UserID.String())
		}
		return nil
	case Customer:
		if cmd.Target() != order.Cancelled || !aggregate.IsPlacedBy(actor.UserID) {
			return errs.NewPermissionDeniedError("order", actor.UserID.String())
		}
		return nil
	default:
		return errs.NewPermissionDeniedError("order", actor.UserID.String())
	}
}

// recordTransaction writes the financial record for a freshly completed
// order, keeping any record that already exists untouched.
func (h *UpdateOrderStatusCommandHandler) recordTransaction(
	ctx context.Context,
	uow UpdateOrderStatusUoW,
	aggregate *order.Order,
) error {
	_, err := uow.TransactionRepository().GetByOrderID(ctx, aggregate.ID())
	if err == nil {
		return nil
	}

	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	transaction, err := billing.NewTransactionForOrder(kernel.NewUUID(), aggregate, time.Now().UTC())
	if err != nil {
		return err
	}

	return uow.TransactionRepository().Add(ctx, transaction)
}

func (h *UpdateOrderStatusCommandHandler) notify(ctx context.Context, aggregate *order.Order, dequeued bool) {
	event := OrderStatusEvent{
		Type:    eventTypeOrderStatus,
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
	}
	if err := h.publisher.Publish(ctx, ports.OrderTopic(aggregate.ID()), event); err != nil {
		h.logger.Warn("failed to publish order status event",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}

	if !dequeued {
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
