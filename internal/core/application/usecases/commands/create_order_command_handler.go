package commands

import (
	"context"
	"errors"
	"time"

	"sitebuilder/internal/core/domain/model/customer"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"
)

// CreateOrderResult carries the outcome of a successful checkout back to the
// caller: the payment client secret the customer's browser needs to confirm
// the charge.
type CreateOrderResult struct {
	ClientSecret string
}

// CreateOrderCommandHandler handles the business logic for placing an order.
// Registers first-time customers, prepares the payment intent, and creates
// the order in pending status with its initial timeline entry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, payments)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// result.ClientSecret goes back to the browser
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	payments   ports.PaymentProcessor
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a UoWFactory for transactional persistence and a PaymentProcessor
// for preparing the charge.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, payments ports.PaymentProcessor) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the checkout command.
// Looks up the customer, registering them if this is their first order, asks
// the payment processor for an intent, and persists the new order. The order
// and any new customer row commit atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	cust, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return CreateOrderResult{}, err
		}

		cust, err = customer.NewCustomer(cmd.CustomerID(), cmd.CustomerName(), cmd.CustomerEmail())
		if err != nil {
			return CreateOrderResult{}, err
		}

		if err = customerRepo.Add(ctx, cust); err != nil {
			return CreateOrderResult{}, err
		}
	}

	intent, err := h.payments.CreateIntent(ctx, cust, cmd.Plan(), cmd.Plan().Price())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Plan(),
		cmd.Requirements(),
		intent.Ref,
		cmd.PaymentMethod(),
		time.Now().UTC(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{ClientSecret: intent.ClientSecret}, nil
}
