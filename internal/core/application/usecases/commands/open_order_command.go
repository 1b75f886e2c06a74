package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrOpenOrderCommandIsNotConstructed = errors.New(
		"OpenOrderCommand must be created via NewOpenOrderCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// OpenOrderCommand represents a reviewer opening an order for review.
// Opening is the moment the order receives its ERP sequence number and
// leaves Pending.
//
// Example:
//
//	cmd, err := NewOpenOrderCommand(orderID, "jdoe")
//	if err != nil {
//	    return fmt.Errorf("invalid open request: %w", err)
//	}
//
//	handler := NewOpenOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open order: %w", err)
//	}
type OpenOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewOpenOrderCommand creates a command to open an order for review.
// Validates that the order ID is valid and the actor is not empty.
func NewOpenOrderCommand(orderID kernel.UUID, actor string) (OpenOrderCommand, error) {
	cmd := OpenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return OpenOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being opened.
func (c OpenOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the reviewer opening the order.
func (c OpenOrderCommand) Actor() string {
	return c.actor
}

func (c *OpenOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OpenOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
