package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrConfirmErpProcessedCommandIsNotConstructed = errors.New(
	"ConfirmErpProcessedCommand must be created via NewConfirmErpProcessedCommand constructor",
)

// ConfirmErpProcessedCommand represents the acknowledgment that the
// downstream ERP picked up an exported order.
type ConfirmErpProcessedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewConfirmErpProcessedCommand creates a command to confirm ERP
// processing.
func NewConfirmErpProcessedCommand(orderID kernel.UUID, actor string) (ConfirmErpProcessedCommand, error) {
	cmd := ConfirmErpProcessedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmErpProcessedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmErpProcessedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmErpProcessedCommandIsNotConstructed)
}

// OrderID returns the identifier of the acknowledged order.
func (c ConfirmErpProcessedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who reported the acknowledgment.
func (c ConfirmErpProcessedCommand) Actor() string {
	return c.actor
}

func (c *ConfirmErpProcessedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmErpProcessedCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
