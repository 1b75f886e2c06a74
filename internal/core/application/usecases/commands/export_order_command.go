package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrExportOrderCommandIsNotConstructed = errors.New(
	"ExportOrderCommand must be created via NewExportOrderCommand constructor",
)

// ExportOrderCommand represents a reviewer exporting a validated order to
// the downstream ERP. Validation runs again because the order may have
// drifted since it was marked validated.
type ExportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewExportOrderCommand creates a command to export an order.
func NewExportOrderCommand(orderID kernel.UUID, actor string) (ExportOrderCommand, error) {
	cmd := ExportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ExportOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExportOrderCommand) Validate() error {
	return c.guard.Validate(ErrExportOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being exported.
func (c ExportOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the reviewer exporting the order.
func (c ExportOrderCommand) Actor() string {
	return c.actor
}

func (c *ExportOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ExportOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
