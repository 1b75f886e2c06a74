package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrSetLineStatusCommandIsNotConstructed = errors.New(
	"SetLineStatusCommand must be created via NewSetLineStatusCommand constructor",
)

// SetLineStatusCommand represents a reviewer cancelling or reactivating a
// single order line. Line changes are only audited, not written to status
// history, since the order's lifecycle status does not move.
type SetLineStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineNumber int
	status     order.LineStatus
	actor      string

	guard guard.ConstructorGuard
}

// NewSetLineStatusCommand creates a command to change one line's status.
func NewSetLineStatusCommand(
	orderID kernel.UUID,
	lineNumber int,
	status order.LineStatus,
	actor string,
) (SetLineStatusCommand, error) {
	cmd := SetLineStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineNumber(lineNumber),
		cmd.setStatus(status),
		cmd.setActor(actor),
	); err != nil {
		return SetLineStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetLineStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetLineStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the line.
func (c SetLineStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineNumber returns the number of the line being changed.
func (c SetLineStatusCommand) LineNumber() int {
	return c.lineNumber
}

// Status returns the target line status.
func (c SetLineStatusCommand) Status() order.LineStatus {
	return c.status
}

// Actor returns the reviewer changing the line.
func (c SetLineStatusCommand) Actor() string {
	return c.actor
}

func (c *SetLineStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetLineStatusCommand) setLineNumber(lineNumber int) error {
	if lineNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"line number",
			fmt.Errorf("%d is not greater than 0", lineNumber),
		)
	}

	c.lineNumber = lineNumber
	return nil
}

func (c *SetLineStatusCommand) setStatus(status order.LineStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *SetLineStatusCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
