package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand represents a reviewer restoring a cancelled order
// back to review. The reason rules are the same ReasonPolicy the cancel
// command uses.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore a cancelled order.
// The reason must satisfy the policy's minimum trimmed length and the
// confirmation flag must be set.
func NewRestoreOrderCommand(
	orderID kernel.UUID,
	actor string,
	reason string,
	confirmed bool,
	policy ReasonPolicy,
) (RestoreOrderCommand, error) {
	cmd := RestoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setReason(reason, confirmed, policy),
	); err != nil {
		return RestoreOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being restored.
func (c RestoreOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the reviewer restoring the order.
func (c RestoreOrderCommand) Actor() string {
	return c.actor
}

// Reason returns the policy-checked restore reason.
func (c RestoreOrderCommand) Reason() string {
	return c.reason
}

func (c *RestoreOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RestoreOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *RestoreOrderCommand) setReason(reason string, confirmed bool, policy ReasonPolicy) error {
	if err := policy.Check(reason, confirmed); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
