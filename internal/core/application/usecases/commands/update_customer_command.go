package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a full update of a customer record.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	phone      *string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a customer-update command.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name string,
	address string,
	phone *string,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}
	cmd.phone = phone

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the replacement name.
func (c UpdateCustomerCommand) Name() string { return c.name }

// Address returns the replacement address.
func (c UpdateCustomerCommand) Address() string { return c.address }

// Phone returns the replacement phone number, nil to clear.
func (c UpdateCustomerCommand) Phone() *string { return c.phone }

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
