package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	phone      *string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a customer-registration command.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name string,
	address string,
	phone *string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}
	cmd.phone = phone

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string { return c.name }

// Address returns the customer address.
func (c CreateCustomerCommand) Address() string { return c.address }

// Phone returns the optional phone number.
func (c CreateCustomerCommand) Phone() *string { return c.phone }

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
