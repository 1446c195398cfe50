// Package customer contains the Customer entity. Customers are first-class
// records referenced by parcels; deleting a customer clears the reference on
// its parcels but never removes them.
package customer

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an independent entity: name and address are required, phone
// is optional.
type Customer struct {
	id      kernel.UUID
	name    string
	address string
	phone   *string

	isConstructed bool
}

// NewCustomer creates a validated customer.
func NewCustomer(id kernel.UUID, name, address string, phone *string) (*Customer, error) {
	return RestoreCustomer(id, name, address, phone)
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, address string, phone *string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}
	c.phone = phone

	return c, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Address returns the customer address.
func (c *Customer) Address() string { return c.address }

// Phone returns the optional phone number.
func (c *Customer) Phone() *string { return c.phone }

// Update replaces the customer's mutable fields.
func (c *Customer) Update(name, address string, phone *string) error {
	if err := errors.Join(
		c.setName(name),
		c.setAddress(address),
	); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
