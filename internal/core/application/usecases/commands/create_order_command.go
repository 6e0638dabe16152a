package commands

import (
	"errors"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to sell a device.
// Encapsulates the customer's contact details, the agreed pickup slot and
// the quoted device.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerPhone string
	customerEmail string
	address       string
	scheduleDate  string
	scheduleTime  string
	productName   string
	productSlug   string
	productImage  string
	price         int
	options       map[string]string
	platform      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new buy-back order.
// Validates that the customer phone, address and quoted price are present.
func NewCreateOrderCommand(
	customerName, customerPhone, customerEmail, address string,
	scheduleDate, scheduleTime string,
	productName, productSlug, productImage string,
	price int,
	options map[string]string,
	platform string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerPhone(customerPhone),
		cmd.setAddress(address),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customerName = customerName
	cmd.customerEmail = customerEmail
	cmd.scheduleDate = scheduleDate
	cmd.scheduleTime = scheduleTime
	cmd.productName = productName
	cmd.productSlug = productSlug
	cmd.productImage = productImage
	cmd.options = options
	cmd.platform = platform
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the ordering customer's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the ordering customer's phone.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// CustomerEmail returns the ordering customer's email.
func (c CreateOrderCommand) CustomerEmail() string { return c.customerEmail }

// Address returns the free-form pickup address.
func (c CreateOrderCommand) Address() string { return c.address }

// ScheduleDate returns the agreed pickup date.
func (c CreateOrderCommand) ScheduleDate() string { return c.scheduleDate }

// ScheduleTime returns the agreed pickup time slot.
func (c CreateOrderCommand) ScheduleTime() string { return c.scheduleTime }

// ProductName returns the quoted device name.
func (c CreateOrderCommand) ProductName() string { return c.productName }

// ProductSlug returns the quoted device catalogue slug.
func (c CreateOrderCommand) ProductSlug() string { return c.productSlug }

// ProductImage returns the quoted device image URL.
func (c CreateOrderCommand) ProductImage() string { return c.productImage }

// Price returns the quoted amount in whole rupees.
func (c CreateOrderCommand) Price() int { return c.price }

// Options returns the questionnaire answers behind the quote.
func (c CreateOrderCommand) Options() map[string]string { return c.options }

// Platform returns the channel the order was placed from.
func (c CreateOrderCommand) Platform() string { return c.platform }

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
