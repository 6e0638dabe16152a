package order

import (
	"errors"
	"fmt"
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAlreadyAssigned is returned when a claim is attempted on an order that
	// another partner has already accepted.
	ErrAlreadyAssigned = errors.New("order is already accepted by a partner")

	// ErrAgentAlreadyAssigned is returned when a pickup agent is assigned to an
	// order whose pickup slot is already occupied.
	ErrAgentAlreadyAssigned = errors.New("order is already assigned to a pickup person")

	// ErrActorNotAssigned is returned when a partner or pickup agent attempts an
	// operation on an order they are not assigned to.
	ErrActorNotAssigned = errors.New("actor is not assigned to this order")
)

// Order is the aggregate root for a single device buy-back transaction.
// It owns the lifecycle state machine, the partner assignment and the
// append-only audit log.
//
// Order maintains these invariants:
//   - orderId is assigned once at creation and never changes
//   - coinsOwed is computed once at creation and frozen for the life of the order
//   - status only changes through the transitions defined on Status
//   - every state-changing operation appends exactly one log entry naming
//     the acting party; log entries are never edited or removed
//   - terminal states (cancelled, Completed) admit no further transitions
//
// The aggregate additionally remembers the status and partner phone it was
// loaded with (see BaseStatus/BasePartnerPhone); repositories use that
// snapshot as the compare-and-swap predicate when persisting changes, so a
// concurrent claim or cancellation cannot be silently overwritten.
type Order struct {
	id         kernel.UUID
	orderID    string
	customer   Customer
	schedule   Schedule
	product    Product
	coinsOwed  int
	status     Status
	assignment Assignment
	reason     string
	evidence   *DeviceEvidence
	platform   string

	// logs is most-recent-first; pendingLogs holds entries recorded since
	// the aggregate was loaded, in the order they were recorded.
	logs        []LogEntry
	pendingLogs []LogEntry

	// snapshot taken at load time, used as the optimistic-concurrency predicate
	baseStatus       Status
	basePartnerPhone string

	isConstructed bool
}

// NewOrder creates a new Order in status "new" with no partner assigned.
//
// coinsOwed is the reward the claiming partner will pay, looked up from the
// coin-range table at creation time; it is frozen here and later changes to
// the table never affect this order. The customer pincode is derived from
// the free-form address when not supplied explicitly.
func NewOrder(
	id kernel.UUID,
	orderID string,
	customer Customer,
	schedule Schedule,
	product Product,
	coinsOwed int,
	platform string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if customer.Phone == "" {
		return nil, errs.NewValueIsRequiredError("customer phone")
	}
	if product.Price <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", product.Price))
	}
	if coinsOwed < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("coinsOwed",
			fmt.Errorf("%d is negative", coinsOwed))
	}
	if customer.Pincode == "" {
		customer.Pincode = ExtractPincode(customer.Address)
	}

	o := &Order{
		id:            id,
		orderID:       orderID,
		customer:      customer,
		schedule:      schedule,
		product:       product,
		coinsOwed:     coinsOwed,
		status:        New,
		platform:      platform,
		baseStatus:    New,
		isConstructed: true,
	}
	o.appendLog(fmt.Sprintf("Order created by %s", Actor{Kind: ActorCustomer, Name: customer.Name, Phone: customer.Phone}.describe()))
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The supplied status
// and assignment become the compare-and-swap snapshot for the next update.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	customer Customer,
	schedule Schedule,
	product Product,
	coinsOwed int,
	status Status,
	assignment Assignment,
	reason string,
	evidence *DeviceEvidence,
	platform string,
	logs []LogEntry,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Order{
		id:               id,
		orderID:          orderID,
		customer:         customer,
		schedule:         schedule,
		product:          product,
		coinsOwed:        coinsOwed,
		status:           status,
		assignment:       assignment,
		reason:           reason,
		evidence:         evidence,
		platform:         platform,
		logs:             logs,
		baseStatus:       status,
		basePartnerPhone: assignment.PartnerPhone,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the internal unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderID returns the externally visible, sequence-derived order identifier.
func (o *Order) OrderID() string { return o.orderID }

// Customer returns the ordering customer's details.
func (o *Order) Customer() Customer { return o.customer }

// Schedule returns the current pickup slot.
func (o *Order) Schedule() Schedule { return o.schedule }

// Product returns the quoted device details.
func (o *Order) Product() Product { return o.product }

// CoinsOwed returns the coin reward frozen at creation.
func (o *Order) CoinsOwed() int { return o.coinsOwed }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Assignment returns the current partner/agent assignment.
func (o *Order) Assignment() Assignment { return o.assignment }

// CancellationReason returns the recorded cancellation reason, if any.
func (o *Order) CancellationReason() string { return o.reason }

// Evidence returns the final device-condition evidence, nil before completion.
func (o *Order) Evidence() *DeviceEvidence { return o.evidence }

// Platform returns the channel the order was placed from.
func (o *Order) Platform() string { return o.platform }

// Logs returns the audit trail, most recent first.
func (o *Order) Logs() []LogEntry { return o.logs }

// PendingLogs returns entries recorded since the aggregate was loaded,
// in recording order. Repositories persist exactly these on update.
func (o *Order) PendingLogs() []LogEntry { return o.pendingLogs }

// BaseStatus returns the status the aggregate was loaded with.
func (o *Order) BaseStatus() Status { return o.baseStatus }

// BasePartnerPhone returns the assigned partner phone the aggregate was loaded with.
func (o *Order) BasePartnerPhone() string { return o.basePartnerPhone }

// Accept claims the order for a partner.
//
// Guards:
//   - no other partner may have claimed the order (ErrAlreadyAssigned)
//   - the order must be in status "new"
//
// The wallet debit that pays for the claim is performed by the caller as
// part of the same transactional unit; Accept records the amount in the log.
func (o *Order) Accept(partnerName, partnerPhone string) error {
	if partnerPhone == "" {
		return errs.NewValueIsRequiredError("partner phone")
	}
	if o.assignment.IsClaimed() {
		return ErrAlreadyAssigned
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment.PartnerName = partnerName
	o.assignment.PartnerPhone = partnerPhone
	o.appendLog(fmt.Sprintf("Order accepted by partner %s (%s), %d coins debited",
		partnerName, partnerPhone, o.coinsOwed))
	return nil
}

// AssignAgent delegates a claimed order to one of the partner's pickup agents.
//
// Guards:
//   - the caller must be the currently assigned partner (ErrActorNotAssigned)
//   - the pickup slot must be empty (ErrAgentAlreadyAssigned)
func (o *Order) AssignAgent(callerPhone, agentName, agentPhone string) error {
	if o.assignment.PartnerPhone != callerPhone {
		return ErrActorNotAssigned
	}
	if o.assignment.HasAgent() {
		return ErrAgentAlreadyAssigned
	}
	if agentPhone == "" {
		return errs.NewValueIsRequiredError("agent phone")
	}

	o.assignment.AgentName = agentName
	o.assignment.AgentPhone = agentPhone
	o.appendLog(fmt.Sprintf("Order assigned to pickup person %s (%s)", agentName, agentPhone))
	return nil
}

// DeassignAgent clears the pickup-agent slot. The order stays claimed by
// the partner and remains in its current status.
func (o *Order) DeassignAgent(callerPhone string) error {
	if o.assignment.PartnerPhone != callerPhone {
		return ErrActorNotAssigned
	}
	if !o.assignment.HasAgent() {
		return errs.NewValueIsInvalidErrorWithCause("assignment",
			errors.New("no pickup person is assigned"))
	}

	o.appendLog(fmt.Sprintf("Order deassigned from pickup person %s (%s)",
		o.assignment.AgentName, o.assignment.AgentPhone))
	o.assignment.AgentName = ""
	o.assignment.AgentPhone = ""
	return nil
}

// Deassign reverts a claimed order back to "new", clearing the whole
// assignment. Only administrators may do this. It returns the assignment
// that was cleared so the caller can create the compensating refund record;
// Deassign itself never touches the wallet.
func (o *Order) Deassign(actor Actor) (Assignment, error) {
	if actor.Kind != ActorAdmin {
		return Assignment{}, ErrActorNotAssigned
	}
	if !o.assignment.IsClaimed() {
		return Assignment{}, errs.NewValueIsInvalidErrorWithCause("assignment",
			errors.New("order is not assigned to a partner"))
	}

	newStatus, err := o.status.Deassign()
	if err != nil {
		return Assignment{}, err
	}

	previous := o.assignment
	o.status = newStatus
	o.assignment = Assignment{}
	o.appendLog(fmt.Sprintf("Order deassigned from partner %s (%s) by admin",
		previous.PartnerName, previous.PartnerPhone))
	return previous, nil
}

// Requote replaces the quoted price and options. Only the currently
// assigned partner or pickup agent may requote; the wallet is untouched
// because coinsOwed was frozen at creation.
func (o *Order) Requote(newPrice int, newOptions map[string]string, actor Actor) error {
	if err := o.authorize(actor); err != nil {
		return err
	}
	if newPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", newPrice))
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to requote", o.status.String()))
	}

	o.appendLog(fmt.Sprintf("Order was requoted by %s from previous price %d to current price %d",
		actor.describe(), o.product.Price, newPrice))
	o.product.Price = newPrice
	o.product.Options = newOptions
	return nil
}

// Reschedule replaces the pickup slot and records the before/after schedule.
func (o *Order) Reschedule(newSchedule Schedule, reason string, actor Actor) error {
	if err := o.authorize(actor); err != nil {
		return err
	}

	newStatus, err := o.status.Reschedule()
	if err != nil {
		return err
	}

	o.appendLog(fmt.Sprintf("Order was rescheduled by %s from %s %s to %s %s, reason: %s",
		actor.describe(), o.schedule.Date, o.schedule.Time, newSchedule.Date, newSchedule.Time, reason))
	o.status = newStatus
	o.schedule = newSchedule
	return nil
}

// Cancel moves the order to the terminal cancelled state and records the
// reason. Cancelling an already-cancelled order returns ErrAlreadyCancelled
// without recording anything. Whether a compensating refund is owed is
// decided by the caller from the assignment at the time of cancellation.
func (o *Order) Cancel(reason string, actor Actor) error {
	if err := o.authorize(actor); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = reason
	o.appendLog(fmt.Sprintf("Order was cancelled by %s, reason: %s", actor.describe(), reason))
	return nil
}

// Complete moves the order to the terminal Completed state and attaches the
// final device-condition evidence. Completing an already-completed order
// returns ErrAlreadyCompleted without recording anything.
func (o *Order) Complete(evidence DeviceEvidence, actor Actor) error {
	if err := o.authorize(actor); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.evidence = &evidence
	o.appendLog(fmt.Sprintf("Order was completed by %s", actor.describe()))
	return nil
}

// authorize checks that the acting party may operate on this order.
// Administrators always may; the customer must be the ordering customer;
// partners and pickup agents must hold the matching assignment slot.
func (o *Order) authorize(actor Actor) error {
	switch actor.Kind {
	case ActorAdmin:
		return nil
	case ActorCustomer:
		if actor.Phone != o.customer.Phone {
			return ErrActorNotAssigned
		}
		return nil
	case ActorPartner:
		if actor.Phone == "" || actor.Phone != o.assignment.PartnerPhone {
			return ErrActorNotAssigned
		}
		return nil
	case ActorPickupAgent:
		if actor.Phone == "" || actor.Phone != o.assignment.AgentPhone {
			return ErrActorNotAssigned
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("%d is not a valid actor kind", actor.Kind))
	}
}

// appendLog records a new audit entry. The in-memory view is
// most-recent-first; pendingLogs preserves recording order for persistence.
func (o *Order) appendLog(message string) {
	entry := LogEntry{Message: message, Timestamp: time.Now().UTC()}
	o.logs = append([]LogEntry{entry}, o.logs...)
	o.pendingLogs = append(o.pendingLogs, entry)
}
