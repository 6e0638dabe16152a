package partner

import (
	"errors"
	"fmt"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when using an improperly
	// initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

	// ErrPartnerBlocked is returned when a blocked partner attempts any operation.
	ErrPartnerBlocked = errors.New("partner is blocked")

	// ErrSessionSuperseded is returned when a request carries a session token
	// from a device that is no longer the partner's live session.
	ErrSessionSuperseded = errors.New("session was superseded by a login from another device")

	// ErrAgentNotFound is returned when a referenced pickup agent does not
	// belong to the partner.
	ErrAgentNotFound = errors.New("pickup agent not found")

	// ErrAgentAlreadyExists is returned when adding an agent whose phone is
	// already registered with the partner.
	ErrAgentAlreadyExists = errors.New("pickup agent with this phone already exists")
)

// Claimant is a party allowed to work on claimed orders: the partner who
// claimed them, or one of the partner's pickup agents. Both render
// themselves as an order Actor for audit logging.
type Claimant interface {
	// Actor returns the claimant's identity for order log attribution.
	Actor() order.Actor
}

// Partner represents a regional buy-back partner.
// It is an aggregate root that manages partner identity, the coin wallet,
// pickup agents and the device-bound session.
//
// Key responsibilities:
//   - Managing partner identity (ID, name, phone, service pincodes)
//   - Owning the coin wallet; every claim is paid from it up front
//   - Managing the partner's pickup agents
//   - Enforcing single-device session authority and the blocked state
//
// Business rules:
//   - Partner must have a valid UUID, non-empty name and phone
//   - Wallet balance never goes negative; claims require CoinsOwed coverage
//   - A login from a new device supersedes the previous session
//   - Blocked partners fail every authorization check
type Partner struct {
	id    kernel.UUID
	name  string
	phone string
	email string

	// pincodes are the postal areas the partner serves; orders are matched
	// to partners by the customer's pincode.
	pincodes []string

	status Status

	// loggedInDevice identifies the device holding the partner's live session;
	// empty when the partner has never logged in.
	loggedInDevice string

	wallet *Wallet
	agents []*PickupAgent

	guard guard.ConstructorGuard
}

// NewPartner creates a new active Partner with an empty wallet and no agents.
func NewPartner(id kernel.UUID, name, phone, email string, pincodes []string) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	wallet, err := NewWallet(0)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setPincodes(pincodes),
	); err != nil {
		return nil, err
	}

	p.email = email
	p.status = Active
	p.wallet = wallet
	return p, nil
}

// RestorePartner reconstructs a Partner aggregate from persistent storage,
// including its wallet balance, live session and pickup agents.
func RestorePartner(
	id kernel.UUID,
	name, phone, email string,
	pincodes []string,
	status Status,
	loggedInDevice string,
	balance int,
	agents []*PickupAgent,
) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	wallet, err := NewWallet(balance)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, agent := range agents {
		if err := agent.Validate(); err != nil {
			return nil, err
		}
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setPincodes(pincodes),
	); err != nil {
		return nil, err
	}

	p.email = email
	p.status = status
	p.loggedInDevice = loggedInDevice
	p.wallet = wallet
	p.agents = make([]*PickupAgent, len(agents))
	copy(p.agents, agents)
	return p, nil
}

// IsEqual compares two partners for equality based on their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Partner was properly constructed.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID { return p.id }

// Name returns the partner's name.
func (p *Partner) Name() string { return p.name }

// Phone returns the partner's phone number, which identifies the partner
// across the system.
func (p *Partner) Phone() string { return p.phone }

// Email returns the partner's contact email.
func (p *Partner) Email() string { return p.email }

// Pincodes returns the postal areas the partner serves.
func (p *Partner) Pincodes() []string {
	out := make([]string, len(p.pincodes))
	copy(out, p.pincodes)
	return out
}

// Status returns the partner's account state.
func (p *Partner) Status() Status { return p.status }

// LoggedInDevice returns the device holding the partner's live session.
func (p *Partner) LoggedInDevice() string { return p.loggedInDevice }

// Wallet returns the partner's coin wallet.
func (p *Partner) Wallet() *Wallet { return p.wallet }

// Agents returns the partner's pickup agents.
func (p *Partner) Agents() []*PickupAgent {
	out := make([]*PickupAgent, len(p.agents))
	copy(out, p.agents)
	return out
}

// Actor returns the partner's identity for order log attribution.
func (p *Partner) Actor() order.Actor {
	return order.Actor{Kind: order.ActorPartner, Name: p.name, Phone: p.phone}
}

// ServesPincode reports whether the given pincode is in the partner's
// service area. A partner with no pincodes configured serves none.
func (p *Partner) ServesPincode(pincode string) bool {
	for _, pin := range p.pincodes {
		if pin == pincode {
			return true
		}
	}
	return false
}

// Block disables all partner activity until Unblock.
func (p *Partner) Block() {
	p.status = Blocked
}

// Unblock restores the partner to the active state.
func (p *Partner) Unblock() {
	p.status = Active
}

// RegisterSession binds the partner's live session to the given device,
// superseding any previous session. Blocked partners cannot log in.
func (p *Partner) RegisterSession(device string) error {
	if p.status == Blocked {
		return ErrPartnerBlocked
	}
	if device == "" {
		return errs.NewValueIsRequiredError("device")
	}

	p.loggedInDevice = device
	return nil
}

// AuthorizeSession verifies that a request from the given device carries the
// partner's live session. Returns ErrPartnerBlocked for blocked partners and
// ErrSessionSuperseded when another device has logged in since the token was
// issued.
func (p *Partner) AuthorizeSession(device string) error {
	if p.status == Blocked {
		return ErrPartnerBlocked
	}
	if p.loggedInDevice != "" && p.loggedInDevice != device {
		return ErrSessionSuperseded
	}
	return nil
}

// CanClaim reports whether the partner may claim an order costing coins:
// the partner must be active and the wallet must cover the amount.
func (p *Partner) CanClaim(coins int) bool {
	return p.status == Active && p.wallet.CanCover(coins)
}

// DebitForClaim pays for an order claim from the wallet.
// Returns ErrInsufficientBalance when the balance cannot cover the amount.
func (p *Partner) DebitForClaim(coins int, orderID string) error {
	if p.status == Blocked {
		return ErrPartnerBlocked
	}
	return p.wallet.Debit(coins, orderID, fmt.Sprintf("Debited for order %s", orderID))
}

// CreditRefund returns the coins debited for an order that was cancelled or
// de-assigned after being claimed.
func (p *Partner) CreditRefund(coins int, orderID string) error {
	return p.wallet.Credit(coins, orderID, "", fmt.Sprintf("Refunded for order %s", orderID))
}

// CreditTopUp adds purchased coins to the wallet, tagged with the payment
// gateway reference.
func (p *Partner) CreditTopUp(coins int, paymentID string) error {
	if p.status == Blocked {
		return ErrPartnerBlocked
	}
	return p.wallet.Credit(coins, "", paymentID, fmt.Sprintf("Wallet top-up, payment %s", paymentID))
}

// Adjust applies an administrative balance change: positive coins credit the
// wallet, negative coins debit it. A debit past zero fails with
// ErrInsufficientBalance.
func (p *Partner) Adjust(coins int, message string) error {
	switch {
	case coins > 0:
		return p.wallet.Credit(coins, "", "", message)
	case coins < 0:
		return p.wallet.Debit(-coins, "", message)
	default:
		return errs.NewValueIsInvalidErrorWithCause("coins",
			errors.New("0 is not a valid adjustment"))
	}
}

// AddAgent registers a new pickup agent with the partner.
// Agent phones must be unique within the partner.
func (p *Partner) AddAgent(agent *PickupAgent) error {
	if err := agent.Validate(); err != nil {
		return err
	}
	if _, err := p.AgentByPhone(agent.Phone()); err == nil {
		return ErrAgentAlreadyExists
	}

	p.agents = append(p.agents, agent)
	return nil
}

// RemoveAgent removes the pickup agent with the given phone.
func (p *Partner) RemoveAgent(phone string) error {
	for i, agent := range p.agents {
		if agent.Phone() == phone {
			p.agents = append(p.agents[:i], p.agents[i+1:]...)
			return nil
		}
	}
	return ErrAgentNotFound
}

// AgentByPhone finds the partner's pickup agent with the given phone.
func (p *Partner) AgentByPhone(phone string) (*PickupAgent, error) {
	for _, agent := range p.agents {
		if agent.Phone() == phone {
			return agent, nil
		}
	}
	return nil, ErrAgentNotFound
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Partner) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	p.phone = phone
	return nil
}

func (p *Partner) setPincodes(pincodes []string) error {
	for _, pin := range pincodes {
		if pin == "" {
			return errs.NewValueIsRequiredError("pincode")
		}
	}

	p.pincodes = make([]string, len(pincodes))
	copy(p.pincodes, pincodes)
	return nil
}
