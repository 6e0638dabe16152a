package partner

import (
	"errors"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

// ErrPickupAgentIsNotConstructed indicates that the PickupAgent was not
// properly initialized through the NewPickupAgent constructor function.
var ErrPickupAgentIsNotConstructed = errors.New("PickupAgent must be created via NewPickupAgent constructor")

// PickupAgent is a partner's field worker who collects devices on the
// partner's behalf. Agents are entities owned by the Partner aggregate;
// they have no wallet of their own, the owning partner's wallet pays for
// every claim.
type PickupAgent struct {
	id    kernel.UUID
	name  string
	phone string

	// loggedInDevice identifies the device holding the agent's live session;
	// empty when the agent has never logged in.
	loggedInDevice string

	guard guard.ConstructorGuard
}

// NewPickupAgent creates a new pickup agent for a partner.
func NewPickupAgent(id kernel.UUID, name, phone string) (*PickupAgent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	return &PickupAgent{
		id:    id,
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestorePickupAgent reconstructs a PickupAgent from persistent storage.
func RestorePickupAgent(id kernel.UUID, name, phone, loggedInDevice string) (*PickupAgent, error) {
	agent, err := NewPickupAgent(id, name, phone)
	if err != nil {
		return nil, err
	}
	agent.loggedInDevice = loggedInDevice
	return agent, nil
}

// Validate checks if the PickupAgent was properly constructed.
func (a *PickupAgent) Validate() error {
	if a == nil {
		return ErrPickupAgentIsNotConstructed
	}
	return a.guard.Validate(ErrPickupAgentIsNotConstructed)
}

// ID returns the agent's unique identifier.
func (a *PickupAgent) ID() kernel.UUID { return a.id }

// Name returns the agent's name.
func (a *PickupAgent) Name() string { return a.name }

// Phone returns the agent's phone number, which identifies the agent
// across the system.
func (a *PickupAgent) Phone() string { return a.phone }

// LoggedInDevice returns the device holding the agent's live session.
func (a *PickupAgent) LoggedInDevice() string { return a.loggedInDevice }

// Actor returns the agent's identity for order log attribution.
func (a *PickupAgent) Actor() order.Actor {
	return order.Actor{Kind: order.ActorPickupAgent, Name: a.name, Phone: a.phone}
}

// RegisterSession binds the agent's live session to the given device,
// superseding any previous session.
func (a *PickupAgent) RegisterSession(device string) error {
	if device == "" {
		return errs.NewValueIsRequiredError("device")
	}
	a.loggedInDevice = device
	return nil
}

// AuthorizeSession verifies that a request from the given device carries the
// agent's live session. Returns ErrSessionSuperseded when another device has
// logged in since the token was issued.
func (a *PickupAgent) AuthorizeSession(device string) error {
	if a.loggedInDevice != "" && a.loggedInDevice != device {
		return ErrSessionSuperseded
	}
	return nil
}
