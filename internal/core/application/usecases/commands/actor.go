package commands

import (
	"context"
	"fmt"

	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/partner"
	"buyback/internal/core/ports"
	"buyback/internal/pkg/errs"
)

// ActorRole identifies the kind of authenticated party issuing a command.
// Roles arrive with the session token; phone and device identify the
// concrete party and its live session.
type ActorRole string

const (
	RoleCustomer    ActorRole = "customer"
	RolePartner     ActorRole = "partner"
	RolePickupAgent ActorRole = "pickup"
	RoleAdmin       ActorRole = "admin"
)

// Validate checks if the ActorRole value is valid.
func (r ActorRole) Validate() error {
	switch r {
	case RoleCustomer, RolePartner, RolePickupAgent, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// resolveActor loads the acting party and verifies its device-bound session.
// Partners and pickup agents are looked up by phone and their live session
// checked against the request's device; customers and administrators carry
// no session record of their own.
func resolveActor(
	ctx context.Context,
	partners ports.PartnerRepository,
	role ActorRole,
	phone, device string,
) (order.Actor, error) {
	switch role {
	case RoleAdmin:
		return order.Actor{Kind: order.ActorAdmin}, nil

	case RoleCustomer:
		return order.Actor{Kind: order.ActorCustomer, Phone: phone}, nil

	case RolePartner:
		p, err := partners.GetByPhone(ctx, phone)
		if err != nil {
			return order.Actor{}, err
		}
		if err := p.AuthorizeSession(device); err != nil {
			return order.Actor{}, err
		}
		return p.Actor(), nil

	case RolePickupAgent:
		p, err := partners.GetByAgentPhone(ctx, phone)
		if err != nil {
			return order.Actor{}, err
		}
		// Agents act on behalf of their partner; a blocked partner takes
		// the whole crew offline.
		if p.Status() == partner.Blocked {
			return order.Actor{}, partner.ErrPartnerBlocked
		}
		agent, err := p.AgentByPhone(phone)
		if err != nil {
			return order.Actor{}, err
		}
		if err := agent.AuthorizeSession(device); err != nil {
			return order.Actor{}, err
		}
		return agent.Actor(), nil

	default:
		return order.Actor{}, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(role)))
	}
}
