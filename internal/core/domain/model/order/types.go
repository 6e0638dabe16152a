package order

import (
	"fmt"
	"regexp"
	"time"
)

// ActorKind identifies the kind of party acting on an order.
// Every state-changing operation records its actor in the order log.
type ActorKind int

const (
	// ActorUnknown catches uninitialized Actor values.
	ActorUnknown ActorKind = iota

	// ActorCustomer is the end customer who placed the order.
	ActorCustomer

	// ActorPartner is a regional partner who claimed the order.
	ActorPartner

	// ActorPickupAgent is a partner's field worker assigned to the order.
	ActorPickupAgent

	// ActorAdmin is a marketplace operator.
	ActorAdmin
)

// String returns the human-readable name of the actor kind as it appears
// in order log messages.
func (k ActorKind) String() string {
	switch k {
	case ActorCustomer:
		return "customer"
	case ActorPartner:
		return "partner"
	case ActorPickupAgent:
		return "pickup person"
	case ActorAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Actor identifies who performs an operation on an order.
// Name and Phone may be empty for administrators.
type Actor struct {
	Kind  ActorKind
	Name  string
	Phone string
}

// describe renders the actor for log messages, e.g. "partner Ravi (9876543210)".
func (a Actor) describe() string {
	switch {
	case a.Name == "" && a.Phone == "":
		return a.Kind.String()
	case a.Name == "":
		return fmt.Sprintf("%s (%s)", a.Kind.String(), a.Phone)
	default:
		return fmt.Sprintf("%s %s (%s)", a.Kind.String(), a.Name, a.Phone)
	}
}

// Customer holds the ordering customer's contact details as captured at
// order creation. Pincode is derived from the free-form address and drives
// partner matching.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Pincode string
}

// Schedule is the agreed pickup slot.
type Schedule struct {
	Date string
	Time string
}

// Product describes the device being bought back. Price is the quoted
// amount in whole rupees; Options carries the questionnaire answers that
// produced the quote.
type Product struct {
	Name    string
	Slug    string
	Image   string
	Price   int
	Options map[string]string
}

// Assignment records which partner claimed the order and, optionally,
// which pickup agent the partner delegated it to. Empty PartnerPhone
// means the order is unclaimed.
type Assignment struct {
	PartnerName  string
	PartnerPhone string
	AgentName    string
	AgentPhone   string
}

// IsClaimed reports whether a partner has claimed the order.
func (a Assignment) IsClaimed() bool {
	return a.PartnerPhone != ""
}

// HasAgent reports whether a pickup agent is assigned.
func (a Assignment) HasAgent() bool {
	return a.AgentPhone != ""
}

// DeviceEvidence is the final condition evidence attached on completion.
type DeviceEvidence struct {
	FinalPrice   int
	IMEINumber   string
	IMEIImage    string
	DeviceBill   string
	IDCard       string
	DeviceImages []string
}

// LogEntry is a single line of the order's append-only audit trail.
// Entries are never edited or removed after being recorded.
type LogEntry struct {
	Message   string
	Timestamp time.Time
}

// pincodeRegexp matches an exactly six-digit run in a free-form address.
var pincodeRegexp = regexp.MustCompile(`\b\d{6}\b`)

// ExtractPincode pulls the delivery pincode out of a free-form address.
// The last six-digit run wins, so house and plot numbers earlier in the
// address do not shadow the pincode. Returns the empty string when the
// address contains no six-digit pincode.
func ExtractPincode(address string) string {
	matches := pincodeRegexp.FindAllString(address, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}
