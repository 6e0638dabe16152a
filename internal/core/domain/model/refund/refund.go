// Package refund provides the compensation records created when a claimed
// order is cancelled or de-assigned. Each record tracks the coins owed back
// to the partner until an administrator settles it, crediting the wallet.
package refund

import (
	"errors"
	"fmt"
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var (
	// ErrRecordIsNotConstructed is returned when using an improperly
	// initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrAlreadyRefunded is returned when settling a record that was already
	// settled. Callers translate it into an informational result instead of
	// a hard failure, and must not credit the wallet again.
	ErrAlreadyRefunded = errors.New("record is already refunded")
)

// Status is the settlement state of a refund record.
type Status string

const (
	// Pending means the coins have not been returned to the partner yet.
	Pending Status = "pending"

	// Refunded means an administrator settled the record and the wallet
	// was credited.
	Refunded Status = "refunded"
)

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid refund status", string(s)))
	}
	return nil
}

// Record is a single compensation entry owed to a partner.
// Exactly one record is created every time coins were debited for a claim
// and the claim is later undone, whoever undoes it. Settlement is
// idempotent: a record credits the wallet at most once.
type Record struct {
	id           kernel.UUID
	orderID      string
	partnerName  string
	partnerPhone string
	coins        int
	reason       string
	status       Status
	createdAt    time.Time
	settledAt    *time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a pending refund record for the given partner and order.
func NewRecord(id kernel.UUID, orderID, partnerName, partnerPhone string, coins int, reason string) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if partnerPhone == "" {
		return nil, errs.NewValueIsRequiredError("partner phone")
	}
	if coins <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("coins",
			fmt.Errorf("%d is not greater than 0", coins))
	}

	return &Record{
		id:           id,
		orderID:      orderID,
		partnerName:  partnerName,
		partnerPhone: partnerPhone,
		coins:        coins,
		reason:       reason,
		status:       Pending,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a Record from persistent storage.
func RestoreRecord(
	id kernel.UUID,
	orderID, partnerName, partnerPhone string,
	coins int,
	reason string,
	status Status,
	createdAt time.Time,
	settledAt *time.Time,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if coins <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("coins",
			fmt.Errorf("%d is not greater than 0", coins))
	}

	return &Record{
		id:           id,
		orderID:      orderID,
		partnerName:  partnerName,
		partnerPhone: partnerPhone,
		coins:        coins,
		reason:       reason,
		status:       status,
		createdAt:    createdAt,
		settledAt:    settledAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Record was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// OrderID returns the order the debit belonged to.
func (r *Record) OrderID() string { return r.orderID }

// PartnerName returns the owed partner's name.
func (r *Record) PartnerName() string { return r.partnerName }

// PartnerPhone returns the owed partner's phone.
func (r *Record) PartnerPhone() string { return r.partnerPhone }

// Coins returns the amount owed back to the partner.
func (r *Record) Coins() int { return r.coins }

// Reason returns why the claim was undone.
func (r *Record) Reason() string { return r.reason }

// Status returns the settlement state.
func (r *Record) Status() Status { return r.status }

// CreatedAt returns when the record was created.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// SettledAt returns when the record was settled, nil while pending.
func (r *Record) SettledAt() *time.Time { return r.settledAt }

// Settle marks the record refunded. Returns ErrAlreadyRefunded when the
// record was already settled; the caller must not credit the wallet in
// that case.
func (r *Record) Settle() error {
	if r.status == Refunded {
		return ErrAlreadyRefunded
	}

	now := time.Now().UTC()
	r.status = Refunded
	r.settledAt = &now
	return nil
}
