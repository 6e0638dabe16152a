package partner

import (
	"errors"
	"fmt"
	"time"

	"buyback/internal/pkg/errs"
	"buyback/internal/pkg/guard"
)

var (
	// ErrInsufficientBalance is returned when a debit would take the wallet
	// balance below zero.
	ErrInsufficientBalance = errors.New("insufficient coin balance")

	// ErrWalletIsNotConstructed indicates that the Wallet was not properly
	// initialized through the NewWallet constructor function.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet constructor")
)

// TransactionType tells whether a transaction added or removed coins.
type TransactionType string

const (
	// Credited marks coins added to the wallet (top-up, refund, admin adjustment).
	Credited TransactionType = "credited"

	// Debited marks coins removed from the wallet (order claim, admin adjustment).
	Debited TransactionType = "debited"
)

// Validate checks if the TransactionType value is valid.
func (t TransactionType) Validate() error {
	if t != Credited && t != Debited {
		return errs.NewValueIsInvalidErrorWithCause("transaction type",
			fmt.Errorf("%q is not a valid transaction type", string(t)))
	}
	return nil
}

// Transaction is a single line of the wallet's append-only statement.
// OrderID is set for order-driven entries, PaymentID for gateway top-ups;
// both are empty for administrative adjustments.
type Transaction struct {
	Type      TransactionType
	Coins     int
	OrderID   string
	PaymentID string
	Message   string
	Timestamp time.Time
}

// SignedCoins returns the transaction amount with its ledger sign:
// positive for credits, negative for debits. The sum of signed amounts
// over a wallet's full statement must equal its balance.
func (t Transaction) SignedCoins() int {
	if t.Type == Debited {
		return -t.Coins
	}
	return t.Coins
}

// Wallet is the partner's coin account. It is an entity owned by the
// Partner aggregate and is only ever modified through it.
//
// Invariants:
//   - the balance is a whole-coin integer and never goes negative
//   - every balance change records exactly one transaction
//   - transactions are never edited or removed once recorded
type Wallet struct {
	balance int

	// pending holds transactions recorded since the aggregate was loaded,
	// in recording order. Repositories persist exactly these on update.
	pending []Transaction

	guard guard.ConstructorGuard
}

// NewWallet creates a wallet with the given starting balance.
func NewWallet(balance int) (*Wallet, error) {
	if balance < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("balance",
			fmt.Errorf("%d is negative", balance))
	}
	return &Wallet{
		balance: balance,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Wallet was properly constructed.
func (w *Wallet) Validate() error {
	if w == nil {
		return ErrWalletIsNotConstructed
	}
	return w.guard.Validate(ErrWalletIsNotConstructed)
}

// Balance returns the current coin balance.
func (w *Wallet) Balance() int {
	return w.balance
}

// CanCover reports whether the balance is sufficient for a debit of coins.
func (w *Wallet) CanCover(coins int) bool {
	return w.balance >= coins
}

// PendingTransactions returns transactions recorded since the aggregate
// was loaded, in recording order.
func (w *Wallet) PendingTransactions() []Transaction {
	out := make([]Transaction, len(w.pending))
	copy(out, w.pending)
	return out
}

// Credit adds coins to the wallet and records a credited transaction.
func (w *Wallet) Credit(coins int, orderID, paymentID, message string) error {
	if coins <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("coins",
			fmt.Errorf("%d is not greater than 0", coins))
	}

	w.balance += coins
	w.record(Transaction{
		Type:      Credited,
		Coins:     coins,
		OrderID:   orderID,
		PaymentID: paymentID,
		Message:   message,
	})
	return nil
}

// Debit removes coins from the wallet and records a debited transaction.
// Returns ErrInsufficientBalance when the balance cannot cover the amount;
// the wallet is left unchanged in that case.
func (w *Wallet) Debit(coins int, orderID, message string) error {
	if coins <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("coins",
			fmt.Errorf("%d is not greater than 0", coins))
	}
	if !w.CanCover(coins) {
		return ErrInsufficientBalance
	}

	w.balance -= coins
	w.record(Transaction{
		Type:    Debited,
		Coins:   coins,
		OrderID: orderID,
		Message: message,
	})
	return nil
}

func (w *Wallet) record(tx Transaction) {
	tx.Timestamp = time.Now().UTC()
	w.pending = append(w.pending, tx)
}
