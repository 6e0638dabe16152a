package partner_test

import (
	"testing"

	"buyback/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	t.Run("should create wallet with non-negative balance", func(t *testing.T) {
		w, err := partner.NewWallet(50)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, 50, w.Balance())
		assert.Empty(t, w.PendingTransactions())
	})

	t.Run("should allow zero balance", func(t *testing.T) {
		w, err := partner.NewWallet(0)

		require.NoError(t, err)
		assert.Equal(t, 0, w.Balance())
	})

	t.Run("should reject negative balance", func(t *testing.T) {
		w, err := partner.NewWallet(-1)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestWallet_Validate(t *testing.T) {
	t.Run("should fail validation for nil wallet", func(t *testing.T) {
		var w *partner.Wallet

		assert.Equal(t, partner.ErrWalletIsNotConstructed, w.Validate())
	})

	t.Run("should fail validation for zero value wallet", func(t *testing.T) {
		var w partner.Wallet

		assert.Equal(t, partner.ErrWalletIsNotConstructed, w.Validate())
	})
}

func TestWallet_Credit(t *testing.T) {
	t.Run("should add coins and record a credited transaction", func(t *testing.T) {
		w, _ := partner.NewWallet(10)

		err := w.Credit(40, "", "pay_123", "Wallet top-up, payment pay_123")

		require.NoError(t, err)
		assert.Equal(t, 50, w.Balance())

		txs := w.PendingTransactions()
		require.Len(t, txs, 1)
		assert.Equal(t, partner.Credited, txs[0].Type)
		assert.Equal(t, 40, txs[0].Coins)
		assert.Equal(t, "pay_123", txs[0].PaymentID)
		assert.Equal(t, 40, txs[0].SignedCoins())
		assert.False(t, txs[0].Timestamp.IsZero())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		w, _ := partner.NewWallet(10)

		require.Error(t, w.Credit(0, "", "", "noop"))
		require.Error(t, w.Credit(-5, "", "", "noop"))
		assert.Equal(t, 10, w.Balance())
		assert.Empty(t, w.PendingTransactions())
	})
}

func TestWallet_Debit(t *testing.T) {
	t.Run("should remove coins and record a debited transaction", func(t *testing.T) {
		w, _ := partner.NewWallet(50)

		err := w.Debit(30, "SellMyCell101", "Debited for order SellMyCell101")

		require.NoError(t, err)
		assert.Equal(t, 20, w.Balance())

		txs := w.PendingTransactions()
		require.Len(t, txs, 1)
		assert.Equal(t, partner.Debited, txs[0].Type)
		assert.Equal(t, 30, txs[0].Coins)
		assert.Equal(t, "SellMyCell101", txs[0].OrderID)
		assert.Equal(t, -30, txs[0].SignedCoins())
	})

	t.Run("should allow debiting the full balance", func(t *testing.T) {
		w, _ := partner.NewWallet(30)

		require.NoError(t, w.Debit(30, "SellMyCell101", "full"))
		assert.Equal(t, 0, w.Balance())
	})

	t.Run("should return ErrInsufficientBalance and leave wallet unchanged", func(t *testing.T) {
		w, _ := partner.NewWallet(20)

		err := w.Debit(30, "SellMyCell101", "too much")

		require.Error(t, err)
		assert.ErrorIs(t, err, partner.ErrInsufficientBalance)
		assert.Equal(t, 20, w.Balance())
		assert.Empty(t, w.PendingTransactions())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		w, _ := partner.NewWallet(20)

		require.Error(t, w.Debit(0, "", "noop"))
		assert.Equal(t, 20, w.Balance())
	})
}

func TestWallet_Statement(t *testing.T) {
	t.Run("should keep pending transactions in recording order", func(t *testing.T) {
		w, _ := partner.NewWallet(0)

		require.NoError(t, w.Credit(100, "", "pay_1", "top-up"))
		require.NoError(t, w.Debit(30, "SellMyCell101", "claim"))
		require.NoError(t, w.Credit(30, "SellMyCell101", "", "refund"))

		txs := w.PendingTransactions()
		require.Len(t, txs, 3)
		assert.Equal(t, partner.Credited, txs[0].Type)
		assert.Equal(t, partner.Debited, txs[1].Type)
		assert.Equal(t, partner.Credited, txs[2].Type)
	})

	t.Run("signed sum of transactions should equal the balance delta", func(t *testing.T) {
		w, _ := partner.NewWallet(0)

		require.NoError(t, w.Credit(100, "", "pay_1", "top-up"))
		require.NoError(t, w.Debit(30, "SellMyCell101", "claim"))
		require.NoError(t, w.Credit(30, "SellMyCell101", "", "refund"))

		sum := 0
		for _, tx := range w.PendingTransactions() {
			sum += tx.SignedCoins()
		}
		assert.Equal(t, w.Balance(), sum)
	})
}

func TestTransactionType_Validate(t *testing.T) {
	t.Run("should validate known types", func(t *testing.T) {
		require.NoError(t, partner.Credited.Validate())
		require.NoError(t, partner.Debited.Validate())
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		err := partner.TransactionType("refunded").Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid transaction type")
	})
}
