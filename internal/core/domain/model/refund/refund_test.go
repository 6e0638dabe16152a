package refund_test

import (
	"testing"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/refund"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T) *refund.Record {
	t.Helper()
	r, err := refund.NewRecord(kernel.NewUUID(), "SellMyCell101", "Ravi", "9876543210", 30, "order cancelled")
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	t.Run("should create pending record", func(t *testing.T) {
		r := newTestRecord(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, "SellMyCell101", r.OrderID())
		assert.Equal(t, "9876543210", r.PartnerPhone())
		assert.Equal(t, 30, r.Coins())
		assert.Equal(t, refund.Pending, r.Status())
		assert.Nil(t, r.SettledAt())
		assert.False(t, r.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := refund.NewRecord(invalidID, "SellMyCell101", "Ravi", "9876543210", 30, "")

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should fail with empty orderID", func(t *testing.T) {
		r, err := refund.NewRecord(kernel.NewUUID(), "", "Ravi", "9876543210", 30, "")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "orderID")
	})

	t.Run("should fail with empty partner phone", func(t *testing.T) {
		r, err := refund.NewRecord(kernel.NewUUID(), "SellMyCell101", "Ravi", "", 30, "")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "partner phone")
	})

	t.Run("should fail with non-positive coins", func(t *testing.T) {
		r, err := refund.NewRecord(kernel.NewUUID(), "SellMyCell101", "Ravi", "9876543210", 0, "")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("should fail validation for nil record", func(t *testing.T) {
		var r *refund.Record

		assert.Equal(t, refund.ErrRecordIsNotConstructed, r.Validate())
	})

	t.Run("should fail validation for zero value record", func(t *testing.T) {
		var r refund.Record

		assert.Equal(t, refund.ErrRecordIsNotConstructed, r.Validate())
	})
}

func TestRecord_Settle(t *testing.T) {
	t.Run("should settle a pending record", func(t *testing.T) {
		r := newTestRecord(t)

		err := r.Settle()

		require.NoError(t, err)
		assert.Equal(t, refund.Refunded, r.Status())
		require.NotNil(t, r.SettledAt())
	})

	t.Run("should return ErrAlreadyRefunded on repeat settlement", func(t *testing.T) {
		r := newTestRecord(t)
		require.NoError(t, r.Settle())
		firstSettledAt := *r.SettledAt()

		err := r.Settle()

		require.Error(t, err)
		assert.ErrorIs(t, err, refund.ErrAlreadyRefunded)
		assert.Equal(t, firstSettledAt, *r.SettledAt())
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should restore a settled record", func(t *testing.T) {
		original := newTestRecord(t)
		require.NoError(t, original.Settle())

		restored, err := refund.RestoreRecord(original.ID(), original.OrderID(),
			original.PartnerName(), original.PartnerPhone(), original.Coins(),
			original.Reason(), original.Status(), original.CreatedAt(), original.SettledAt())

		require.NoError(t, err)
		assert.Equal(t, refund.Refunded, restored.Status())
		assert.ErrorIs(t, restored.Settle(), refund.ErrAlreadyRefunded)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		original := newTestRecord(t)

		restored, err := refund.RestoreRecord(original.ID(), original.OrderID(),
			original.PartnerName(), original.PartnerPhone(), original.Coins(),
			original.Reason(), refund.Status("cancelled"), original.CreatedAt(), nil)

		require.Error(t, err)
		assert.Nil(t, restored)
	})
}
