package coinrange_test

import (
	"testing"

	"buyback/internal/core/domain/model/coinrange"
	"buyback/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end, coins int) *coinrange.Range {
	t.Helper()
	r, err := coinrange.NewRange(kernel.NewUUID(), start, end, coins)
	require.NoError(t, err)
	return r
}

func TestNewRange(t *testing.T) {
	t.Run("should create valid range", func(t *testing.T) {
		r, err := coinrange.NewRange(kernel.NewUUID(), 5000, 15000, 20)

		require.NoError(t, err)
		assert.Equal(t, 5000, r.Start())
		assert.Equal(t, 15000, r.End())
		assert.Equal(t, 20, r.Coins())
	})

	t.Run("should allow single-price range", func(t *testing.T) {
		r, err := coinrange.NewRange(kernel.NewUUID(), 5000, 5000, 10)

		require.NoError(t, err)
		assert.True(t, r.Contains(5000))
	})

	t.Run("should reject negative start", func(t *testing.T) {
		r, err := coinrange.NewRange(kernel.NewUUID(), -1, 100, 10)

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should reject end below start", func(t *testing.T) {
		r, err := coinrange.NewRange(kernel.NewUUID(), 100, 50, 10)

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should reject non-positive coins", func(t *testing.T) {
		r, err := coinrange.NewRange(kernel.NewUUID(), 0, 100, 0)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestRange_Contains(t *testing.T) {
	t.Run("should treat bounds as inclusive", func(t *testing.T) {
		band := mustRange(t, 5000, 15000, 20)

		assert.True(t, band.Contains(5000))
		assert.True(t, band.Contains(10000))
		assert.True(t, band.Contains(15000))
		assert.False(t, band.Contains(4999))
		assert.False(t, band.Contains(15001))
	})
}

func TestTable_CoinsFor(t *testing.T) {
	table := coinrange.NewTable([]*coinrange.Range{
		mustRange(t, 0, 4999, 10),
		mustRange(t, 5000, 14999, 20),
		mustRange(t, 15000, 29999, 30),
	})

	t.Run("should return the reward of the matching band", func(t *testing.T) {
		assert.Equal(t, 10, table.CoinsFor(0))
		assert.Equal(t, 10, table.CoinsFor(4999))
		assert.Equal(t, 20, table.CoinsFor(5000))
		assert.Equal(t, 30, table.CoinsFor(21000))
	})

	t.Run("should return zero for prices outside every band", func(t *testing.T) {
		assert.Equal(t, 0, table.CoinsFor(30000))
		assert.Equal(t, 0, table.CoinsFor(-1))
	})

	t.Run("should return zero for an empty table", func(t *testing.T) {
		empty := coinrange.NewTable(nil)

		assert.Equal(t, 0, empty.CoinsFor(10000))
	})

	t.Run("should use the first matching band on overlap", func(t *testing.T) {
		overlapping := coinrange.NewTable([]*coinrange.Range{
			mustRange(t, 0, 10000, 15),
			mustRange(t, 5000, 15000, 25),
		})

		assert.Equal(t, 15, overlapping.CoinsFor(7000))
	})
}
