package queries_test

import (
	"testing"

	"buyback/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClaimableOrdersQuery_Validation(t *testing.T) {
	query, err := queries.NewGetClaimableOrdersQuery("9876543210")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "9876543210", query.PartnerPhone())

	_, err = queries.NewGetClaimableOrdersQuery("")
	require.Error(t, err)

	var zero queries.GetClaimableOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetClaimableOrdersQueryIsNotConstructed)
}

func TestGetPartnerOrdersQuery_Validation(t *testing.T) {
	query, err := queries.NewGetPartnerOrdersQuery("9876543210", "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetPartnerOrdersQuery("", "")
	require.Error(t, err)

	var zero queries.GetPartnerOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetPartnerOrdersQueryIsNotConstructed)
}

func TestGetOrderQuery_Validation(t *testing.T) {
	query, err := queries.NewGetOrderQuery("SellMyCell101")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "SellMyCell101", query.OrderID())

	_, err = queries.NewGetOrderQuery("")
	require.Error(t, err)
}

func TestGetWalletStatementQuery_Validation(t *testing.T) {
	for _, filter := range []string{"", "credited", "debited"} {
		query, err := queries.NewGetWalletStatementQuery("9876543210", filter)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	}

	_, err := queries.NewGetWalletStatementQuery("9876543210", "spent")
	require.Error(t, err)

	_, err = queries.NewGetWalletStatementQuery("", "")
	require.Error(t, err)
}

func TestGetRefundsQuery_Validation(t *testing.T) {
	query, err := queries.NewGetRefundsQuery("pending", "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetRefundsQuery("settled", "")
	require.Error(t, err)
}

func TestAuditWalletsQuery_Validation(t *testing.T) {
	query := queries.NewAuditWalletsQuery()
	require.NoError(t, query.Validate())

	var zero queries.AuditWalletsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrAuditWalletsQueryIsNotConstructed)
}
