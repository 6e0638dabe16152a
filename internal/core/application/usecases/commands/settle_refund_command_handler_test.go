package commands_test

import (
	"context"
	"testing"
	"time"

	"buyback/internal/core/application/usecases/commands"
	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/refund"
	"buyback/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefundUoW struct{ mock.Mock }

func (m *MockRefundUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefundUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefundUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefundUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

func (m *MockRefundUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockRefundUoW) NotificationOutbox() ports.NotificationOutbox {
	args := m.Called()
	return args.Get(0).(ports.NotificationOutbox)
}

type MockRefundUoWFactory struct{ mock.Mock }

func (m *MockRefundUoWFactory) Create() commands.RefundUoW {
	args := m.Called()
	return args.Get(0).(commands.RefundUoW)
}

func newPendingRefund(t *testing.T) *refund.Record {
	t.Helper()

	record, err := refund.NewRecord(
		kernel.NewUUID(), "SellMyCell101", "Ravi", "9876543210", 30, "order cancelled: changed mind")
	require.NoError(t, err)
	return record
}

func TestSettleRefundCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	record := newPendingRefund(t)
	cmd, err := commands.NewSettleRefundCommand(record.ID())
	require.NoError(t, err)

	testPartner := newSessionPartner(t, 0, "device-1")

	refundRepo := new(MockRefundRepository)
	partnerRepo := new(MockPartnerRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockRefundUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RefundRepository").Return(refundRepo).Once(),
		refundRepo.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		uow.On("RefundRepository").Return(refundRepo).Once(),
		refundRepo.On("Update", ctx, mock.AnythingOfType("*refund.Record")).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByPhone", ctx, "9876543210").Return(testPartner, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSettleRefundCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, refund.Refunded, record.Status())
	assert.NotNil(t, record.SettledAt())
	assert.Equal(t, 30, testPartner.Wallet().Balance())
	refundRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSettleRefundCommandHandler_Handle_AlreadySettled(t *testing.T) {
	ctx := t.Context()

	settledAt := time.Now().UTC().Add(-time.Hour)
	record, err := refund.RestoreRecord(
		kernel.NewUUID(), "SellMyCell101", "Ravi", "9876543210", 30,
		"order cancelled: changed mind", refund.Refunded, settledAt.Add(-time.Hour), &settledAt)
	require.NoError(t, err)

	cmd, err := commands.NewSettleRefundCommand(record.ID())
	require.NoError(t, err)

	refundRepo := new(MockRefundRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockRefundUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RefundRepository").Return(refundRepo).Once(),
		refundRepo.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSettleRefundCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, refund.ErrAlreadyRefunded)
	partnerRepo.AssertNotCalled(t, "Update")
}

func TestSettleRefundCommandHandler_Handle_ConcurrentSettlementLosesOnUpdate(t *testing.T) {
	ctx := t.Context()
	record := newPendingRefund(t)
	cmd, err := commands.NewSettleRefundCommand(record.ID())
	require.NoError(t, err)

	refundRepo := new(MockRefundRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockRefundUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RefundRepository").Return(refundRepo).Once(),
		refundRepo.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		uow.On("RefundRepository").Return(refundRepo).Once(),
		refundRepo.On("Update", ctx, mock.AnythingOfType("*refund.Record")).
			Return(refund.ErrAlreadyRefunded).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSettleRefundCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, refund.ErrAlreadyRefunded)
	// The wallet is never touched when the record no longer settles.
	partnerRepo.AssertNotCalled(t, "GetByPhone")
}
