package commands_test

import (
	"testing"

	"buyback/internal/core/application/usecases/commands"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/partner"
	"buyback/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignPartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPartnerCommand("SellMyCell101", "9876543210")
	require.NoError(t, err)

	testOrder := newClaimableOrder(t, 30)
	testPartner := newSessionPartner(t, 50, "device-1")
	otherPartner := newCandidatePartner(t, "Meena", "9876500011")

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockOrderPartnerUoW)

	enqueued := make([]ports.Notification, 0)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByPhone", ctx, "9876543210").Return(testPartner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, "SellMyCell101").Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByPincode", ctx, "560001").
			Return([]*partner.Partner{testPartner, otherPartner}, nil).
			Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", ctx, mock.AnythingOfType("ports.Notification")).
			Run(func(args mock.Arguments) {
				enqueued = append(enqueued, args.Get(1).(ports.Notification))
			}).
			Return(nil).
			Times(3),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Processing, testOrder.Status())
	assert.Equal(t, "9876543210", testOrder.Assignment().PartnerPhone)
	assert.Equal(t, 20, testPartner.Wallet().Balance())

	recipients := recipientsOf(enqueued)
	assert.Contains(t, recipients, "9000000001")
	assert.Contains(t, recipients, "9876543210")
	assert.Contains(t, recipients, "9876500011")

	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignPartnerCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPartnerCommand("SellMyCell101", "9876543210")
	require.NoError(t, err)

	testOrder := newClaimableOrder(t, 30)
	require.NoError(t, testOrder.Accept("Mohan", "9000000099"))
	testPartner := newSessionPartner(t, 50, "device-1")

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockOrderPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByPhone", ctx, "9876543210").Return(testPartner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, "SellMyCell101").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	assert.Equal(t, 50, testPartner.Wallet().Balance())
}

func TestAssignPartnerCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPartnerCommand("SellMyCell101", "9876543210")
	require.NoError(t, err)

	testOrder := newClaimableOrder(t, 30)
	testPartner := newSessionPartner(t, 10, "device-1")

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockOrderPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByPhone", ctx, "9876543210").Return(testPartner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, "SellMyCell101").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignPartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, partner.ErrInsufficientBalance)
	assert.False(t, testOrder.Assignment().IsClaimed())
}

func TestAssignPartnerCommand_Validation(t *testing.T) {
	_, err := commands.NewAssignPartnerCommand("", "9876543210")
	require.Error(t, err)

	_, err = commands.NewAssignPartnerCommand("SellMyCell101", "")
	require.Error(t, err)

	var zero commands.AssignPartnerCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrAssignPartnerCommandIsNotConstructed)
}
