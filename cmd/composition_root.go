package cmd

import (
	"log/slog"

	"buyback/internal/adapters/out/postgres"
	"buyback/internal/adapters/out/postgres/coinrepo"
	"buyback/internal/adapters/out/postgres/counterrepo"
	"buyback/internal/adapters/out/postgres/outboxrepo"
	"buyback/internal/adapters/out/push"
	"buyback/internal/core/application/usecases/commands"
	"buyback/internal/core/application/usecases/queries"
	"buyback/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each handler gets
// a unit of work factory scoped to the aggregates it touches.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pusher     ports.NotificationPusher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	pusher, err := push.NewHTTPNotificationPusher(config.PushGatewayURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pusher:     pusher,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		counterrepo.NewGormSequenceGenerator(c.gormDB),
		coinrepo.NewGormCoinRangeRepository(c.gormDB),
		c.config.OrderIDPrefix,
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateDeassignAgentCommandHandler() commands.DeassignAgentCommandHandler {
	return commands.NewDeassignAgentCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateDeassignPartnerCommandHandler() commands.DeassignPartnerCommandHandler {
	return commands.NewDeassignPartnerCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRequoteOrderCommandHandler() commands.RequoteOrderCommandHandler {
	return commands.NewRequoteOrderCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateRescheduleOrderCommandHandler() commands.RescheduleOrderCommandHandler {
	return commands.NewRescheduleOrderCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderPartnerUoWFactory())
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	return commands.NewCreatePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateAddPickupAgentCommandHandler() commands.AddPickupAgentCommandHandler {
	return commands.NewAddPickupAgentCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateRemovePickupAgentCommandHandler() commands.RemovePickupAgentCommandHandler {
	return commands.NewRemovePickupAgentCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateRegisterSessionCommandHandler() commands.RegisterSessionCommandHandler {
	return commands.NewRegisterSessionCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateSetPartnerStatusCommandHandler() commands.SetPartnerStatusCommandHandler {
	return commands.NewSetPartnerStatusCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateTopUpWalletCommandHandler() commands.TopUpWalletCommandHandler {
	return commands.NewTopUpWalletCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateAdjustWalletCommandHandler() commands.AdjustWalletCommandHandler {
	return commands.NewAdjustWalletCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateSettleRefundCommandHandler() commands.SettleRefundCommandHandler {
	var f commands.RefundUoWFactory = FuncRefundUoWFactory(func() commands.RefundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleRefundCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCoinRangeCommandHandler() commands.AddCoinRangeCommandHandler {
	return commands.NewAddCoinRangeCommandHandler(coinrepo.NewGormCoinRangeRepository(c.gormDB))
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	// The dispatch job reads and marks outside any business transaction.
	return commands.NewDispatchNotificationsCommandHandler(
		outboxrepo.NewGormNotificationOutbox(c.gormDB),
		c.pusher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClaimableOrdersQueryHandler() queries.GetClaimableOrdersQueryHandler {
	return queries.NewGetClaimableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerOrdersQueryHandler() queries.GetPartnerOrdersQueryHandler {
	return queries.NewGetPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletStatementQueryHandler() queries.GetWalletStatementQueryHandler {
	return queries.NewGetWalletStatementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRefundsQueryHandler() queries.GetRefundsQueryHandler {
	return queries.NewGetRefundsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditWalletsQueryHandler() queries.AuditWalletsQueryHandler {
	return queries.NewAuditWalletsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderPartnerUoWFactory() commands.OrderPartnerUoWFactory {
	return FuncOrderPartnerUoWFactory(func() commands.OrderPartnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncOrderPartnerUoWFactory func() commands.OrderPartnerUoW

func (f FuncOrderPartnerUoWFactory) Create() commands.OrderPartnerUoW {
	return f()
}

type FuncRefundUoWFactory func() commands.RefundUoW

func (f FuncRefundUoWFactory) Create() commands.RefundUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
