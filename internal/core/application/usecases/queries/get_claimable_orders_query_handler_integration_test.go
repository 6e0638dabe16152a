package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"buyback/internal/adapters/out/postgres/orderrepo"
	"buyback/internal/adapters/out/postgres/partnerrepo"
	"buyback/internal/core/application/usecases/queries"
	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/partner"
	"buyback/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker dependency.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetClaimableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetClaimableOrdersQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	partnerRepo *partnerrepo.GormPartnerRepository
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLogDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.PickupAgentDTO{},
		&partnerrepo.WalletTransactionDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetClaimableOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.partnerRepo = partnerrepo.NewGormPartnerRepository(db, noopTracker{})
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) SetupTest() {
	for _, table := range []string{"orders", "order_logs", "partners", "pickup_agents", "wallet_transactions"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table).Error
		suite.Require().NoError(err)
	}
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) addPartner(name, phone string, pincodes []string) {
	p, err := partner.NewPartner(kernel.NewUUID(), name, phone, name+"@example.com", pincodes)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.partnerRepo.Add(context.Background(), p))
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) addOrder(orderID, pincode string) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		orderID,
		order.Customer{
			Name:    "Asha",
			Phone:   "9000000001",
			Address: fmt.Sprintf("12 MG Road, Bengaluru %s", pincode),
		},
		order.Schedule{Date: "2025-07-01", Time: "10:00-12:00"},
		order.Product{Name: "Pixel 7", Slug: "pixel-7", Price: 12000},
		30,
		"web",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestFeedScopedToStoredPincodes() {
	ctx := context.Background()

	suite.addPartner("Ravi", "9876543210", []string{"560001"})
	suite.addPartner("Meena", "9876500011", []string{"110001"})

	suite.addOrder("SellMyCell201", "560001")
	suite.addOrder("SellMyCell202", "110001")

	query, err := queries.NewGetClaimableOrdersQuery("9876543210")
	suite.Require().NoError(err)

	feed, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.Equal("SellMyCell201", feed[0].OrderID)
	suite.Equal("560001", feed[0].Pincode)

	// The other partner sees only its own region.
	query, err = queries.NewGetClaimableOrdersQuery("9876500011")
	suite.Require().NoError(err)

	feed, err = suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.Equal("SellMyCell202", feed[0].OrderID)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestClaimedOrdersLeaveTheFeed() {
	ctx := context.Background()

	suite.addPartner("Ravi", "9876543210", []string{"560001"})

	o := suite.addOrder("SellMyCell203", "560001")
	suite.Require().NoError(o.Accept("Ravi", "9876543210"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, err := queries.NewGetClaimableOrdersQuery("9876543210")
	suite.Require().NoError(err)

	feed, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(feed)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestUnknownPartnerNotFound() {
	query, err := queries.NewGetClaimableOrdersQuery("9999999999")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetClaimableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetClaimableOrdersQueryHandlerTestSuite))
}
