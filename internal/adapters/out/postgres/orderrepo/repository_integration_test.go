package orderrepo_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"buyback/internal/adapters/out/postgres/orderrepo"
	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies the GORM order repository
// against a real PostgreSQL database, including the conditional update that
// resolves concurrent writes and the append-only order log.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

// noopTracker satisfies the repository's aggregate tracker dependency.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLogDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

// SetupTest ensures clean database state before each test.
func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_logs").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

var orderSeq atomic.Int64

// newBuyBackOrder creates a fresh unclaimed order with a unique external ID.
func newBuyBackOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		fmt.Sprintf("SellMyCell%d", 100+orderSeq.Add(1)),
		order.Customer{
			Name:    "Asha",
			Phone:   "9000000001",
			Address: "12 MG Road, Bengaluru 560001",
		},
		order.Schedule{Date: "2025-07-01", Time: "10:00-12:00"},
		order.Product{Name: "Pixel 7", Slug: "pixel-7", Price: 12000},
		30,
		"web",
	)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	aggregate := newBuyBackOrder(suite.T())

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.OrderID(), restored.OrderID())
	suite.Equal(order.New, restored.Status())
	suite.Equal("560001", restored.Customer().Pincode)
	suite.Equal(30, restored.CoinsOwed())
	suite.False(restored.Assignment().IsClaimed())

	// The creation log entry must survive the roundtrip.
	suite.Require().Len(restored.Logs(), 1)
	suite.Contains(restored.Logs()[0].Message, "Order created")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderID() {
	ctx := context.Background()
	aggregate := newBuyBackOrder(suite.T())

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repo.GetByOrderID(ctx, aggregate.OrderID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetNotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repo.GetByOrderID(ctx, "SellMyCell0")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdatePersistsClaimAndLogs() {
	ctx := context.Background()
	aggregate := newBuyBackOrder(suite.T())

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	err = loaded.Accept("Ravi", "9876543210")
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, restored.Status())
	suite.Equal("9876543210", restored.Assignment().PartnerPhone)

	// Creation entry plus the acceptance entry, newest first.
	suite.Require().Len(restored.Logs(), 2)
	suite.Contains(restored.Logs()[0].Message, "Ravi")
}

// TestUpdateStaleSnapshotFails verifies the compare-and-swap predicate: two
// partners load the same unclaimed order, the first claim commits, and the
// second claim must fail with a version error instead of overwriting.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStaleSnapshotFails() {
	ctx := context.Background()
	aggregate := newBuyBackOrder(suite.T())

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	first, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	err = first.Accept("Ravi", "9876543210")
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, first)
	suite.Require().NoError(err)

	// The second aggregate still believes the order is unclaimed.
	err = second.Accept("Meena", "9123456780")
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("9876543210", restored.Assignment().PartnerPhone)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
