package postgres_test

import (
	"context"
	"testing"
	"time"

	"sitebuilder/internal/adapters/out/postgres"
	"sitebuilder/internal/adapters/out/postgres/customerrepo"
	"sitebuilder/internal/adapters/out/postgres/orderrepo"
	"sitebuilder/internal/core/domain/model/customer"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across the
// order and customer repositories against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &customerrepo.CustomerDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, customers").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent while a transaction is open
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// the transaction is gone after commit
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckoutCommitsCustomerAndOrderTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()

	cust, testOrder := suite.newCheckoutPair()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, cust))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount("customers", 1)
	suite.assertCount("orders", 1)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(cust.ID(), retrieved.OwnerID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsBothAggregates() {
	ctx := context.Background()
	uow := suite.factory.Create()

	cust, testOrder := suite.newCheckoutPair()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, cust))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount("customers", 0)
	suite.assertCount("orders", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWorkWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	cust, testOrder := suite.newCheckoutPair()

	// without Begin, operations hit the main connection directly
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, cust))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.assertCount("customers", 1)
	suite.assertCount("orders", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusChangeVisibleAfterCommitOnly() {
	ctx := context.Background()

	cust, testOrder := suite.newCheckoutPair()
	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.CustomerRepository().Add(ctx, cust))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.StatusRequirements, "", time.Now().UTC()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))

	// other connections still see the pending row before commit
	outside, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, outside.Status())

	suite.Require().NoError(uow.Commit(ctx))

	committed, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusRequirements, committed.Status())
	suite.Equal(20, committed.Progress())
}

func (suite *UnitOfWorkIntegrationTestSuite) newCheckoutPair() (*customer.Customer, *order.Order) {
	customerID := kernel.NewUUID()
	cust, err := customer.NewCustomer(customerID, "Jane Doe", "jane@example.com")
	suite.Require().NoError(err)

	reqs, err := order.NewRequirements(
		"Acme Site", "landing page", "home, about", "blue", "",
		order.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID, order.PlanStarter, reqs,
		"pi_test", order.MethodCard, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	return cust, testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
