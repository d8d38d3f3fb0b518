package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sitebuilder/internal/adapters/out/postgres/orderrepo"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.ChangeStatus(order.StatusDesign, "Design kickoff", time.Now().UTC()))
	suite.Require().NoError(testOrder.AddDeliveredFile(
		"homepage.png", "https://files.example.com/homepage.png",
		order.FileTypeDesign, "first mockup", time.Now().UTC(),
	))
	testOrder.SetAdminNotes("priority build", time.Now().UTC())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.OwnerID(), retrieved.OwnerID())
	suite.Equal(order.PlanGrowth, retrieved.Plan())
	suite.True(testOrder.Price().Equal(retrieved.Price()))
	suite.Equal(order.StatusDesign, retrieved.Status())
	suite.Equal(40, retrieved.Progress())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.Equal("pi_test", retrieved.PaymentIntentRef())
	suite.Equal(order.MethodCard, retrieved.PaymentMethod())
	suite.Equal("Acme Site", retrieved.Requirements().WebsiteName())
	suite.Equal("jane@example.com", retrieved.Requirements().ContactInfo().Email)
	suite.Equal("priority build", retrieved.AdminNotes())

	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 3)
	suite.Equal("Order received", timeline[0].Message())
	suite.Equal("Design kickoff", timeline[1].Message())
	suite.Equal(order.StatusDesign, timeline[1].Status())

	files := retrieved.DeliveredFiles()
	suite.Require().Len(files, 1)
	suite.Equal("homepage.png", files[0].Name())
	suite.Equal(order.FileTypeDesign, files[0].FileType())
	suite.Equal("first mockup", files[0].Description())

	suite.WithinDuration(testOrder.EstimatedDeliveryDate(), retrieved.EstimatedDeliveryDate(), time.Second)
	suite.WithinDuration(testOrder.CreatedAt(), retrieved.CreatedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndTimeline() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.StatusDevelopment, "", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusDevelopment, retrieved.Status())
	suite.Equal(60, retrieved.Progress())

	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 2)
	suite.Equal("Development phase started", timeline[1].Message())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearedAdminNotesPersist() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	testOrder.SetAdminNotes("temp note", time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	testOrder.SetAdminNotes("", time.Now().UTC())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.AdminNotes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPastDue_FiltersByPhaseAndDate() {
	ctx := context.Background()

	now := time.Now().UTC()
	overdue := suite.createTestOrder()
	suite.Require().NoError(overdue.ChangeStatus(order.StatusDevelopment, "", now))
	suite.Require().NoError(overdue.SetEstimatedDeliveryDate(now.Add(-48*time.Hour), now))

	stillPending := suite.createTestOrder()
	suite.Require().NoError(stillPending.SetEstimatedDeliveryDate(now.Add(-48*time.Hour), now))

	onTrack := suite.createTestOrder()
	suite.Require().NoError(onTrack.ChangeStatus(order.StatusDesign, "", now))

	finished := suite.createTestOrder()
	suite.Require().NoError(finished.SetEstimatedDeliveryDate(now.Add(-48*time.Hour), now))
	suite.Require().NoError(finished.ChangeStatus(order.StatusCompleted, "", now))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))
	suite.Require().NoError(suite.repository.Add(ctx, stillPending))
	suite.Require().NoError(suite.repository.Add(ctx, onTrack))
	suite.Require().NoError(suite.repository.Add(ctx, finished))

	pastDue, err := suite.repository.GetAllPastDue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(pastDue, 1)
	suite.Equal(overdue.ID(), pastDue[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPastDue_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	onTrack := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", onTrack.ID(), onTrack).Once()
	suite.Require().NoError(suite.repository.Add(ctx, onTrack))

	pastDue, err := suite.repository.GetAllPastDue(ctx, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Empty(pastDue)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	reqs, err := order.NewRequirements(
		"Acme Site", "landing page", "home, about", "blue", "",
		order.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.PlanGrowth, reqs,
		"pi_test", order.MethodCard, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
