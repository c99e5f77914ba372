package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "reporting/internal/adapters/out/postgres"
	"reporting/internal/adapters/out/postgres/schedulerepo"
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&schedulerepo.ScheduleDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE schedules").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ScheduleRepository(), "First instance should provide schedule repository")
	suite.NotNil(uow2.ScheduleRepository(), "Second instance should provide schedule repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Repeated begin must not open a nested transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitPersistsSchedule verifies repository operations
// within a transaction boundary become visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsSchedule() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testSchedule := createTestSchedule(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ScheduleRepository().Add(ctx, testSchedule)
	suite.Require().NoError(err)

	// Visible within the open transaction
	retrieved, err := uow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)
	suite.Equal(testSchedule.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)
	suite.Equal(testSchedule.ID(), retrieved.ID())
	suite.Equal(testSchedule.Title(), retrieved.Title())
}

// TestUnitOfWork_RollbackDiscardsChanges verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testSchedule := createTestSchedule(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ScheduleRepository().Add(ctx, testSchedule)
	suite.Require().NoError(err)

	_, err = uow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().Error(err, "Schedule should not exist after rollback")
}

// TestUnitOfWork_RunWorkflow walks a schedule through a run inside one
// transaction: load, record the watermark, save.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RunWorkflow() {
	ctx := context.Background()

	testSchedule := createTestSchedule(suite.T())

	setupUow := suite.factory.Create()
	err := setupUow.ScheduleRepository().Add(ctx, testSchedule)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.LastRunAt(), "Fresh schedule has no watermark")

	// Truncate to the timestamp precision postgres stores
	completedAt := time.Now().UTC().Truncate(time.Microsecond)
	err = loaded.MarkRun(completedAt)
	suite.Require().NoError(err)

	err = uow.ScheduleRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.LastRunAt())
	suite.WithinDuration(completedAt, *retrieved.LastRunAt(), 0)
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	schedule1 := createTestSchedule(suite.T())
	schedule2 := createTestSchedule(suite.T())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ScheduleRepository().Add(ctx, schedule1)
	suite.Require().NoError(err)

	err = uow2.ScheduleRepository().Add(ctx, schedule2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.ScheduleRepository().Get(ctx, schedule1.ID())
	suite.Require().NoError(err, "UOW1 should see schedule1")

	_, err = uow1.ScheduleRepository().Get(ctx, schedule2.ID())
	suite.Require().Error(err, "UOW1 should not see schedule2")

	_, err = uow2.ScheduleRepository().Get(ctx, schedule2.ID())
	suite.Require().NoError(err, "UOW2 should see schedule2")

	_, err = uow2.ScheduleRepository().Get(ctx, schedule1.ID())
	suite.Require().Error(err, "UOW2 should not see schedule1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ScheduleRepository().Get(ctx, schedule1.ID())
	suite.Require().NoError(err, "Schedule1 should persist after commit")

	_, err = newUow.ScheduleRepository().Get(ctx, schedule2.ID())
	suite.Require().Error(err, "Schedule2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testSchedule := createTestSchedule(suite.T())

	err := uow.ScheduleRepository().Add(ctx, testSchedule)
	suite.Require().NoError(err)

	retrieved, err := uow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)
	suite.Equal(testSchedule.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.ScheduleRepository().Get(ctx, testSchedule.ID())
	suite.Require().NoError(err)
	suite.Equal(testSchedule.ID(), retrieved.ID())
}

// createTestSchedule creates a valid schedule for testing purposes.
func createTestSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()

	timeOfDay, err := kernel.NewTimeOfDay(9, 0)
	if err != nil {
		t.Fatal(err)
	}
	cadence, err := schedule.NewCadence(schedule.Daily, 1, &timeOfDay, nil)
	if err != nil {
		t.Fatal(err)
	}
	delivery, err := schedule.NewDelivery([]string{"ops@example.com"}, "Reports", "noreply@example.com", "", "")
	if err != nil {
		t.Fatal(err)
	}

	aggregate, err := schedule.NewSchedule(
		kernel.NewUUID(), "Daily Signups", cadence, kernel.NewUUID(), []string{"id", "2"}, delivery,
	)
	if err != nil {
		t.Fatal(err)
	}
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
