package postgres_test

import (
	"context"
	"testing"
	"time"

	"tripmanager/internal/adapters/out/postgres"
	"tripmanager/internal/adapters/out/postgres/destinationrepo"
	"tripmanager/internal/adapters/out/postgres/orderrepo"
	"tripmanager/internal/adapters/out/postgres/userrepo"
	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/core/domain/model/user"
	"tripmanager/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(postgres.Migrate(db))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, users, destinations").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func (suite *UnitOfWorkIntegrationTestSuite) persistFixtures() (*user.User, *destination.Destination) {
	ownerID := kernel.NewUUID()
	owner, err := user.NewUser(ownerID, "Alice Doe", "alice@example.com", user.Solicitor)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID:           ownerID.Bytes(),
		Name:         owner.Name(),
		Email:        owner.Email(),
		PasswordHash: "irrelevant",
		Role:         owner.Role().String(),
	}).Error)

	destID := kernel.NewUUID()
	dest, err := destination.NewDestination(destID, "Lisbon", "LIS", "Portugal")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&destinationrepo.DestinationDTO{
		ID:       destID.Bytes(),
		City:     dest.City(),
		IataCode: dest.IataCode(),
		Country:  dest.Country(),
	}).Error)

	return owner, dest
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrder() {
	ctx := context.Background()
	owner, dest := suite.persistFixtures()

	testOrder, err := order.NewOrder(kernel.NewUUID(), owner, dest, suite.date(10), suite.date(20))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrder() {
	ctx := context.Background()
	owner, dest := suite.persistFixtures()

	testOrder, err := order.NewOrder(kernel.NewUUID(), owner, dest, suite.date(10), suite.date(20))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReadRepositories_BoundToTransaction() {
	ctx := context.Background()
	owner, dest := suite.persistFixtures()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loadedUser, err := uow.UserRepository().Get(ctx, owner.ID())
	suite.Require().NoError(err)
	suite.True(loadedUser.IsEqual(owner))

	loadedDest, err := uow.DestinationRepository().Get(ctx, dest.ID())
	suite.Require().NoError(err)
	suite.True(loadedDest.IsEqual(dest))

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGet_MissingOrder_SurfacesNotFound() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	err := uow.Commit(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	err := uow.Rollback(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeed_Idempotent() {
	suite.Require().NoError(postgres.Seed(suite.db))
	suite.Require().NoError(postgres.Seed(suite.db))

	var userCount int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&userCount).Error)
	suite.Equal(int64(2), userCount)

	var destCount int64
	suite.Require().NoError(suite.db.Model(&destinationrepo.DestinationDTO{}).Count(&destCount).Error)
	suite.Equal(int64(6), destCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
