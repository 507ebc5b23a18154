package postgres_test

import (
	"context"
	"testing"
	"time"

	"deliveryhub/internal/adapters/out/postgres"
	"deliveryhub/internal/adapters/out/postgres/courierrepo"
	"deliveryhub/internal/adapters/out/postgres/customerrepo"
	"deliveryhub/internal/adapters/out/postgres/deliveryrepo"
	"deliveryhub/internal/adapters/out/postgres/storerepo"
	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// repositories handed out by one unit of work.
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

	suite.Require().NoError(db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierDTO{},
		&customerrepo.CustomerDTO{},
		&storerepo.StoreDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, couriers, customers, stores").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testDelivery := suite.createTestDelivery()
	testCourier := suite.createTestCourier("joao@example.com", "11122233344")

	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	retrievedDelivery, err := reader.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(testDelivery.ID(), retrievedDelivery.ID())

	retrievedCourier, err := reader.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(testCourier.ID(), retrievedCourier.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	acc, err := account.NewAccount("Ana", "ana@example.com", "", "hash")
	suite.Require().NoError(err)
	testCustomer, err := customer.NewCustomer(kernel.NewUUID(), acc)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&customerrepo.CustomerDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsInvalidTransaction() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsInvalidTransaction() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_WriteImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	acc, err := account.NewAccount("Padaria Central", "padaria@example.com", "", "hash")
	suite.Require().NoError(err)
	testStore, err := store.NewStore(kernel.NewUUID(), acc, "Rua do Forno 12")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.StoreRepository().Add(ctx, testStore))

	var count int64
	suite.Require().NoError(suite.db.Model(&storerepo.StoreDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Origin St 1", "Destination Ave 2", "Groceries",
		decimal.NewFromFloat(9.90), decimal.Zero,
		nil,
		"",
	)
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCourier(email, document string) *courier.Courier {
	acc, err := account.NewAccount("Test Courier", email, "", "hash")
	suite.Require().NoError(err)

	c, err := courier.NewCourier(kernel.NewUUID(), acc, document, "")
	suite.Require().NoError(err)
	return c
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
