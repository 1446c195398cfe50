package postgres_test

import (
	"context"
	"testing"
	"time"

	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/postgres/customerrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/adapters/out/postgres/userrepo"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&customerrepo.CustomerDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ParcelHistoryDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE parcel_histories, parcels, customers, users CASCADE").Error,
	)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel(tn string) *parcel.Parcel {
	trackingNumber, err := parcel.NewTrackingNumber(tn)
	suite.Require().NoError(err)

	details, err := parcel.NewDetails(
		"Acme Warehouse", "1 Depot Road", "Jordan Reyes", "2 Home Street",
		nil, nil, nil, nil,
	)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingNumber, details, parcel.UnknownStatus, nil, nil)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsParcelWithHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	p := suite.createTestParcel("PCL1700000200AAAAA")
	repo := uow.ParcelRepository()
	suite.Require().NoError(repo.Add(ctx, p))

	entry, err := p.ChangeStatus(parcel.InTransit, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Update(ctx, p))
	suite.Require().NoError(repo.AddHistory(ctx, *entry))

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.InTransit, loaded.Status())

	var historyCount int64
	suite.Require().NoError(
		suite.db.Model(&parcelrepo.ParcelHistoryDTO{}).Count(&historyCount).Error,
	)
	suite.Equal(int64(1), historyCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsParcelAndHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	p := suite.createTestParcel("PCL1700000201BBBBB")
	repo := uow.ParcelRepository()
	suite.Require().NoError(repo.Add(ctx, p))

	entry, err := p.ChangeStatus(parcel.Delivered, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Update(ctx, p))
	suite.Require().NoError(repo.AddHistory(ctx, *entry))

	suite.Require().NoError(uow.Rollback(ctx))

	var parcelCount, historyCount int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&parcelCount).Error)
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelHistoryDTO{}).Count(&historyCount).Error)
	suite.Equal(int64(0), parcelCount)
	suite.Equal(int64(0), historyCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsInvalid() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, suite.createTestParcel("PCL1700000202CCCCC")))
	suite.Require().NoError(uow.Commit(ctx))

	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	var parcelCount int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&parcelCount).Error)
	suite.Equal(int64(1), parcelCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesShareTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	p := suite.createTestParcel("PCL1700000203DDDDD")
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))

	// Visible inside the transaction, invisible outside until commit.
	exists, err := uow.ParcelRepository().ExistsTrackingNumber(ctx, p.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(exists)

	var outsideCount int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&outsideCount).Error)
	suite.Equal(int64(0), outsideCount)

	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
