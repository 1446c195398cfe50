package queries_test

import (
	"context"
	"testing"
	"time"

	"parcels/internal/adapters/out/postgres/customerrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/adapters/out/postgres/userrepo"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/customer"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueriesTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	parcelRepo   *parcelrepo.GormParcelRepository
	customerRepo *customerrepo.GormCustomerRepository
	userRepo     *userrepo.GormUserRepository
}

func (suite *QueriesTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&customerrepo.CustomerDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ParcelHistoryDTO{},
	)
	suite.Require().NoError(err)

	tracker := &mockAggregateTracker{}
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, tracker)
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, tracker)
	suite.userRepo = userrepo.NewGormUserRepository(db, tracker)
}

func (suite *QueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcel_histories, parcels, customers, users CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueriesTestSuite) addParcel(tn string, status parcel.Status, courierID, customerID *kernel.UUID) *parcel.Parcel {
	trackingNumber, err := parcel.NewTrackingNumber(tn)
	suite.Require().NoError(err)
	details, err := parcel.NewDetails(
		"Acme Warehouse", "1 Depot Road", "Jordan Reyes", "2 Home Street",
		nil, nil, nil, nil,
	)
	suite.Require().NoError(err)
	p, err := parcel.RestoreParcel(kernel.NewUUID(), trackingNumber, details, status, courierID, customerID)
	suite.Require().NoError(err)
	err = suite.parcelRepo.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func (suite *QueriesTestSuite) addUser(name string, role user.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), name, name+"@example.com", "$2a$10$hashhashhashhashhashha", role)
	suite.Require().NoError(err)
	err = suite.userRepo.Add(context.Background(), u)
	suite.Require().NoError(err)
	return u
}

func (suite *QueriesTestSuite) TestGetParcels_PaginatesNewestFirst() {
	ctx := context.Background()
	first := suite.addParcel("PCL1700000001AAAAA", parcel.Pending, nil, nil)
	second := suite.addParcel("PCL1700000002BBBBB", parcel.InTransit, nil, nil)

	query, err := queries.NewGetParcelsQuery(1)
	suite.Require().NoError(err)

	result, err := queries.NewGetParcelsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total)
	suite.Require().Len(result.Parcels, 2)
	suite.Equal(second.TrackingNumber().String(), result.Parcels[0].TrackingNumber)
	suite.Equal(first.TrackingNumber().String(), result.Parcels[1].TrackingNumber)
	suite.Equal("in_transit", result.Parcels[0].Status)
	suite.Nil(result.Parcels[0].CourierName)
}

func (suite *QueriesTestSuite) TestGetParcels_ResolvesCourierAndCustomerNames() {
	ctx := context.Background()
	courier := suite.addUser("alice", user.Courier)
	cust, err := customer.NewCustomer(kernel.NewUUID(), "Jordan Reyes", "2 Home Street", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(ctx, cust))

	courierID := courier.ID()
	customerID := cust.ID()
	suite.addParcel("PCL1700000003CCCCC", parcel.OutForDelivery, &courierID, &customerID)

	query, err := queries.NewGetParcelsQuery(1)
	suite.Require().NoError(err)

	result, err := queries.NewGetParcelsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Parcels, 1)
	suite.Require().NotNil(result.Parcels[0].CourierName)
	suite.Equal("alice", *result.Parcels[0].CourierName)
	suite.Require().NotNil(result.Parcels[0].CustomerName)
	suite.Equal("Jordan Reyes", *result.Parcels[0].CustomerName)
}

func (suite *QueriesTestSuite) TestGetParcel_ReturnsHistoryNewestFirst() {
	ctx := context.Background()
	p := suite.addParcel("PCL1700000004DDDDD", parcel.Pending, nil, nil)

	entry, err := p.ChangeStatus(parcel.InTransit, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Require().NoError(suite.parcelRepo.Update(ctx, p))
	suite.Require().NoError(suite.parcelRepo.AddHistory(ctx, *entry))

	query, err := queries.NewGetParcelQuery(p.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetParcelQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("in_transit", result.Status)
	suite.Require().Len(result.History, 1)
	suite.Require().NotNil(result.History[0].OldStatus)
	suite.Equal("pending", *result.History[0].OldStatus)
	suite.Equal("in_transit", result.History[0].NewStatus)
}

func (suite *QueriesTestSuite) TestTrackParcel_ReturnsReducedView() {
	ctx := context.Background()
	p := suite.addParcel("PCL1700000005EEEEE", parcel.Delivered, nil, nil)

	query, err := queries.NewTrackParcelQuery(p.TrackingNumber().String())
	suite.Require().NoError(err)

	result, err := queries.NewTrackParcelQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(p.TrackingNumber().String(), result.TrackingNumber)
	suite.Equal("delivered", result.Status)
}

func (suite *QueriesTestSuite) TestTrackParcel_UnknownNumberIsNotFound() {
	query, err := queries.NewTrackParcelQuery("PCL1700000009ZZZZZ")
	suite.Require().NoError(err)

	_, err = queries.NewTrackParcelQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestGetCouriers_FiltersByRole() {
	ctx := context.Background()
	suite.addUser("alice", user.Courier)
	suite.addUser("bob", user.Courier)
	suite.addUser("root", user.Admin)
	suite.addUser("carol", user.Warehouse)

	result, err := queries.NewGetCouriersQueryHandler(suite.db).
		Handle(ctx, queries.NewGetCouriersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("alice", result[0].Name)
	suite.Equal("bob", result[1].Name)
	for _, r := range result {
		suite.Equal("courier", r.Role)
	}
}

func (suite *QueriesTestSuite) TestGetCustomer_IncludesItsParcels() {
	ctx := context.Background()
	cust, err := customer.NewCustomer(kernel.NewUUID(), "Jordan Reyes", "2 Home Street", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(ctx, cust))

	customerID := cust.ID()
	suite.addParcel("PCL1700000006FFFFF", parcel.Pending, nil, &customerID)
	suite.addParcel("PCL1700000007GGGGG", parcel.Pending, nil, nil)

	query, err := queries.NewGetCustomerQuery(cust.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetCustomerQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Jordan Reyes", result.Name)
	suite.Require().Len(result.Parcels, 1)
	suite.Equal("PCL1700000006FFFFF", result.Parcels[0].TrackingNumber)
}

func (suite *QueriesTestSuite) TestCountPendingParcels() {
	ctx := context.Background()
	suite.addParcel("PCL1700000008HHHHH", parcel.Pending, nil, nil)
	suite.addParcel("PCL1700000010JJJJJ", parcel.Delivered, nil, nil)

	count, err := queries.NewCountPendingParcelsQueryHandler(suite.db).
		Handle(ctx, queries.NewCountPendingParcelsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *QueriesTestSuite) TestGetUsers_NeverExposesPasswordHash() {
	ctx := context.Background()
	suite.addUser("alice", user.Courier)

	result, err := queries.NewGetUsersQueryHandler(suite.db).
		Handle(ctx, queries.NewGetUsersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("alice", result[0].Name)
	suite.Equal("alice@example.com", result[0].Email)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
