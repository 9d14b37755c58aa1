package deliveryrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DeliveryRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *deliveryrepo.GormDeliveryRepository
}

func (suite *DeliveryRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.repo = deliveryrepo.NewGormDeliveryRepository(db)
}

func (suite *DeliveryRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *DeliveryRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)
}

func (suite *DeliveryRepositoryTestSuite) newDelivery(orderID string, createdAt time.Time) *delivery.Delivery {
	addr, err := kernel.NewAddress("12 Galle Rd", "Colombo", "Western", "00300")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		orderID, "U1", "Alice", "+94111234567", "R1",
		addr,
		[]string{"Burger x2", "Fries x1"},
		21.50,
		createdAt,
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	d := suite.newDelivery("O1", time.Date(2025, 6, 1, 14, 30, 15, 0, time.UTC))

	err := suite.repo.Add(ctx, d)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, "O1")
	suite.Require().NoError(err)

	suite.Equal("O1", loaded.OrderID())
	suite.Equal("U1", loaded.UserID())
	suite.Equal("Alice", loaded.UserName())
	suite.Equal("12 Galle Rd, Colombo, Western, 00300", loaded.DeliveryAddress())
	suite.Equal([]string{"Burger x2", "Fries x1"}, loaded.OrderItems())
	suite.InDelta(21.50, loaded.Price(), 0.001)
	suite.Equal("2025-06-01", loaded.OrderDate())
	suite.Equal("14:30:15", loaded.OrderTime())
	suite.Equal(delivery.Unassigned, loaded.Status())
	suite.Empty(loaded.DriverID())
}

func (suite *DeliveryRepositoryTestSuite) TestAdd_DuplicateOrderID() {
	ctx := context.Background()
	first := suite.newDelivery("O1", time.Now().UTC())
	second := suite.newDelivery("O1", time.Now().UTC())

	err := suite.repo.Add(ctx, first)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrDuplicateOrder)

	// first write wins
	loaded, err := suite.repo.Get(ctx, "O1")
	suite.Require().NoError(err)
	suite.Equal(delivery.Unassigned, loaded.Status())
}

func (suite *DeliveryRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), "missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryTestSuite) TestUpdate_OverwritesFullState() {
	ctx := context.Background()
	d := suite.newDelivery("O1", time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, d))

	suite.Require().NoError(d.Assign("D1", "Bob", "+94770000000"))
	suite.Require().NoError(d.MarkDelivered("left at door", "thanks"))

	err := suite.repo.Update(ctx, d)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, "O1")
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, loaded.Status())
	suite.Equal("D1", loaded.DriverID())
	suite.Equal("left at door", loaded.DriverRemark())
	suite.Equal("thanks", loaded.UserRemark())
}

func (suite *DeliveryRepositoryTestSuite) TestUpdate_NotFound() {
	d := suite.newDelivery("O404", time.Now().UTC())

	err := suite.repo.Update(context.Background(), d)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryTestSuite) TestAssign_Success() {
	ctx := context.Background()
	d := suite.newDelivery("O1", time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, d))

	suite.Require().NoError(d.Assign("D1", "Bob", "+94770000000"))
	err := suite.repo.Assign(ctx, d)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, "O1")
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, loaded.Status())
	suite.Equal("D1", loaded.DriverID())
	suite.Equal("Bob", loaded.DriverName())
}

func (suite *DeliveryRepositoryTestSuite) TestAssign_AlreadyAssigned() {
	ctx := context.Background()
	d := suite.newDelivery("O1", time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, d))

	winner := suite.newDelivery("O1", d.CreatedAt())
	suite.Require().NoError(winner.Assign("D1", "Bob", "+94770000000"))
	suite.Require().NoError(suite.repo.Assign(ctx, winner))

	loser := suite.newDelivery("O1", d.CreatedAt())
	suite.Require().NoError(loser.Assign("D2", "Carol", "+94771111111"))
	err := suite.repo.Assign(ctx, loser)
	suite.Require().ErrorIs(err, ports.ErrAlreadyAssigned)

	loaded, err := suite.repo.Get(ctx, "O1")
	suite.Require().NoError(err)
	suite.Equal("D1", loaded.DriverID())
}

func (suite *DeliveryRepositoryTestSuite) TestAssign_ConcurrentRace_ExactlyOneWinner() {
	ctx := context.Background()
	d := suite.newDelivery("O1", time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, d))

	const racers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, racers)

	for i := range racers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			attempt := suite.newDelivery("O1", d.CreatedAt())
			if err := attempt.Assign(
				"D"+string(rune('0'+n)), "Racer", "+94770000000",
			); err != nil {
				errCh <- err
				return
			}
			errCh <- suite.repo.Assign(ctx, attempt)
		}(i)
	}

	wg.Wait()
	close(errCh)

	winners := 0
	for err := range errCh {
		if err == nil {
			winners++
		} else {
			suite.Require().ErrorIs(err, ports.ErrAlreadyAssigned)
		}
	}
	suite.Equal(1, winners)
}

func (suite *DeliveryRepositoryTestSuite) TestGetAllUnassigned_OldestFirst() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	newest := suite.newDelivery("O3", base.Add(2*time.Hour))
	oldest := suite.newDelivery("O1", base)
	middle := suite.newDelivery("O2", base.Add(time.Hour))
	assigned := suite.newDelivery("O4", base.Add(-time.Hour))
	suite.Require().NoError(assigned.Assign("D1", "Bob", "+94770000000"))

	for _, d := range []*delivery.Delivery{newest, oldest, middle, assigned} {
		suite.Require().NoError(suite.repo.Add(ctx, d))
	}

	backlog, err := suite.repo.GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 3)
	suite.Equal("O1", backlog[0].OrderID())
	suite.Equal("O2", backlog[1].OrderID())
	suite.Equal("O3", backlog[2].OrderID())
}

func (suite *DeliveryRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	d := suite.newDelivery("O1", time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, d))

	err := suite.repo.Delete(ctx, "O1")
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, "O1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repo.Delete(ctx, "O1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDeliveryRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DeliveryRepositoryTestSuite))
}
