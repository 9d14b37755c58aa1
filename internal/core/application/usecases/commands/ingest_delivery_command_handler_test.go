package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIngestCommand(t *testing.T, orderID string) commands.IngestDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewIngestDeliveryCommand(
		orderID, "U1", "Alice", "+94111234567", "R1",
		testAddress(t),
		[]commands.OrderLine{{Name: "Burger", Quantity: 2}, {Name: "Fries", Quantity: 1}},
		21.50,
	)
	require.NoError(t, err)
	return cmd
}

func TestIngestDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newIngestCommand(t, "O1")

	repo := new(MockDeliveryRepository)
	var stored *delivery.Delivery
	repo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*delivery.Delivery)
		}).
		Return(nil).Once()

	handler, err := commands.NewIngestDeliveryCommandHandler(repo)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	repo.AssertExpectations(t)

	require.NotNil(t, stored)
	assert.Equal(t, "O1", stored.OrderID())
	assert.Equal(t, "U1", stored.UserID())
	assert.Equal(t, "12 Galle Rd, Colombo, Western, 00300", stored.DeliveryAddress())
	assert.Equal(t, []string{"Burger x2", "Fries x1"}, stored.OrderItems())
	assert.InDelta(t, 21.50, stored.Price(), 0.001)
	assert.False(t, stored.IsAssigned())
	assert.NotEmpty(t, stored.OrderDate())
	assert.NotEmpty(t, stored.OrderTime())
}

func TestIngestDeliveryCommandHandler_Handle_DuplicateOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newIngestCommand(t, "O1")

	repo := new(MockDeliveryRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).
		Return(ports.ErrDuplicateOrder).Once()

	handler, err := commands.NewIngestDeliveryCommandHandler(repo)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, ports.ErrDuplicateOrder)
	repo.AssertExpectations(t)
}

func TestIngestDeliveryCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	// Arrange
	repo := new(MockDeliveryRepository)
	handler, err := commands.NewIngestDeliveryCommandHandler(repo)
	require.NoError(t, err)

	var cmd commands.IngestDeliveryCommand

	// Act
	err = handler.Handle(t.Context(), cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrIngestDeliveryCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewIngestDeliveryCommandHandler_NilRepository(t *testing.T) {
	_, err := commands.NewIngestDeliveryCommandHandler(nil)
	require.Error(t, err)
}
