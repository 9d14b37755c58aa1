package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestDeleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := new(MockDeliveryRepository)
	repo.On("Delete", ctx, "O1").Return(nil).Once()

	handler, err := commands.NewDeleteDeliveryCommandHandler(repo)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteDeliveryCommand("O1")
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := new(MockDeliveryRepository)
	repo.On("Delete", ctx, "missing").
		Return(errs.NewObjectNotFoundError("orderId", "missing")).Once()

	handler, err := commands.NewDeleteDeliveryCommandHandler(repo)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteDeliveryCommand("missing")
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewDeleteDeliveryCommand_RequiresOrderID(t *testing.T) {
	_, err := commands.NewDeleteDeliveryCommand("")
	require.Error(t, err)
}
