package delivery_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(delivery.Unknown))
		assert.Equal(t, 1, int(delivery.Unassigned))
		assert.Equal(t, 2, int(delivery.Assigned))
		assert.Equal(t, 3, int(delivery.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []delivery.Status{
			delivery.Unassigned,
			delivery.Assigned,
			delivery.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := delivery.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.Status(-1), delivery.Status(4), delivery.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status delivery.Status
		want   string
	}{
		{delivery.Unknown, "Unknown"},
		{delivery.Unassigned, "Unassigned"},
		{delivery.Assigned, "Assigned"},
		{delivery.Delivered, "Delivered"},
		{delivery.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_Assign(t *testing.T) {
	t.Run("unassigned can be assigned", func(t *testing.T) {
		newStatus, err := delivery.Unassigned.Assign()

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, newStatus)
	})

	t.Run("assigned cannot be reassigned", func(t *testing.T) {
		_, err := delivery.Assigned.Assign()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot assign delivery in Assigned status")
	})

	t.Run("delivered cannot be assigned", func(t *testing.T) {
		_, err := delivery.Delivered.Assign()
		require.Error(t, err)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("assigned can be completed", func(t *testing.T) {
		newStatus, err := delivery.Assigned.Complete()

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, newStatus)
	})

	t.Run("unassigned cannot be completed", func(t *testing.T) {
		_, err := delivery.Unassigned.Complete()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot complete delivery in Unassigned status")
	})

	t.Run("delivered is final", func(t *testing.T) {
		_, err := delivery.Delivered.Complete()
		require.Error(t, err)
	})
}
