package order_test

import (
	"fmt"
	"testing"

	"buyback/internal/core/domain/model/order"
	"buyback/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.New))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Rescheduled))
		assert.Equal(t, 4, int(order.Cancelled))
		assert.Equal(t, 5, int(order.Completed))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.New,
			order.Processing,
			order.Rescheduled,
			order.Cancelled,
			order.Completed,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.New,
			order.Processing,
			order.Rescheduled,
			order.Cancelled,
			order.Completed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.New, "new"},
			{order.Processing, "processing"},
			{order.Rescheduled, "rescheduled"},
			{order.Cancelled, "cancelled"},
			{order.Completed, "Completed"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"new", order.New},
			{"processing", order.Processing},
			{"rescheduled", order.Rescheduled},
			{"cancelled", order.Cancelled},
			{"Completed", order.Completed},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %q", tc.input), func(t *testing.T) {
				status, err := order.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown status strings", func(t *testing.T) {
		for _, input := range []string{"", "NEW", "completed", "refunded", "blocked"} {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := order.StatusFromString(input)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid status")
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report terminal states", func(t *testing.T) {
		assert.True(t, order.Cancelled.IsTerminal())
		assert.True(t, order.Completed.IsTerminal())
	})

	t.Run("should report non-terminal states", func(t *testing.T) {
		assert.False(t, order.New.IsTerminal())
		assert.False(t, order.Processing.IsTerminal())
		assert.False(t, order.Rescheduled.IsTerminal())
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should allow transition from new to processing", func(t *testing.T) {
		newStatus, err := order.New.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Processing, newStatus)
	})

	t.Run("should reject accept from any other status", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Processing,
			order.Rescheduled,
			order.Cancelled,
			order.Completed,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject accept from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Accept()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to accept", status.String()))
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow cancellation from non-terminal statuses", func(t *testing.T) {
		cancellableStatuses := []order.Status{
			order.New,
			order.Processing,
			order.Rescheduled,
		}

		for _, status := range cancellableStatuses {
			t.Run(fmt.Sprintf("should cancel from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, newStatus)
			})
		}
	})

	t.Run("should return ErrAlreadyCancelled for cancelled orders", func(t *testing.T) {
		newStatus, err := order.Cancelled.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.ErrorIs(t, err, order.ErrAlreadyCancelled)
	})

	t.Run("should reject cancellation of completed orders", func(t *testing.T) {
		newStatus, err := order.Completed.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Completed is not a valid status to cancel")
	})
}

func TestStatus_Reschedule(t *testing.T) {
	t.Run("should allow rescheduling from non-terminal statuses", func(t *testing.T) {
		reschedulableStatuses := []order.Status{
			order.New,
			order.Processing,
			order.Rescheduled,
		}

		for _, status := range reschedulableStatuses {
			t.Run(fmt.Sprintf("should reschedule from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Reschedule()

				require.NoError(t, err)
				assert.Equal(t, order.Rescheduled, newStatus)
			})
		}
	})

	t.Run("should reject rescheduling terminal orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Cancelled, order.Completed} {
			t.Run(fmt.Sprintf("should reject reschedule from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Reschedule()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to reschedule", status.String()))
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should allow completion of claimed orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Processing, order.Rescheduled} {
			t.Run(fmt.Sprintf("should complete from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Complete()

				require.NoError(t, err)
				assert.Equal(t, order.Completed, newStatus)
			})
		}
	})

	t.Run("should return ErrAlreadyCompleted for completed orders", func(t *testing.T) {
		newStatus, err := order.Completed.Complete()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.ErrorIs(t, err, order.ErrAlreadyCompleted)
	})

	t.Run("should reject completion of unclaimed and cancelled orders", func(t *testing.T) {
		for _, status := range []order.Status{order.New, order.Cancelled, order.Unknown} {
			t.Run(fmt.Sprintf("should reject complete from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Complete()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to complete", status.String()))
			})
		}
	})
}

func TestStatus_Deassign(t *testing.T) {
	t.Run("should revert claimed orders back to new", func(t *testing.T) {
		for _, status := range []order.Status{order.Processing, order.Rescheduled} {
			t.Run(fmt.Sprintf("should deassign from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Deassign()

				require.NoError(t, err)
				assert.Equal(t, order.New, newStatus)
			})
		}
	})

	t.Run("should reject deassignment of unclaimed and terminal orders", func(t *testing.T) {
		for _, status := range []order.Status{order.New, order.Cancelled, order.Completed} {
			t.Run(fmt.Sprintf("should reject deassign from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Deassign()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to deassign", status.String()))
			})
		}
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the happy-path lifecycle", func(t *testing.T) {
		status := order.New

		status, err := status.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Processing, status)

		status, err = status.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, status)
	})

	t.Run("should support reschedule before completion", func(t *testing.T) {
		status := order.New

		status, err := status.Accept()
		require.NoError(t, err)

		status, err = status.Reschedule()
		require.NoError(t, err)
		assert.Equal(t, order.Rescheduled, status)

		status, err = status.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, status)
	})

	t.Run("should allow re-claiming after deassignment", func(t *testing.T) {
		status := order.New

		status, err := status.Accept()
		require.NoError(t, err)

		status, err = status.Deassign()
		require.NoError(t, err)
		assert.Equal(t, order.New, status)

		status, err = status.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Processing, status)
	})

	t.Run("should not allow transitions out of terminal states", func(t *testing.T) {
		_, err := order.Cancelled.Accept()
		require.Error(t, err)
		_, err = order.Cancelled.Reschedule()
		require.Error(t, err)
		_, err = order.Completed.Cancel()
		require.Error(t, err)
		_, err = order.Completed.Reschedule()
		require.Error(t, err)
	})
}
